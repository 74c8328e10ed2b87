package metrics

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/boardbrief/internal/model"
)

// refNow sits in Q4 2026.
var refNow = time.Date(2026, 10, 15, 12, 0, 0, 0, time.Local)

var dealColumns = []string{model.ItemNameColumn, "Deal Stage", "Sector", "Deal Value", "Close Date"}

func deal(name, stage, sector, value, date string) model.Row {
	return model.Row{
		model.ItemNameColumn: name,
		"Deal Stage":         stage,
		"Sector":             sector,
		"Deal Value":         value,
		"Close Date":         date,
	}
}

// scenarioTable is one open Energy deal this quarter, one won Energy deal
// this quarter and one open Healthcare deal last quarter.
func scenarioTable() model.Table {
	return model.NewTable(dealColumns, []model.Row{
		deal("Acme", "Open", "Energy", "$1,000", "2026-11-02"),
		deal("Globex", "Closed Won", "Energy", "$500", "2026-10-01"),
		deal("Initech", "Open", "Healthcare", "$2,000", "2026-08-10"),
	})
}

func newTestEngine() *Engine {
	return NewEngine(DefaultRules(), clockwork.NewFakeClockAt(refNow))
}

func TestQuarter(t *testing.T) {
	tests := []struct {
		month time.Month
		want  int
	}{
		{time.January, 1}, {time.March, 1},
		{time.April, 2}, {time.June, 2},
		{time.July, 3}, {time.September, 3},
		{time.October, 4}, {time.December, 4},
	}
	for _, tt := range tests {
		d := time.Date(2026, tt.month, 1, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, tt.want, Quarter(d), "Quarter(%s)", tt.month)
	}
}

func TestPipelineThisQuarter_Scenario(t *testing.T) {
	e := newTestEngine()
	got := e.PipelineThisQuarter(scenarioTable(), "Energy")
	assert.Equal(t, 1000.0, got.InexactFloat64())
}

func TestPipelineThisQuarter_SectorCaseInsensitive(t *testing.T) {
	e := newTestEngine()
	assert.Equal(t, "1000.00", e.PipelineThisQuarter(scenarioTable(), "energy").StringFixed(2))
	assert.Equal(t, "1000.00", e.PipelineThisQuarter(scenarioTable(), "ENER").StringFixed(2))
	assert.True(t, e.PipelineThisQuarter(scenarioTable(), "Healthcare").IsZero(), "healthcare deal is last quarter")
}

func TestPipelineThisQuarter_NoSector(t *testing.T) {
	e := newTestEngine()
	assert.Equal(t, "1000.00", e.PipelineThisQuarter(scenarioTable(), "").StringFixed(2))
}

func TestRevenueThisQuarter(t *testing.T) {
	e := newTestEngine()
	assert.Equal(t, "500.00", e.RevenueThisQuarter(scenarioTable(), "Energy").StringFixed(2))
	assert.Equal(t, "500.00", e.RevenueThisQuarter(scenarioTable(), "").StringFixed(2))
}

func TestCompute_OpenExcludesClosedStages(t *testing.T) {
	tbl := model.NewTable(dealColumns, []model.Row{
		deal("a", "Open", "Energy", "1", "2026-10-02"),
		deal("b", "Won", "Energy", "10", "2026-10-02"),
		deal("c", "Closed", "Energy", "100", "2026-10-02"),
		deal("d", "Lost", "Energy", "1000", "2026-10-02"),
		deal("e", "Completed", "Energy", "10000", "2026-10-02"),
		deal("f", "Negotiation", "Energy", "100000", "2026-10-02"),
		deal("g", "CLOSED WON", "Energy", "1000000", "2026-10-02"),
	})
	got := Compute(tbl, Query{Stage: StageOpen}, DefaultRules(), refNow)
	assert.Equal(t, "100001.00", got.StringFixed(2))
}

func TestCompute_ClosedKeepsClosedLost(t *testing.T) {
	tbl := model.NewTable(dealColumns, []model.Row{
		deal("a", "Closed Lost", "Energy", "7", "2026-10-02"),
		deal("b", "Lost", "Energy", "50", "2026-10-02"),
		deal("c", "Won", "Energy", "3", "2026-10-02"),
		deal("d", "Open", "Energy", "900", "2026-10-02"),
	})
	// "closed" only requires a won keyword; it never rejects "lost".
	got := Compute(tbl, Query{Stage: StageClosed, ThisQuarter: true}, DefaultRules(), refNow)
	assert.Equal(t, "10.00", got.StringFixed(2))
}

func TestCompute_AnyStage(t *testing.T) {
	got := Compute(scenarioTable(), Query{}, DefaultRules(), refNow)
	assert.Equal(t, "3500.00", got.StringFixed(2))
}

func TestCompute_QuarterUsesYear(t *testing.T) {
	tbl := model.NewTable(dealColumns, []model.Row{
		deal("a", "Open", "Energy", "1", "2025-11-01"),
		deal("b", "Open", "Energy", "2", "2026-12-31"),
		deal("c", "Open", "Energy", "4", "2027-10-01"),
	})
	got := Compute(tbl, Query{Stage: StageOpen, ThisQuarter: true}, DefaultRules(), refNow)
	assert.Equal(t, "2.00", got.StringFixed(2))
}

func TestCompute_UnparseableDatesExcluded(t *testing.T) {
	tbl := model.NewTable(dealColumns, []model.Row{
		deal("a", "Open", "Energy", "$1,000", "soon"),
		deal("b", "Won", "Energy", "$2,000", ""),
		deal("c", "Open", "Energy", "$3,000", "TBD"),
	})
	e := newTestEngine()
	assert.True(t, e.PipelineThisQuarter(tbl, "").IsZero())
	assert.True(t, e.RevenueThisQuarter(tbl, "").IsZero())
	assert.True(t, Compute(tbl, Query{}, DefaultRules(), refNow).IsZero(), "rows without a date never count")
}

func TestCompute_MissingColumns(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
	}{
		{"no amount", []string{"Deal Stage", "Sector", "Close Date"}},
		{"no stage", []string{"Sector", "Deal Value", "Close Date"}},
		{"no date", []string{"Deal Stage", "Sector", "Deal Value"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := model.Row{}
			for _, c := range tt.columns {
				row[c] = map[string]string{
					"Deal Stage": "Open", "Sector": "Energy", "Deal Value": "$5", "Close Date": "2026-10-02",
				}[c]
			}
			tbl := model.NewTable(tt.columns, []model.Row{row})
			assert.True(t, newTestEngine().PipelineThisQuarter(tbl, "Energy").IsZero())
		})
	}
}

func TestCompute_SectorFilterSkippedWithoutSectorColumn(t *testing.T) {
	tbl := model.NewTable([]string{"Status", "Amount", "Date"}, []model.Row{
		{"Status": "Open", "Amount": "40", "Date": "2026-10-20"},
	})
	got := newTestEngine().PipelineThisQuarter(tbl, "Energy")
	assert.Equal(t, "40.00", got.StringFixed(2))
}

func TestCompute_BadAmountCountsAsZero(t *testing.T) {
	tbl := model.NewTable(dealColumns, []model.Row{
		deal("a", "Open", "Energy", "n/a", "2026-10-02"),
		deal("b", "Open", "Energy", "", "2026-10-02"),
		deal("c", "Open", "Energy", "₹250", "2026-10-02"),
	})
	assert.Equal(t, "250.00", newTestEngine().PipelineThisQuarter(tbl, "").StringFixed(2))
}

func TestCompletedWorkOrdersThisQuarter(t *testing.T) {
	cols := []string{model.ItemNameColumn, "Execution Status", "Amount", "Delivery Date"}
	wo := func(status, amount, date string) model.Row {
		return model.Row{"Execution Status": status, "Amount": amount, "Delivery Date": date}
	}
	tbl := model.NewTable(cols, []model.Row{
		wo("Done", "100", "2026-10-05"),
		wo("Completed", "200", "2026-11-05"),
		wo("Finished", "300", "2026-12-05"),
		wo("In Progress", "400", "2026-10-05"),
		wo("Done", "500", "2026-09-30"),
		wo("Done", "600", "2025-10-05"),
		wo("Done", "700", "unknown"),
	})
	got := newTestEngine().CompletedWorkOrdersThisQuarter(tbl)
	assert.Equal(t, "600.00", got.StringFixed(2))
}

func TestCompute_CustomRules(t *testing.T) {
	tbl := model.NewTable(dealColumns, []model.Row{
		deal("a", "Signed", "Energy", "10", "2026-10-02"),
		deal("b", "Open", "Energy", "20", "2026-10-02"),
	})
	rules := Rules{Won: []string{"Signed"}}
	assert.Equal(t, "10.00", Compute(tbl, Query{Stage: StageClosed}, rules, refNow).StringFixed(2))
	// Unset sets fall back to the defaults.
	assert.Equal(t, "30.00", Compute(tbl, Query{Stage: StageOpen}, rules, refNow).StringFixed(2))
}

func TestCompute_ExtraCurrencySymbolsKeepDefaults(t *testing.T) {
	tbl := model.NewTable(dealColumns, []model.Row{
		deal("a", "Open", "Energy", "$1,000", "2026-10-02"),
		deal("b", "Open", "Energy", "€200", "2026-10-03"),
	})
	e := NewEngine(Rules{CurrencySymbols: []string{"€"}}, clockwork.NewFakeClockAt(refNow))
	assert.Equal(t, "1200.00", e.PipelineThisQuarter(tbl, "").StringFixed(2))

	b := e.PipelineBySector(tbl)
	require.Len(t, b, 1)
	assert.Equal(t, "1200.00", b[0].Total.StringFixed(2))
}

func TestEngine_NilClock(t *testing.T) {
	e := NewEngine(Rules{}, nil)
	require.NotNil(t, e)
	assert.WithinDuration(t, time.Now(), e.Now(), time.Minute)
	assert.Equal(t, DefaultRules().Closed, e.Rules().Closed)
}

func TestStageFilter_String(t *testing.T) {
	assert.Equal(t, "open", StageOpen.String())
	assert.Equal(t, "closed", StageClosed.String())
	assert.Equal(t, "done", StageDone.String())
	assert.Equal(t, "any", StageAny.String())
}
