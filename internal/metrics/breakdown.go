package metrics

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/boardbrief/internal/clean"
	"github.com/cleared-dev/boardbrief/internal/detect"
	"github.com/cleared-dev/boardbrief/internal/model"
)

// UnknownSector is the bucket for rows without sector text.
const UnknownSector = "unknown"

// SectorTotal is the open amount of one sector.
type SectorTotal struct {
	Sector string
	Total  decimal.Decimal
}

// Breakdown lists sector totals ordered by total descending, then by
// sector name ascending.
type Breakdown []SectorTotal

// BySector groups the amounts of every row not in a closed stage by
// lowercased, trimmed sector text. Dates are not consulted. It returns nil
// when the stage, sector or amount column cannot be detected.
func BySector(tbl model.Table, rules Rules) Breakdown {
	rules = rules.withDefaults()
	cols := detect.Columns(tbl.Columns())
	if !cols.HasStage() || !cols.HasSector() || !cols.HasAmount() {
		return nil
	}

	sums := make(map[string]decimal.Decimal)
	var order []string
	for i := 0; i < tbl.Len(); i++ {
		stage, _ := tbl.Value(i, cols.Stage)
		if matches(strings.ToLower(stage), rules.Closed) {
			continue
		}

		sector := UnknownSector
		if raw, ok := tbl.Value(i, cols.Sector); ok {
			sector = strings.ToLower(strings.TrimSpace(raw))
		}

		rawAmount, _ := tbl.Value(i, cols.Amount)
		if _, seen := sums[sector]; !seen {
			order = append(order, sector)
		}
		sums[sector] = sums[sector].Add(clean.AmountStripping(rawAmount, rules.CurrencySymbols))
	}

	out := make(Breakdown, 0, len(order))
	for _, sector := range order {
		out = append(out, SectorTotal{Sector: sector, Total: sums[sector]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if c := out[i].Total.Cmp(out[j].Total); c != 0 {
			return c > 0
		}
		return out[i].Sector < out[j].Sector
	})
	return out
}

// Top returns the sector with the highest total. Equal totals resolve to
// the alphabetically first sector. ok is false for an empty breakdown.
func (b Breakdown) Top() (top SectorTotal, ok bool) {
	if len(b) == 0 {
		return SectorTotal{}, false
	}
	return b[0], true
}

// Total sums every bucket.
func (b Breakdown) Total() decimal.Decimal {
	total := decimal.Zero
	for _, st := range b {
		total = total.Add(st.Total)
	}
	return total
}

// Map returns the breakdown keyed by sector.
func (b Breakdown) Map() map[string]decimal.Decimal {
	m := make(map[string]decimal.Decimal, len(b))
	for _, st := range b {
		m[st.Sector] = st.Total
	}
	return m
}
