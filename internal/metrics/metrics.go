// Package metrics aggregates deal and work-order amounts from a normalized
// board table.
//
// Columns are detected from titles on every call. When a required column
// is missing the result is zero (or an empty breakdown) rather than an
// error. All functions take the reference time explicitly; Engine supplies
// it from an injected clock.
package metrics

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/boardbrief/internal/clean"
	"github.com/cleared-dev/boardbrief/internal/detect"
	"github.com/cleared-dev/boardbrief/internal/model"
)

// StageFilter restricts rows by their stage text.
type StageFilter int

const (
	// StageAny applies no stage constraint.
	StageAny StageFilter = iota
	// StageOpen drops rows whose stage matches Rules.Closed.
	StageOpen
	// StageClosed keeps only rows whose stage matches Rules.Won.
	StageClosed
	// StageDone keeps only rows whose stage matches Rules.Done.
	StageDone
)

func (s StageFilter) String() string {
	switch s {
	case StageOpen:
		return "open"
	case StageClosed:
		return "closed"
	case StageDone:
		return "done"
	default:
		return "any"
	}
}

// Query selects the rows whose amounts are summed.
type Query struct {
	Stage StageFilter
	// ThisQuarter keeps only rows dated in the reference time's year and quarter.
	ThisQuarter bool
	// Sector, when set, keeps rows whose sector text contains it
	// (case-insensitive). Ignored when the table has no sector column.
	Sector string
}

// Quarter returns the calendar quarter (1-4) of t.
func Quarter(t time.Time) int {
	return (int(t.Month())-1)/3 + 1
}

// Compute sums the amounts of the rows selected by q. Rows without a
// parseable date are always skipped. It returns zero when the stage,
// amount or date column cannot be detected.
func Compute(tbl model.Table, q Query, rules Rules, now time.Time) decimal.Decimal {
	rules = rules.withDefaults()
	cols := detect.Columns(tbl.Columns())
	if !cols.HasStage() || !cols.HasAmount() || !cols.HasDate() {
		return decimal.Zero
	}

	nowYear, nowQuarter := now.Year(), Quarter(now)
	target := strings.ToLower(q.Sector)

	total := decimal.Zero
	for i := 0; i < tbl.Len(); i++ {
		rawDate, _ := tbl.Value(i, cols.Date)
		date, ok := clean.Date(rawDate)
		if !ok {
			continue
		}

		rawStage, _ := tbl.Value(i, cols.Stage)
		if !stageAllowed(strings.ToLower(rawStage), q.Stage, rules) {
			continue
		}

		if q.ThisQuarter && (date.Year() != nowYear || Quarter(date) != nowQuarter) {
			continue
		}

		if target != "" && cols.HasSector() {
			sector, _ := tbl.Value(i, cols.Sector)
			if !strings.Contains(strings.ToLower(sector), target) {
				continue
			}
		}

		rawAmount, _ := tbl.Value(i, cols.Amount)
		total = total.Add(clean.AmountStripping(rawAmount, rules.CurrencySymbols))
	}
	return total
}

func stageAllowed(stage string, f StageFilter, rules Rules) bool {
	switch f {
	case StageOpen:
		return !matches(stage, rules.Closed)
	case StageClosed:
		return matches(stage, rules.Won)
	case StageDone:
		return matches(stage, rules.Done)
	default:
		return true
	}
}
