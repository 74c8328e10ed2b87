package metrics

import (
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/boardbrief/internal/model"
)

// Engine exposes the named business metrics, taking "now" from its clock.
type Engine struct {
	rules Rules
	clock clockwork.Clock
}

// NewEngine creates an Engine. A nil clock uses the wall clock.
func NewEngine(rules Rules, clock clockwork.Clock) *Engine {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Engine{rules: rules.withDefaults(), clock: clock}
}

// Rules returns the keyword sets in use.
func (e *Engine) Rules() Rules { return e.rules }

// Now returns the engine's reference time in local time.
func (e *Engine) Now() time.Time { return e.clock.Now().Local() }

// PipelineThisQuarter sums open deals dated in the current quarter,
// optionally restricted to a sector.
func (e *Engine) PipelineThisQuarter(tbl model.Table, sector string) decimal.Decimal {
	return Compute(tbl, Query{Stage: StageOpen, ThisQuarter: true, Sector: sector}, e.rules, e.Now())
}

// RevenueThisQuarter sums closed deals dated in the current quarter,
// optionally restricted to a sector.
func (e *Engine) RevenueThisQuarter(tbl model.Table, sector string) decimal.Decimal {
	return Compute(tbl, Query{Stage: StageClosed, ThisQuarter: true, Sector: sector}, e.rules, e.Now())
}

// CompletedWorkOrdersThisQuarter sums finished work orders dated in the
// current quarter.
func (e *Engine) CompletedWorkOrdersThisQuarter(tbl model.Table) decimal.Decimal {
	return Compute(tbl, Query{Stage: StageDone, ThisQuarter: true}, e.rules, e.Now())
}

// PipelineBySector breaks open deals down by sector across all dates.
func (e *Engine) PipelineBySector(tbl model.Table) Breakdown {
	return BySector(tbl, e.rules)
}
