// Package agent answers business questions about monday.com boards: it
// classifies the question, fetches the boards it needs, computes metrics and
// has a language model phrase the result.
package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jonboulle/clockwork"

	"github.com/cleared-dev/boardbrief/internal/agentlog"
	"github.com/cleared-dev/boardbrief/internal/detect"
	"github.com/cleared-dev/boardbrief/internal/metrics"
	"github.com/cleared-dev/boardbrief/internal/model"
	"github.com/cleared-dev/boardbrief/internal/quality"
	"github.com/cleared-dev/boardbrief/internal/source"
)

// ClarifySector is returned instead of an answer when a sector-specific
// question names no sector.
const ClarifySector = "Which sector should I analyze? (e.g., Energy, Healthcare)"

// Classifier interprets a question in the context of the chat history.
type Classifier interface {
	Classify(ctx context.Context, question string, history []model.Turn) (model.Interpretation, error)
}

// Summarizer phrases computed metrics as an answer.
type Summarizer interface {
	Summarize(ctx context.Context, question, metrics string) (string, error)
}

// Boards names the boards the agent reads.
type Boards struct {
	Deals      string
	WorkOrders string
}

// Config wires an Agent to its collaborators.
type Config struct {
	Source     source.Source
	Classifier Classifier
	Summarizer Summarizer
	Engine     *metrics.Engine
	Boards     Boards
	Clock      clockwork.Clock
	Logger     *slog.Logger
}

// Validate reports missing collaborators.
func (c *Config) Validate() error {
	if c.Source == nil {
		return errors.New("source is required")
	}
	if c.Classifier == nil {
		return errors.New("classifier is required")
	}
	if c.Summarizer == nil {
		return errors.New("summarizer is required")
	}
	if c.Boards.Deals == "" {
		return errors.New("deals board ID is required")
	}
	if c.Clock == nil {
		c.Clock = clockwork.NewRealClock()
	}
	if c.Engine == nil {
		c.Engine = metrics.NewEngine(metrics.DefaultRules(), c.Clock)
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return nil
}

// Agent runs one question at a time. It holds no state between runs.
type Agent struct {
	cfg Config
}

// New creates an Agent.
func New(cfg Config) (*Agent, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid agent config: %w", err)
	}
	return &Agent{cfg: cfg}, nil
}

// Result is the outcome of a run.
type Result struct {
	// Summary is the answer, a clarification request, or "Error: ..." text.
	Summary string
	// Trace lists the steps taken, ending with the query time.
	Trace string
	// Metrics is the computed text handed to the summarizer, if any.
	Metrics string
	// Interpretation is the classifier's reading of the question.
	Interpretation model.Interpretation
}

// Run answers question. It never fails: errors become an "Error: " summary
// and the trace collected so far is still returned.
func (a *Agent) Run(ctx context.Context, question string, history []model.Turn) Result {
	queryTime := a.cfg.Clock.Now()
	trace := agentlog.New(a.cfg.Clock.Now)
	log := a.cfg.Logger.With("question", question)

	var res Result
	summary, err := a.run(ctx, question, history, trace, &res)
	if err != nil {
		log.Error("agent run failed", "error", err)
		trace.Add(agentlog.TagError, "%s", err)
		summary = "Error: " + err.Error()
	}
	res.Summary = summary
	res.Trace = trace.Format(queryTime)
	return res
}

func (a *Agent) run(ctx context.Context, question string, history []model.Turn, trace *agentlog.Log, res *Result) (string, error) {
	interp, err := a.cfg.Classifier.Classify(ctx, question, history)
	if err != nil {
		return "", err
	}
	res.Interpretation = interp
	trace.Add(agentlog.TagLLM, "Interpreted query")
	trace.Add(agentlog.TagIntent, "%s | sector=%s | time=%s", interp.Intent, orNone(interp.Sector), orNone(string(interp.TimeRange)))

	if interp.Intent.NeedsSector() && interp.Sector == "" {
		return ClarifySector, nil
	}

	deals, err := a.fetch(ctx, a.cfg.Boards.Deals, "Deals", trace)
	if err != nil {
		return "", err
	}
	trace.Add(agentlog.TagProcess, "Data cleaned")

	cols := detect.Columns(deals.Columns())
	notes := quality.Check(deals, cols)
	trace.Add(agentlog.TagCheck, "Data quality evaluated")

	result, err := a.compute(ctx, interp, deals, trace)
	if err != nil {
		return "", err
	}
	if len(notes) > 0 {
		result += "\n\nData Notes:\n- " + strings.Join(notes, "\n- ")
	}
	res.Metrics = result

	summary, err := a.cfg.Summarizer.Summarize(ctx, question, result)
	if err != nil {
		return "", err
	}
	trace.Add(agentlog.TagLLM, "Generated summary")
	return summary, nil
}

func (a *Agent) compute(ctx context.Context, interp model.Interpretation, deals model.Table, trace *agentlog.Log) (string, error) {
	engine := a.cfg.Engine

	switch interp.Intent {
	case model.IntentPipeline:
		return "Pipeline: " + FormatMoney(engine.PipelineThisQuarter(deals, interp.Sector)), nil

	case model.IntentRevenue:
		return "Revenue: " + FormatMoney(engine.RevenueThisQuarter(deals, interp.Sector)), nil

	case model.IntentCompare:
		work, err := a.fetchWorkOrders(ctx, trace)
		if err != nil {
			return "", err
		}
		revenue := engine.RevenueThisQuarter(deals, "")
		completed := engine.CompletedWorkOrdersThisQuarter(work)
		return fmt.Sprintf("Revenue: %s\nWork Orders: %s\nExecution Rate: %s%%",
			FormatMoney(revenue), FormatMoney(completed), executionRate(completed, revenue)), nil

	case model.IntentConversion:
		work, err := a.fetchWorkOrders(ctx, trace)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Deals: %d\nWork Orders: %d\nConversion Rate: %s%%",
			deals.Len(), work.Len(), conversionRate(work.Len(), deals.Len())), nil

	case model.IntentTopSector:
		top, ok := engine.PipelineBySector(deals).Top()
		if !ok {
			return noData, nil
		}
		return fmt.Sprintf("Top Sector: %s (%s)", top.Sector, FormatMoney(top.Total)), nil

	default:
		return formatBreakdown(engine.PipelineBySector(deals)), nil
	}
}

func (a *Agent) fetchWorkOrders(ctx context.Context, trace *agentlog.Log) (model.Table, error) {
	if a.cfg.Boards.WorkOrders == "" {
		return model.Table{}, errors.New("work orders board ID is not configured")
	}
	return a.fetch(ctx, a.cfg.Boards.WorkOrders, "Work Orders", trace)
}

func (a *Agent) fetch(ctx context.Context, boardID, label string, trace *agentlog.Log) (model.Table, error) {
	tbl, err := a.cfg.Source.Fetch(ctx, boardID)
	if err != nil {
		return model.Table{}, fmt.Errorf("fetching %s board: %w", strings.ToLower(label), err)
	}
	trace.Add(agentlog.TagAPICall, "%s board fetched (ID: %s)", label, boardID)
	trace.Add(agentlog.TagRows, "%s: %d", label, tbl.Len())
	a.cfg.Logger.Debug("board fetched", "board", label, "id", boardID, "rows", tbl.Len(), "columns", len(tbl.Columns()))
	return tbl, nil
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
