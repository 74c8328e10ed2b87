package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cleared-dev/boardbrief/internal/model"
)

const classifierPrompt = `You are a Business Intelligence query parser.

Return STRICT JSON:

{
  "intent": "pipeline" | "revenue" | "compare" | "breakdown" | "conversion" | "top_sector",
  "sector": "sector name or null",
  "time_range": "this_quarter" | "last_quarter" | "this_month" | "all_time"
}`

// Classifier maps a question, read in the context of earlier turns, to an
// Interpretation.
type Classifier struct {
	llm Completer
	log *slog.Logger
}

// NewClassifier creates a Classifier backed by c.
func NewClassifier(c Completer, log *slog.Logger) *Classifier {
	if log == nil {
		log = slog.Default()
	}
	return &Classifier{llm: c, log: log}
}

// Classify asks the model for the question's intent. Replies that are not
// valid JSON or name an unknown intent yield model.FallbackInterpretation;
// only a failed model call is returned as an error.
func (c *Classifier) Classify(ctx context.Context, question string, history []model.Turn) (model.Interpretation, error) {
	turns := make([]model.Turn, 0, len(history)+1)
	turns = append(turns, history...)
	turns = append(turns, model.Turn{Role: model.RoleUser, Content: question})

	reply, err := c.llm.Complete(ctx, Request{System: classifierPrompt, Turns: turns})
	if err != nil {
		return model.Interpretation{}, fmt.Errorf("classifying question: %w", err)
	}

	interp, err := ParseInterpretation(reply)
	if err != nil {
		c.log.Warn("classifier reply unusable, using fallback", "error", err)
		return model.FallbackInterpretation(), nil
	}
	return interp, nil
}

type classifierReply struct {
	Intent    string  `json:"intent"`
	Sector    *string `json:"sector"`
	TimeRange string  `json:"time_range"`
}

// ParseInterpretation decodes a classifier reply. Markdown code fences and
// text around the JSON object are ignored. A missing or unknown time range
// defaults to this_quarter.
func ParseInterpretation(reply string) (model.Interpretation, error) {
	raw := extractJSON(reply)

	var r classifierReply
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		return model.Interpretation{}, fmt.Errorf("parsing classifier reply: %w (reply: %.200s)", err, reply)
	}

	intent := model.Intent(strings.ToLower(strings.TrimSpace(r.Intent)))
	if !intent.Valid() {
		return model.Interpretation{}, fmt.Errorf("unknown intent %q", r.Intent)
	}

	interp := model.Interpretation{Intent: intent, TimeRange: model.TimeThisQuarter}
	if r.Sector != nil {
		sector := strings.TrimSpace(*r.Sector)
		switch strings.ToLower(sector) {
		case "", "null", "none":
		default:
			interp.Sector = sector
		}
	}
	if tr := model.TimeRange(strings.ToLower(strings.TrimSpace(r.TimeRange))); tr.Valid() {
		interp.TimeRange = tr
	}
	return interp, nil
}

func extractJSON(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		return s[start : end+1]
	}
	return s
}
