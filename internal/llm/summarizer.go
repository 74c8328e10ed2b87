package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cleared-dev/boardbrief/internal/model"
)

const summaryPrompt = `User asked:
%s

Computed metrics:
%s

Write a concise founder-level business insight.

Include:
- Key metric
- Interpretation
- Risks
- Actionable takeaway`

// summaryTemperature leaves a little room for phrasing.
const summaryTemperature = 0.3

// Summarizer turns computed metrics into an executive summary.
type Summarizer struct {
	llm Completer
}

// NewSummarizer creates a Summarizer backed by c.
func NewSummarizer(c Completer) *Summarizer {
	return &Summarizer{llm: c}
}

// Summarize phrases metrics as an answer to question.
func (s *Summarizer) Summarize(ctx context.Context, question, metrics string) (string, error) {
	reply, err := s.llm.Complete(ctx, Request{
		Turns: []model.Turn{{
			Role:    model.RoleUser,
			Content: fmt.Sprintf(summaryPrompt, question, metrics),
		}},
		Temperature: summaryTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("generating summary: %w", err)
	}
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return "", errors.New("generating summary: empty reply")
	}
	return reply, nil
}
