// Package llm wraps the language-model calls used to classify questions and
// phrase results.
package llm

import (
	"context"

	"github.com/cleared-dev/boardbrief/internal/model"
)

// Request is one completion call: a system prompt plus the conversation,
// ending with the turn to answer.
type Request struct {
	System      string
	Turns       []model.Turn
	Temperature float64
}

// Completer returns the model's text reply to a request.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}
