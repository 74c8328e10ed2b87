package llm

import (
	"context"

	"github.com/cleared-dev/boardbrief/internal/model"
)

type fakeCompleter struct {
	reply    string
	err      error
	requests []Request
}

func (f *fakeCompleter) Complete(_ context.Context, req Request) (string, error) {
	f.requests = append(f.requests, req)
	return f.reply, f.err
}

var _ Completer = (*fakeCompleter)(nil)

func userTurn(s string) model.Turn { return model.Turn{Role: model.RoleUser, Content: s} }
