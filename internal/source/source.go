// Package source fetches board items and normalizes them into tables.
package source

import (
	"context"
	"errors"

	"github.com/cleared-dev/boardbrief/internal/model"
)

var (
	// ErrFetch marks a failed remote call or an unreadable response.
	ErrFetch = errors.New("fetch failed")
	// ErrSchema marks a response without the expected boards.
	ErrSchema = errors.New("unexpected board schema")
)

// Source returns the items of a board as a table.
type Source interface {
	Fetch(ctx context.Context, boardID string) (model.Table, error)
}
