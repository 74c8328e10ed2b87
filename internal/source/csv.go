package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cleared-dev/boardbrief/internal/model"
)

// CSVSource reads board exports from <dir>/<boardID>.csv. The header row
// holds the column titles.
type CSVSource struct {
	dir string
}

// NewCSVSource creates a CSVSource rooted at dir.
func NewCSVSource(dir string) *CSVSource {
	return &CSVSource{dir: dir}
}

// Fetch reads the export for boardID.
func (s *CSVSource) Fetch(_ context.Context, boardID string) (model.Table, error) {
	path := filepath.Join(s.dir, boardID+".csv")
	f, err := os.Open(path)
	if err != nil {
		return model.Table{}, fmt.Errorf("%w: opening board export: %w", ErrFetch, err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	records, err := cr.ReadAll()
	if err != nil {
		return model.Table{}, fmt.Errorf("%w: reading board export %s: %w", ErrFetch, filepath.Base(path), err)
	}
	if len(records) == 0 {
		return model.Table{}, fmt.Errorf("%w: board export %s has no header", ErrSchema, filepath.Base(path))
	}

	header := records[0]
	var b model.Builder
	for _, rec := range records[1:] {
		fields := make([]model.Field, len(header))
		for i, title := range header {
			fields[i] = model.Field{Column: title, Text: rec[i]}
		}
		b.Add(fields...)
	}
	if len(records) == 1 {
		return model.NewTable(header, nil), nil
	}
	return b.Table(), nil
}
