// Package quality reports gaps in the critical fields of a board table.
package quality

import (
	"fmt"

	"github.com/cleared-dev/boardbrief/internal/detect"
	"github.com/cleared-dev/boardbrief/internal/model"
)

// Check returns one note per detected amount or date column that has rows
// without a value. Columns that were not detected are not reported.
func Check(tbl model.Table, cols detect.Detected) []string {
	var notes []string
	if cols.HasAmount() {
		if n := countMissing(tbl, cols.Amount); n > 0 {
			notes = append(notes, fmt.Sprintf("%d records missing revenue", n))
		}
	}
	if cols.HasDate() {
		if n := countMissing(tbl, cols.Date); n > 0 {
			notes = append(notes, fmt.Sprintf("%d records missing dates", n))
		}
	}
	return notes
}

func countMissing(tbl model.Table, col string) int {
	n := 0
	for i := 0; i < tbl.Len(); i++ {
		if _, ok := tbl.Value(i, col); !ok {
			n++
		}
	}
	return n
}
