// Package detect finds the stage, sector, amount and date columns of a
// board by keyword matching on column titles.
package detect

import "strings"

// Keywords matched, case-insensitively, against column titles.
var (
	StageKeywords  = []string{"stage", "status"}
	SectorKeywords = []string{"sector", "industry"}
	AmountKeywords = []string{"amount", "value", "revenue"}
	DateKeywords   = []string{"date"}
)

// Detected holds the title of the column chosen for each role. An empty
// title means no column matched.
type Detected struct {
	Stage  string
	Sector string
	Amount string
	Date   string
}

// HasStage reports whether a stage column was found.
func (d Detected) HasStage() bool { return d.Stage != "" }

// HasSector reports whether a sector column was found.
func (d Detected) HasSector() bool { return d.Sector != "" }

// HasAmount reports whether an amount column was found.
func (d Detected) HasAmount() bool { return d.Amount != "" }

// HasDate reports whether a date column was found.
func (d Detected) HasDate() bool { return d.Date != "" }

// Columns picks, for each role, the first column whose lowercased title
// contains one of the role's keywords. It depends only on names and their
// order. Titles that differ only by case share the position of the first
// one and resolve to the spelling seen last.
func Columns(names []string) Detected {
	var order []string
	original := make(map[string]string, len(names))
	for _, name := range names {
		lower := strings.ToLower(name)
		if _, ok := original[lower]; !ok {
			order = append(order, lower)
		}
		original[lower] = name
	}

	var d Detected
	for _, lower := range order {
		name := original[lower]
		if d.Stage == "" && containsAny(lower, StageKeywords) {
			d.Stage = name
		}
		if d.Sector == "" && containsAny(lower, SectorKeywords) {
			d.Sector = name
		}
		if d.Amount == "" && containsAny(lower, AmountKeywords) {
			d.Amount = name
		}
		if d.Date == "" && containsAny(lower, DateKeywords) {
			d.Date = name
		}
	}
	return d
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
