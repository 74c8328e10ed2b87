package metrics

import (
	"strings"

	"github.com/cleared-dev/boardbrief/internal/clean"
)

// Rules holds the keyword sets that decide which stage text counts as
// closed, won or done, plus the currency symbols stripped from amounts.
// Stage text matches a set when it contains any keyword as a substring.
type Rules struct {
	// Closed stages are excluded from open pipeline and sector breakdowns.
	Closed []string
	// Won stages are required for closed revenue. It does not contain
	// "lost", so lost deals are not excluded from revenue.
	Won []string
	// Done stages are required for completed work orders.
	Done []string
	// CurrencySymbols are removed before parsing amounts, in addition to
	// clean.DefaultSymbols.
	CurrencySymbols []string
}

// DefaultRules returns the stock keyword sets.
func DefaultRules() Rules {
	return Rules{
		Closed:          []string{"closed", "won", "lost", "completed"},
		Won:             []string{"closed", "won", "completed"},
		Done:            []string{"done", "complete", "finished"},
		CurrencySymbols: append([]string(nil), clean.DefaultSymbols...),
	}
}

// withDefaults fills empty sets from DefaultRules.
func (r Rules) withDefaults() Rules {
	def := DefaultRules()
	if len(r.Closed) == 0 {
		r.Closed = def.Closed
	}
	if len(r.Won) == 0 {
		r.Won = def.Won
	}
	if len(r.Done) == 0 {
		r.Done = def.Done
	}
	if len(r.CurrencySymbols) == 0 {
		r.CurrencySymbols = def.CurrencySymbols
	}
	return r
}

// matches reports whether lowered stage text contains any keyword.
func matches(stage string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(stage, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
