// Package clean normalizes loosely typed board text into amounts and dates.
// Every function here is total: bad input yields a zero value, never an error.
package clean

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultSymbols are the currency markers stripped before parsing an amount.
var DefaultSymbols = []string{"$", "₹"}

// Amount parses a money string such as "$12,500.00" using DefaultSymbols.
func Amount(raw string) decimal.Decimal {
	return AmountStripping(raw, nil)
}

// AmountStripping removes DefaultSymbols, the extra symbols given and
// thousands separators from raw and parses what is left. It returns zero
// for empty or unparseable input.
func AmountStripping(raw string, symbols []string) decimal.Decimal {
	if raw == "" {
		return decimal.Zero
	}
	s := raw
	for _, sym := range DefaultSymbols {
		s = strings.ReplaceAll(s, sym, "")
	}
	for _, sym := range symbols {
		if sym != "" {
			s = strings.ReplaceAll(s, sym, "")
		}
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
