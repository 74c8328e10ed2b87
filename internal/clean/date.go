package clean

import (
	"errors"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Date parses raw permissively (ISO, US numeric, textual month, RFC forms)
// and returns the calendar date at midnight UTC. Numeric dates are read
// month first unless the month would be out of range, as in "15/01/2025".
// ok is false for empty or unrecognized input.
func Date(raw string) (date time.Time, ok bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	t, err := parse(s)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
}

// parse guards against panics inside the date parser on pathological input.
func parse(s string) (t time.Time, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errUnparseable
		}
	}()
	return dateparse.ParseIn(s, time.UTC, dateparse.RetryAmbiguousDateWithSwap(true))
}

var errUnparseable = errors.New("unparseable date")
