// Package agentlog records the steps an agent run takes, for display as a
// diagnostic trace next to the answer.
package agentlog

import (
	"fmt"
	"strings"
	"time"
)

// Tags used by agent runs.
const (
	TagLLM     = "LLM"
	TagIntent  = "INTENT"
	TagAPICall = "API CALL"
	TagRows    = "ROWS"
	TagProcess = "PROCESS"
	TagCheck   = "CHECK"
	TagError   = "ERROR"
)

// Header opens every formatted trace.
const Header = "Agent Trace"

// Entry is one step of a run.
type Entry struct {
	Timestamp time.Time
	Tag       string
	Details   string
}

// String renders the entry as "[TAG] details".
func (e Entry) String() string {
	return fmt.Sprintf("[%s] %s", e.Tag, e.Details)
}

// Log is an append-only list of entries for one run.
type Log struct {
	now     func() time.Time
	entries []Entry
}

// New creates a Log that timestamps entries with now.
func New(now func() time.Time) *Log {
	if now == nil {
		now = time.Now
	}
	return &Log{now: now}
}

// Add appends an entry with a formatted detail string.
func (l *Log) Add(tag, format string, args ...any) {
	l.entries = append(l.entries, Entry{
		Timestamp: l.now(),
		Tag:       tag,
		Details:   fmt.Sprintf(format, args...),
	})
}

// Entries returns a copy of the recorded entries.
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Format renders the trace: the header, one line per entry, and the time
// the query was received.
func (l *Log) Format(queryTime time.Time) string {
	var b strings.Builder
	b.WriteString(Header)
	for _, e := range l.entries {
		b.WriteByte('\n')
		b.WriteString(e.String())
	}
	b.WriteString("\nQuery Time: ")
	b.WriteString(queryTime.Format(time.RFC3339))
	return b.String()
}
