package agentlog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

func fixedNow() time.Time { return testTime }

func TestLog_Add(t *testing.T) {
	l := New(fixedNow)
	l.Add(TagRows, "Deals: %d", 12)

	entries := l.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, TagRows, entries[0].Tag)
	assert.Equal(t, "Deals: 12", entries[0].Details)
	assert.True(t, testTime.Equal(entries[0].Timestamp))
}

func TestLog_EntriesIsCopy(t *testing.T) {
	l := New(fixedNow)
	l.Add(TagLLM, "Interpreted query")
	got := l.Entries()
	got[0].Tag = "changed"
	assert.Equal(t, TagLLM, l.Entries()[0].Tag)
}

func TestEntry_String(t *testing.T) {
	e := Entry{Tag: TagAPICall, Details: "Deals board fetched (ID: 42)"}
	assert.Equal(t, "[API CALL] Deals board fetched (ID: 42)", e.String())
}

func TestLog_Format(t *testing.T) {
	l := New(fixedNow)
	l.Add(TagLLM, "Interpreted query")
	l.Add(TagIntent, "%s | sector=%s", "pipeline", "Energy")

	want := "Agent Trace\n" +
		"[LLM] Interpreted query\n" +
		"[INTENT] pipeline | sector=Energy\n" +
		"Query Time: 2025-01-15T10:30:00Z"
	assert.Equal(t, want, l.Format(testTime))
}

func TestLog_FormatEmpty(t *testing.T) {
	assert.Equal(t, "Agent Trace\nQuery Time: 2025-01-15T10:30:00Z", New(nil).Format(testTime))
}
