package clean

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"$12,500.00", "12500"},
		{"₹1,00,000", "100000"},
		{"  2500 ", "2500"},
		{"$ 1,000", "1000"},
		{"-300.50", "-300.5"},
		{"", "0"},
		{"abc", "0"},
		{"$", "0"},
		{"12.5.6", "0"},
	}
	for _, tt := range tests {
		got := Amount(tt.raw)
		assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "Amount(%q) = %s, want %s", tt.raw, got, tt.want)
	}
}

func TestAmount_EqualsStrippedValue(t *testing.T) {
	assert.Equal(t, 12500.0, Amount("$12,500.00").InexactFloat64())
}

func TestAmountStripping_CustomSymbols(t *testing.T) {
	got := AmountStripping("€4,200", []string{"€"})
	assert.Equal(t, "4200.00", got.StringFixed(2))

	// Without the symbol configured the value does not parse.
	assert.True(t, Amount("€4,200").IsZero())
}

func TestAmountStripping_KeepsDefaultSymbols(t *testing.T) {
	extra := []string{"€"}
	assert.Equal(t, "1000.00", AmountStripping("$1,000", extra).StringFixed(2))
	assert.Equal(t, "250.00", AmountStripping("₹250", extra).StringFixed(2))
	assert.Equal(t, "75.00", AmountStripping("75", []string{""}).StringFixed(2))
}

func TestDate(t *testing.T) {
	want := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	for _, raw := range []string{
		"2025-01-15",
		"01/15/2025",
		"Jan 15, 2025",
		"2025-01-15T10:30:00Z",
		" 2025-01-15 ",
		"15/01/2025",
	} {
		got, ok := Date(raw)
		require.True(t, ok, "Date(%q) should parse", raw)
		assert.True(t, want.Equal(got), "Date(%q) = %v", raw, got)
	}
}

func TestDate_DayFirstWhenMonthOutOfRange(t *testing.T) {
	got, ok := Date("15/07/2026")
	require.True(t, ok)
	assert.True(t, time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC).Equal(got), "got %v", got)

	// Month first still wins when both readings are valid.
	got, ok = Date("03/04/2026")
	require.True(t, ok)
	assert.Equal(t, time.March, got.Month())
}

func TestDate_Unparseable(t *testing.T) {
	for _, raw := range []string{"", "   ", "not a date", "abc", "13/45/2025"} {
		got, ok := Date(raw)
		assert.False(t, ok, "Date(%q) should not parse", raw)
		assert.True(t, got.IsZero())
	}
}
