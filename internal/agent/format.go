package agent

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/boardbrief/internal/metrics"
)

const noData = "No data available"

var hundred = decimal.NewFromInt(100)

// FormatMoney renders d as dollars with thousands separators, e.g. "$1,234.56".
// Negative amounts are written "-$12.00".
func FormatMoney(d decimal.Decimal) string {
	whole, cents, _ := strings.Cut(d.Abs().StringFixed(2), ".")
	n, _ := new(big.Int).SetString(whole, 10)
	sign := ""
	if d.Round(2).IsNegative() {
		sign = "-"
	}
	return sign + "$" + humanize.BigComma(n) + "." + cents
}

// executionRate is completed work as a percentage of revenue, zero when
// there is no revenue.
func executionRate(completed, revenue decimal.Decimal) string {
	if !revenue.IsPositive() {
		return "0.0"
	}
	return completed.Div(revenue).Mul(hundred).StringFixed(1)
}

// conversionRate is work orders as a percentage of deals, zero without deals.
func conversionRate(workOrders, deals int) string {
	if deals <= 0 {
		return "0.0"
	}
	return fmt.Sprintf("%.1f", float64(workOrders)/float64(deals)*100)
}

func formatBreakdown(b metrics.Breakdown) string {
	if len(b) == 0 {
		return noData
	}
	lines := make([]string, len(b))
	for i, st := range b {
		lines[i] = fmt.Sprintf("%s: %s", st.Sector, FormatMoney(st.Total))
	}
	return strings.Join(lines, "\n")
}
