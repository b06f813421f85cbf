package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// formatMoney renders an amount the way a statement would, with two
// decimals and the sign ahead of the currency symbol.
func formatMoney(value float64) string {
	d := decimal.NewFromFloat(value)
	if d.IsNegative() {
		return "-$" + d.Neg().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}

// formatRate renders a decimal fraction as a percentage with four
// decimals, e.g. 0.126825 -> "12.6825%".
func formatRate(value float64) string {
	return decimal.NewFromFloat(value * 100).StringFixed(4) + "%"
}

func frequencyLabel(periodsPerYear int) string {
	switch periodsPerYear {
	case 1:
		return "Annual"
	case 2:
		return "Semi-annual"
	case 4:
		return "Quarterly"
	case 12:
		return "Monthly"
	case 52:
		return "Weekly"
	case 365:
		return "Daily"
	}
	return fmt.Sprintf("%dx/year", periodsPerYear)
}
