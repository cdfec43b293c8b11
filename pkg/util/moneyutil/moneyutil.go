// Package moneyutil formats decimal amounts for display.
package moneyutil

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Placeholder is shown where an amount is absent.
const Placeholder = "-"

// FormatINR renders whole rupees with Indian digit grouping, e.g. ₹1,85,400.
func FormatINR(amount *decimal.Decimal) string {
	if amount == nil {
		return Placeholder
	}
	sign := ""
	if amount.IsNegative() {
		sign = "-"
	}
	// sign is taken before rounding so -0.4 renders as -₹0
	return sign + "₹" + groupIndian(amount.Abs().Round(0).String())
}

// FormatUSD renders dollars and cents with thousands grouping, e.g. $2,500.00.
func FormatUSD(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}
	whole, cents, _ := strings.Cut(fixed, ".")
	return sign + "$" + groupThousands(whole) + "." + cents
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// groupIndian keeps the last three digits together and groups the rest in pairs.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(append(groups, tail), ",")
}
