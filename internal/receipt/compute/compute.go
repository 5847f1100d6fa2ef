// Package compute holds the pure arithmetic behind every displayed and
// printed monetary value. The form, the HTML preview and the PDF writer all
// call these same functions, which is what keeps the three in agreement.
package compute

import (
	"strconv"
	"strings"

	"github.com/rasidhq/rasid/internal/receipt/domain"
)

// CurrencyPrefix is the fixed prefix used by Currency. Only one locale and
// one currency are supported.
const CurrencyPrefix = "Rs."

func LineAmount(item domain.LineItem) float64 {
	return item.Quantity * item.Rate
}

func LineTax(item domain.LineItem) float64 {
	return LineAmount(item) * item.IGSTPercent / 100
}

// LineTotal is the per-row payable value: amount + tax + cess. Cess itself
// is not taxed.
func LineTotal(item domain.LineItem) float64 {
	return LineAmount(item) + LineTax(item) + item.Cess
}

func SubTotal(items []domain.LineItem) float64 {
	var sum float64
	for _, item := range items {
		sum += LineAmount(item)
	}
	return sum
}

func TotalTax(items []domain.LineItem) float64 {
	var sum float64
	for _, item := range items {
		sum += LineTax(item)
	}
	return sum
}

// GrandTotal is subtotal plus tax. Cess is shown per row but deliberately
// kept out of the aggregate; see DESIGN.md before changing this.
func GrandTotal(items []domain.LineItem) float64 {
	return SubTotal(items) + TotalTax(items)
}

// Currency renders a monetary value with the fixed prefix, two decimals and
// Indian digit grouping (1,00,000.00 rather than 100,000.00).
func Currency(value float64) string {
	return CurrencyPrefix + groupIndian(strconv.FormatFloat(value, 'f', 2, 64))
}

// groupIndian inserts separators into a plain fixed-point decimal string:
// the last three integer digits form one group, every two digits before
// that form another.
func groupIndian(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")
	if len(intPart) <= 3 {
		return sign + intPart + "." + fracPart
	}

	head := intPart[:len(intPart)-3]
	tail := intPart[len(intPart)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	groups = append(groups, tail)
	return sign + strings.Join(groups, ",") + "." + fracPart
}
