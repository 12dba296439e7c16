// Package money renders amounts for display. All amounts arrive from the
// backend as floats, so formatting goes through go-money to get consistent
// symbol placement and two-decimal output.
package money

import (
	"strings"

	money "github.com/Rhymond/go-money"
)

// DefaultCurrency is used when no currency code is configured.
const DefaultCurrency = money.USD

// Formatter renders float amounts in a fixed currency.
type Formatter struct {
	currency string
}

// NewFormatter returns a formatter for the given ISO currency code, falling
// back to USD when the code is unknown.
func NewFormatter(code string) Formatter {
	code = strings.ToUpper(strings.TrimSpace(code))
	if money.GetCurrency(code) == nil {
		code = DefaultCurrency
	}
	return Formatter{currency: code}
}

// Format renders an amount with the currency symbol and two decimals,
// e.g. 100 -> "$100.00", -42.5 -> "-$42.50".
func (f Formatter) Format(amount float64) string {
	return money.NewFromFloat(amount, f.currencyCode()).Display()
}

// FormatPtr renders an optional amount; a nil pointer renders as zero.
func (f Formatter) FormatPtr(amount *float64) string {
	if amount == nil {
		return f.Format(0)
	}
	return f.Format(*amount)
}

func (f Formatter) currencyCode() string {
	if f.currency == "" {
		return DefaultCurrency
	}
	return f.currency
}

// Capitalize upper-cases the first letter of a word, for state badges.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
