// Package money provides decimal arithmetic and display formatting for
// monetary amounts. All invoice math goes through shopspring decimals;
// float64 never touches a final total.
package money

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Currency is the fixed display currency.
const Currency = "RON"

// Zero is decimal zero
var Zero = decimal.Zero

// FromInt creates a decimal from an int
func FromInt(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

// FromString parses a decimal from its textual form
func FromString(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

// MustFromString parses a decimal from string, panics on error
func MustFromString(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// FromJSONNumber parses a decimal from the exact JSON text of a number, so
// values like 2250 or 149.99 never round-trip through binary floating point.
func FromJSONNumber(n json.Number) (decimal.Decimal, error) {
	return decimal.NewFromString(n.String())
}

// Mul multiplies two decimals, rounds to 2 places
func Mul(a, b decimal.Decimal) decimal.Decimal {
	return a.Mul(b).Round(2)
}

// Sum sums a slice of decimals
func Sum(values []decimal.Decimal) decimal.Decimal {
	result := Zero
	for _, v := range values {
		result = result.Add(v)
	}
	return result
}

// Format renders an amount with exactly two decimal places and the fixed
// currency suffix, e.g. "6750.00 RON".
func Format(d decimal.Decimal) string {
	return d.StringFixed(2) + " " + Currency
}

// FormatPlain renders an amount with exactly two decimal places and no
// currency suffix.
func FormatPlain(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// IsNonNegative returns true if decimal is >= zero
func IsNonNegative(d decimal.Decimal) bool {
	return d.GreaterThanOrEqual(Zero)
}
