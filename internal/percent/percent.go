// Exact percentage arithmetic.
//
// Percentages are reported and compared at two decimal places, so they are
// computed with decimal division rather than floats to get the same rounding
// on every platform.
package percent

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Number of decimal places percentages are rounded to.
const Places = 2

var hundred = decimal.NewFromInt(100)

// The smallest percentage shown by default.
var One = decimal.NewFromInt(1)

// Returns part * 100 / whole, rounded half-up to two decimal places.
//
// A zero whole gives zero.
func Of(part int64, whole int64) decimal.Decimal {
	if whole == 0 {
		return decimal.Zero
	}

	return decimal.NewFromInt(part).
		Mul(hundred).
		DivRound(decimal.NewFromInt(whole), Places)
}

// Rounds an arbitrary decimal half-up to two places.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Places)
}

// Parses a percentage such as "1" or "0.5". The result keeps two places.
func Parse(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid percentage %q: %w", s, err)
	}

	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("invalid percentage %q: negative", s)
	}

	return Round(d), nil
}

// Formats with exactly two decimal places, e.g. "75.00".
func Format(d decimal.Decimal) string {
	return d.StringFixed(Places)
}
