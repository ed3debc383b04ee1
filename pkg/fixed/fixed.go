// Package fixed formats floats the way Number.prototype.toFixed does:
// the exact binary value is rounded half away from zero.
package fixed

import (
	"math"

	"github.com/shopspring/decimal"
)

const Digits = 2

// Round2 panics on NaN and ±Inf, check with Finite first.
func Round2(x float64) decimal.Decimal {
	return decimal.NewFromFloatWithExponent(x, -Digits)
}

func Finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Format2 returns x with exactly two fraction digits.
func Format2(x float64) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	}

	return Round2(x).StringFixed(Digits)
}
