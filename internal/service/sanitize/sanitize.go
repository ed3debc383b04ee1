// Package sanitize clamps raw form input into the ranges the calculator
// expects: integer scores in [0, 100] and a GPA in [0.00, 10.00].
package sanitize

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	MaxScore = 100
	MaxGPA   = 10
)

var maxGPA = decimal.NewFromInt(MaxGPA)

// Score drops decimals, exponents and negatives to zero and caps at 100.
func Score(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.ContainsAny(raw, ".eE") {
		return 0
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0
	}
	if value > MaxScore {
		return MaxScore
	}

	return float64(value)
}

// GPA keeps at most two fraction digits and clamps to [0, 10].
func GPA(raw string) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero
	}

	integerPart, fractionalPart, hasDot := strings.Cut(raw, ".")
	if hasDot {
		if len(fractionalPart) > 2 {
			fractionalPart = fractionalPart[:2]
		}
		integerPart = clampInteger(integerPart)
		raw = integerPart
		if fractionalPart != "" {
			raw += "." + fractionalPart
		}
	}

	value, err := decimal.NewFromString(raw)
	if err != nil || value.IsNegative() {
		return decimal.Zero
	}
	if value.GreaterThan(maxGPA) {
		return maxGPA
	}

	return value
}

func clampInteger(integerPart string) string {
	if integerPart == "" {
		return "0"
	}

	value, err := strconv.Atoi(integerPart)
	switch {
	case err != nil, value < 0:
		return "0"
	case value > MaxGPA:
		return strconv.Itoa(MaxGPA)
	}

	return integerPart
}
