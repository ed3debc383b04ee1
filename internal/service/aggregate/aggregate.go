package aggregate

import (
	"math"

	"github.com/ilyadubrovsky/grades-calculator/pkg/fixed"
)

// DisplayZero is shown instead of the mean of an empty list.
const DisplayZero = "0"

// Result is the arithmetic mean of a list of course grades. The mean of an
// empty list is NaN.
type Result struct {
	value float64
}

func Average(grades []float64) Result {
	total := 0.0
	for _, grade := range grades {
		total += grade
	}

	return Result{value: total / float64(len(grades))}
}

func (r Result) IsNaN() bool {
	return math.IsNaN(r.value)
}

func (r Result) Float64() float64 {
	return r.value
}

// String formats the mean with two fraction digits, "NaN" for an empty list.
func (r Result) String() string {
	return fixed.Format2(r.value)
}

// Display is String with NaN mapped to DisplayZero.
func (r Result) Display() string {
	if r.IsNaN() {
		return DisplayZero
	}

	return r.String()
}
