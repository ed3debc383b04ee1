package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	cases := map[string]float64{
		"":     0,
		"85":   85,
		" 42 ": 42,
		"100":  100,
		"150":  100,
		"-5":   0,
		"8.5":  0,
		"e":    0,
		"1e2":  0,
		"abc":  0,
		"0":    0,
	}

	for raw, want := range cases {
		assert.Equal(t, want, Score(raw), "Score(%q)", raw)
	}
}

func TestGPA(t *testing.T) {
	cases := map[string]string{
		"":       "0.00",
		"7":      "7.00",
		"7.":     "7.00",
		"7.5":    "7.50",
		"7.256":  "7.25",
		".5":     "0.50",
		"12.34":  "10.00",
		"10.99":  "10.00",
		"11":     "10.00",
		"-3":     "0.00",
		"-3.5":   "0.50",
		"letras": "0.00",
	}

	for raw, want := range cases {
		assert.Equal(t, want, GPA(raw).StringFixed(2), "GPA(%q)", raw)
	}
}
