package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAverageEmpty(t *testing.T) {
	result := Average(nil)
	assert.True(t, result.IsNaN())
	assert.Equal(t, "NaN", result.String())
	assert.Equal(t, "0", result.Display())

	assert.Equal(t, "0", Average([]float64{}).Display())
}

func TestAverage(t *testing.T) {
	result := Average([]float64{8.00, 6.00})
	assert.False(t, result.IsNaN())
	assert.Equal(t, 7.0, result.Float64())
	assert.Equal(t, "7.00", result.Display())
}

func TestAverageRounding(t *testing.T) {
	assert.Equal(t, "6.67", Average([]float64{6, 7, 7}).Display())
	assert.Equal(t, "9.25", Average([]float64{10, 8.5}).Display())
}
