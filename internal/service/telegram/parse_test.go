package telegram

import (
	"testing"

	"github.com/ilyadubrovsky/grades-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGradeInput(t *testing.T) {
	input, err := parseGradeInput([]string{"50", "80", "80", "100", "0"})
	require.NoError(t, err)
	assert.Equal(t, domain.GradeInput{
		PracticalWeightPct: 50,
		Partial1:           80,
		Partial2:           80,
		PracticalScore:     100,
	}, input)

	input, err = parseGradeInput([]string{"0", "120", "-4", "x", "7.5"})
	require.NoError(t, err)
	assert.Equal(t, domain.GradeInput{Partial1: 100}, input)

	_, err = parseGradeInput([]string{"50", "80"})
	assert.Error(t, err)
}

func TestParseSimpleForm(t *testing.T) {
	form, err := parseSimpleForm([]string{"Ecuaciones", "Diferenciales", "7.80"})
	require.NoError(t, err)
	assert.Equal(t, "Ecuaciones Diferenciales", form.CourseName)
	assert.Equal(t, "7.80", form.GPA)

	_, err = parseSimpleForm([]string{"8"})
	assert.Error(t, err)
}

func TestParseFullForm(t *testing.T) {
	form, err := parseFullForm([]string{"Fisica", "I", "30", "70", "65", "90", "0"})
	require.NoError(t, err)
	assert.Equal(t, &domain.CourseForm{
		CourseName:      "Fisica I",
		PPractic:        "30",
		Partial1:        "70",
		Partial2:        "65",
		Practic:         "90",
		ReplacementExam: "0",
	}, form)

	_, err = parseFullForm([]string{"30", "70", "65", "90", "0"})
	assert.Error(t, err)
}

func TestParseIndex(t *testing.T) {
	index, err := parseIndex([]string{"3"})
	require.NoError(t, err)
	assert.Equal(t, 2, index)

	for _, args := range [][]string{nil, {"0"}, {"-1"}, {"dos"}, {"1", "2"}} {
		_, err = parseIndex(args)
		assert.Error(t, err, "%v", args)
	}
}

func TestImportParser(t *testing.T) {
	_, err := importParser("promedios.HTML")
	assert.NoError(t, err)
	_, err = importParser("promedios.xlsx")
	assert.NoError(t, err)
	_, err = importParser("promedios.pdf")
	assert.Error(t, err)
}
