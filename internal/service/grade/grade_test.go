package grade

import (
	"math"
	"testing"

	"github.com/ilyadubrovsky/grades-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeWithoutPractical(t *testing.T) {
	gpa := Compute(domain.GradeInput{Partial1: 80, Partial2: 80})
	assert.Equal(t, "8.00", gpa.StringFixed(2))
}

func TestComputeWithPractical(t *testing.T) {
	gpa := Compute(domain.GradeInput{
		PracticalWeightPct: 50,
		Partial1:           80,
		Partial2:           80,
		PracticalScore:     100,
	})
	assert.Equal(t, "9.00", gpa.StringFixed(2))
}

func TestComputeIgnoresPracticalScoreWithoutWeight(t *testing.T) {
	a := Compute(domain.GradeInput{Partial1: 70, Partial2: 55, PracticalScore: 0})
	b := Compute(domain.GradeInput{Partial1: 70, Partial2: 55, PracticalScore: 100})
	assert.True(t, a.Equal(b))
}

func TestComputeDependsOnlyOnFourInputsWithoutImprovement(t *testing.T) {
	inputs := []domain.GradeInput{
		{PracticalWeightPct: 30, Partial1: 45, Partial2: 62, PracticalScore: 90},
		{PracticalWeightPct: 0, Partial1: 100, Partial2: 0},
		{PracticalWeightPct: 100, Partial1: 10, Partial2: 20, PracticalScore: 73},
	}
	for _, in := range inputs {
		assert.True(t, Compute(in).Equal(Compute(in)))

		pp := in.PracticalWeightPct / 100
		want := ((in.Partial1 + in.Partial2) / 2) * math.Abs(pp-1)
		want += in.PracticalScore * pp
		if in.PracticalWeightPct == 0 {
			want = (in.Partial1 + in.Partial2) / 2
		}
		assert.InDelta(t, want/10, Compute(in).InexactFloat64(), 0.005)
	}
}

func TestImprovementTieGoesToFirstPartial(t *testing.T) {
	p1, p2 := applyImprovement(domain.GradeInput{Partial1: 50, Partial2: 50, ImprovementScore: 70})
	assert.Equal(t, 70.0, p1)
	assert.Equal(t, 50.0, p2)

	gpa := Compute(domain.GradeInput{Partial1: 50, Partial2: 50, ImprovementScore: 70})
	assert.Equal(t, "6.00", gpa.StringFixed(2))
}

func TestImprovementReplacesLowerPartialOnly(t *testing.T) {
	p1, p2 := applyImprovement(domain.GradeInput{Partial1: 80, Partial2: 40, ImprovementScore: 70})
	assert.Equal(t, 80.0, p1)
	assert.Equal(t, 70.0, p2)

	p1, p2 = applyImprovement(domain.GradeInput{Partial1: 40, Partial2: 80, ImprovementScore: 30})
	assert.Equal(t, 40.0, p1)
	assert.Equal(t, 80.0, p2)
}

func TestComputeDoesNotClamp(t *testing.T) {
	gpa := Compute(domain.GradeInput{Partial1: 150, Partial2: 150})
	assert.Equal(t, "15.00", gpa.StringFixed(2))
}

func TestComputeRoundsLikeToFixed(t *testing.T) {
	// (45 + 60) / 2 / 10 = 5.25
	gpa := Compute(domain.GradeInput{Partial1: 45, Partial2: 60})
	assert.Equal(t, "5.25", gpa.StringFixed(2))

	// 25% practical: 52.5*0.75 + 71*0.25 = 57.125 -> 5.7125
	gpa = Compute(domain.GradeInput{PracticalWeightPct: 25, Partial1: 45, Partial2: 60, PracticalScore: 71})
	assert.Equal(t, "5.71", gpa.StringFixed(2))
}

func TestScoreNeededWithoutPractical(t *testing.T) {
	needed := ScoreNeeded(domain.GradeInput{Partial1: 40, Partial2: 50})
	assert.Equal(t, 70.0, needed)
}

func TestScoreNeededMissingPractical(t *testing.T) {
	needed := ScoreNeeded(domain.GradeInput{PracticalWeightPct: 50, Partial1: 40, Partial2: 40})
	assert.InDelta(t, 80.0, needed, 1e-9)
}

func TestScoreNeededWithPractical(t *testing.T) {
	// ((60 - 40*0.5)/0.5)*2 - 50 = 110
	needed := ScoreNeeded(domain.GradeInput{
		PracticalWeightPct: 50,
		Partial1:           30,
		Partial2:           50,
		PracticalScore:     40,
	})
	assert.InDelta(t, 110.0, needed, 1e-9)
}

func TestScoreNeededFullPracticalWeight(t *testing.T) {
	needed := ScoreNeeded(domain.GradeInput{PracticalWeightPct: 100, Partial1: 10, Partial2: 20, PracticalScore: 30})
	assert.True(t, math.IsInf(needed, 1))
}

func TestEvaluateApproved(t *testing.T) {
	evaluation := Evaluate(domain.GradeInput{Partial1: 60, Partial2: 60})
	assert.True(t, evaluation.Approved)
	assert.Nil(t, evaluation.ScoreNeeded)
}

func TestEvaluateFailedNeedsImprovement(t *testing.T) {
	evaluation := Evaluate(domain.GradeInput{Partial1: 40, Partial2: 50})
	assert.False(t, evaluation.Approved)
	require.NotNil(t, evaluation.ScoreNeeded)
	assert.Equal(t, 70.0, *evaluation.ScoreNeeded)
	assert.Equal(t, domain.NeededInImprovement, evaluation.NeededIn)
}

func TestEvaluateFailedNeedsPractical(t *testing.T) {
	evaluation := Evaluate(domain.GradeInput{PracticalWeightPct: 50, Partial1: 40, Partial2: 40})
	assert.False(t, evaluation.Approved)
	require.NotNil(t, evaluation.ScoreNeeded)
	assert.Equal(t, domain.NeededInPractical, evaluation.NeededIn)
}
