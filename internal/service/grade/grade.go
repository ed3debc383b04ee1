package grade

import (
	"math"

	"github.com/ilyadubrovsky/grades-calculator/internal/domain"
	"github.com/ilyadubrovsky/grades-calculator/pkg/fixed"
	"github.com/shopspring/decimal"
)

// Compute returns the final grade on a 0-10 scale with two fraction digits.
// Input is expected to be sanitized already, nothing is clamped here.
func Compute(input domain.GradeInput) decimal.Decimal {
	return fixed.Round2(score(input) / 10)
}

func score(input domain.GradeInput) float64 {
	partial1, partial2 := applyImprovement(input)

	if input.PracticalWeightPct == 0 {
		return (partial1 + partial2) / 2
	}

	pp, pa := weights(input.PracticalWeightPct)
	return ((partial1+partial2)/2)*pa + input.PracticalScore*pp
}

// applyImprovement replaces the lower partial when the improvement exam is
// higher. Ties go to the first partial.
func applyImprovement(input domain.GradeInput) (float64, float64) {
	partial1, partial2 := input.Partial1, input.Partial2
	if input.ImprovementScore == 0 {
		return partial1, partial2
	}

	if partial1 <= partial2 {
		partial1 = math.Max(partial1, input.ImprovementScore)
	} else {
		partial2 = math.Max(partial2, input.ImprovementScore)
	}

	return partial1, partial2
}

// weights returns the practical and the classroom share, both in [0, 1].
func weights(practicalWeightPct float64) (float64, float64) {
	pp := practicalWeightPct / 100
	return pp, math.Abs(pp - 1)
}

// ScoreNeeded returns the improvement exam score (or the practical score
// when it is still missing) required to reach a passing average. The value
// is advisory: above 100 means passing is out of reach, and a 100%
// practical weight yields ±Inf.
func ScoreNeeded(input domain.GradeInput) float64 {
	best := math.Max(input.Partial1, input.Partial2)

	if input.PracticalWeightPct == 0 {
		return 2*domain.PassingScore - best
	}

	pp, pa := weights(input.PracticalWeightPct)
	if input.PracticalScore == 0 {
		return (domain.PassingScore - ((input.Partial1+input.Partial2)/2)*pa) / pp
	}

	return ((domain.PassingScore-input.PracticalScore*pp)/pa)*2 - best
}

func Evaluate(input domain.GradeInput) *domain.GradeEvaluation {
	gpa := Compute(input)
	evaluation := &domain.GradeEvaluation{
		GPA:      gpa,
		Approved: gpa.GreaterThanOrEqual(decimal.NewFromFloat(domain.PassingGrade)),
	}
	if evaluation.Approved {
		return evaluation
	}

	needed := ScoreNeeded(input)
	evaluation.ScoreNeeded = &needed
	evaluation.NeededIn = domain.NeededInImprovement
	if input.PracticalWeightPct != 0 && input.PracticalScore == 0 {
		evaluation.NeededIn = domain.NeededInPractical
	}

	return evaluation
}
