package domain

import "github.com/shopspring/decimal"

const (
	PassingGrade = 6.0
	PassingScore = 60.0
)

type GradeInput struct {
	PracticalWeightPct float64
	Partial1           float64
	Partial2           float64
	PracticalScore     float64
	ImprovementScore   float64
}

type NeededIn string

const (
	NeededInImprovement NeededIn = "mejoramiento"
	NeededInPractical   NeededIn = "practico"
)

type GradeEvaluation struct {
	GPA      decimal.Decimal
	Approved bool
	// ScoreNeeded is set only when Approved is false. It may exceed 100.
	ScoreNeeded *float64
	NeededIn    NeededIn
}
