package domain

import "github.com/shopspring/decimal"

// CourseRecord is one row of the persisted course list. In simple form
// mode only CourseName and GPA carry meaning.
type CourseRecord struct {
	CourseName      string
	GPA             decimal.Decimal
	PPractic        float64
	Partial1        float64
	Partial2        float64
	Practic         float64
	ReplacementExam float64
}

// GradeInput returns the calculator input stored in the record.
func (c *CourseRecord) GradeInput() GradeInput {
	return GradeInput{
		PracticalWeightPct: c.PPractic,
		Partial1:           c.Partial1,
		Partial2:           c.Partial2,
		PracticalScore:     c.Practic,
		ImprovementScore:   c.ReplacementExam,
	}
}

// CourseForm holds raw, unsanitized form input.
type CourseForm struct {
	CourseName      string
	GPA             string
	PPractic        string
	Partial1        string
	Partial2        string
	Practic         string
	ReplacementExam string
}
