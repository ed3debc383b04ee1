package telegram

import (
	"fmt"
	"strings"

	"github.com/ilyadubrovsky/grades-calculator/internal/config/answers"
	"github.com/ilyadubrovsky/grades-calculator/internal/domain"
	"github.com/ilyadubrovsky/grades-calculator/pkg/fixed"
)

func renderEvaluation(evaluation *domain.GradeEvaluation) string {
	b := &strings.Builder{}

	if evaluation.Approved {
		b.WriteString(answers.Approved)
	} else {
		b.WriteString(answers.NotApproved)
	}
	fmt.Fprintf(b, "\n\n%s\n%s", evaluation.GPA.StringFixed(fixed.Digits), answers.FinalGrade)

	if evaluation.ScoreNeeded != nil {
		b.WriteString("\n\n")
		fmt.Fprintf(b, answers.ScoreNeededTip, fixed.Format2(*evaluation.ScoreNeeded), evaluation.NeededIn)
	}

	return b.String()
}

func renderView(view *domain.CoursesView) string {
	b := &strings.Builder{}

	if len(view.Courses) == 0 {
		b.WriteString(answers.NoCourses)
	}
	for i, course := range view.Courses {
		fmt.Fprintf(b, "%d. %s – %s\n", i+1, course.CourseName, course.GPA.StringFixed(fixed.Digits))
	}

	fmt.Fprintf(b, "\n%s: %s", answers.GlobalGPA, view.GlobalGPA)

	return b.String()
}

func renderEditing(index int, course *domain.CourseRecord) string {
	text := fmt.Sprintf(answers.EditingCourse, index+1, course.CourseName, course.GPA.StringFixed(fixed.Digits))
	if course.GradeInput() == (domain.GradeInput{}) {
		return text
	}

	return text + fmt.Sprintf(
		"\n\n%% Práctico: %v\nParcial 1: %v\nParcial 2: %v\nPráctico: %v\nMejoramiento: %v",
		course.PPractic, course.Partial1, course.Partial2, course.Practic, course.ReplacementExam,
	)
}
