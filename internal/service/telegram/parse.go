package telegram

import (
	"errors"
	"strconv"
	"strings"

	"github.com/ilyadubrovsky/grades-calculator/internal/domain"
	"github.com/ilyadubrovsky/grades-calculator/internal/service/sanitize"
)

var errBadArgs = errors.New("bad command arguments")

const fullFormScores = 5

// parseGradeInput expects: %practical partial1 partial2 practical improvement.
func parseGradeInput(args []string) (domain.GradeInput, error) {
	if len(args) != fullFormScores {
		return domain.GradeInput{}, errBadArgs
	}

	return domain.GradeInput{
		PracticalWeightPct: sanitize.Score(args[0]),
		Partial1:           sanitize.Score(args[1]),
		Partial2:           sanitize.Score(args[2]),
		PracticalScore:     sanitize.Score(args[3]),
		ImprovementScore:   sanitize.Score(args[4]),
	}, nil
}

// parseSimpleForm expects: name... gpa. The name may contain spaces.
func parseSimpleForm(args []string) (*domain.CourseForm, error) {
	if len(args) < 2 {
		return nil, errBadArgs
	}

	last := len(args) - 1
	return &domain.CourseForm{
		CourseName: strings.Join(args[:last], " "),
		GPA:        args[last],
	}, nil
}

// parseFullForm expects: name... %practical partial1 partial2 practical improvement.
func parseFullForm(args []string) (*domain.CourseForm, error) {
	if len(args) < fullFormScores+1 {
		return nil, errBadArgs
	}

	nameEnd := len(args) - fullFormScores
	scores := args[nameEnd:]
	return &domain.CourseForm{
		CourseName:      strings.Join(args[:nameEnd], " "),
		PPractic:        scores[0],
		Partial1:        scores[1],
		Partial2:        scores[2],
		Practic:         scores[3],
		ReplacementExam: scores[4],
	}, nil
}

// parseIndex converts the 1-based number shown in the list to an index.
func parseIndex(args []string) (int, error) {
	if len(args) != 1 {
		return 0, errBadArgs
	}

	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return 0, errBadArgs
	}

	return n - 1, nil
}
