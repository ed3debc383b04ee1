package courses

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/ilyadubrovsky/grades-calculator/internal/domain"
	ierrors "github.com/ilyadubrovsky/grades-calculator/internal/errors"
	"github.com/ilyadubrovsky/grades-calculator/internal/repository"
	"github.com/ilyadubrovsky/grades-calculator/internal/service/aggregate"
	"github.com/ilyadubrovsky/grades-calculator/internal/service/grade"
	"github.com/ilyadubrovsky/grades-calculator/internal/service/sanitize"
	"github.com/rs/zerolog/log"
)

type svc struct {
	coursesRepo repository.Courses
	validate    *validator.Validate
}

func NewService(coursesRepo repository.Courses) *svc {
	return &svc{
		coursesRepo: coursesRepo,
		validate:    validator.New(),
	}
}

// submission mirrors which inputs are required in each form mode.
type submission struct {
	FullFormMode    bool
	CourseName      string `validate:"required,max=100"`
	GPA             string `validate:"required_if=FullFormMode false"`
	PPractic        string `validate:"required_if=FullFormMode true"`
	Partial1        string `validate:"required_if=FullFormMode true"`
	Partial2        string `validate:"required_if=FullFormMode true"`
	Practic         string `validate:"required_if=FullFormMode true"`
	ReplacementExam string `validate:"required_if=FullFormMode true"`
}

func (s *svc) View(ctx context.Context) (*domain.CoursesView, error) {
	records, err := s.coursesRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("coursesRepo.GetAll: %w", err)
	}

	grades := make([]float64, 0, len(records))
	for _, record := range records {
		grades = append(grades, record.GPA.InexactFloat64())
	}

	return &domain.CoursesView{
		Courses:   records,
		GlobalGPA: aggregate.Average(grades).Display(),
	}, nil
}

func (s *svc) BeginAdd(state domain.FormState) domain.FormState {
	return state.Reset()
}

func (s *svc) BeginEdit(
	ctx context.Context,
	state domain.FormState,
	index int,
) (domain.FormState, *domain.CourseRecord, error) {
	records, err := s.coursesRepo.GetAll(ctx)
	if err != nil {
		return state, nil, fmt.Errorf("coursesRepo.GetAll: %w", err)
	}
	if index < 0 || index >= len(records) {
		return state, nil, fmt.Errorf("index %d, length %d: %w", index, len(records), ierrors.ErrIndexOutOfRange)
	}

	selected := index
	state.EditMode = true
	state.SelectedIndex = &selected

	return state, records[index], nil
}

func (s *svc) ToggleFullForm(state domain.FormState) domain.FormState {
	state.FullFormMode = !state.FullFormMode
	return state
}

func (s *svc) Submit(
	ctx context.Context,
	state domain.FormState,
	form *domain.CourseForm,
) (domain.FormState, *domain.CoursesView, error) {
	err := s.validate.StructCtx(ctx, &submission{
		FullFormMode:    state.FullFormMode,
		CourseName:      form.CourseName,
		GPA:             form.GPA,
		PPractic:        form.PPractic,
		Partial1:        form.Partial1,
		Partial2:        form.Partial2,
		Practic:         form.Practic,
		ReplacementExam: form.ReplacementExam,
	})
	if err != nil {
		return state, nil, fmt.Errorf("%w: %v", ierrors.ErrInvalidCourseForm, err)
	}

	record := buildRecord(state.FullFormMode, form)

	if state.EditMode {
		if state.SelectedIndex == nil {
			return state, nil, fmt.Errorf("edit mode without a selected course: %w", ierrors.ErrIndexOutOfRange)
		}
		err = s.coursesRepo.ReplaceAt(ctx, *state.SelectedIndex, record)
		if err != nil {
			return state, nil, fmt.Errorf("coursesRepo.ReplaceAt: %w", err)
		}
		log.Debug().Int("index", *state.SelectedIndex).Msg("course replaced")
	} else {
		if err = s.coursesRepo.Append(ctx, record); err != nil {
			return state, nil, fmt.Errorf("coursesRepo.Append: %w", err)
		}
		log.Debug().Str("course", record.CourseName).Msg("course appended")
	}

	view, err := s.View(ctx)
	if err != nil {
		return state.Reset(), nil, fmt.Errorf("View: %w", err)
	}

	return state.Reset(), view, nil
}

// buildRecord computes the GPA in full form mode. In simple mode only the
// name and the manual GPA are kept.
func buildRecord(fullFormMode bool, form *domain.CourseForm) *domain.CourseRecord {
	if !fullFormMode {
		return &domain.CourseRecord{
			CourseName: form.CourseName,
			GPA:        sanitize.GPA(form.GPA),
		}
	}

	record := &domain.CourseRecord{
		CourseName:      form.CourseName,
		PPractic:        sanitize.Score(form.PPractic),
		Partial1:        sanitize.Score(form.Partial1),
		Partial2:        sanitize.Score(form.Partial2),
		Practic:         sanitize.Score(form.Practic),
		ReplacementExam: sanitize.Score(form.ReplacementExam),
	}
	record.GPA = grade.Compute(record.GradeInput())

	return record
}

func (s *svc) Delete(
	ctx context.Context,
	state domain.FormState,
	index int,
) (domain.FormState, *domain.CoursesView, error) {
	if err := s.coursesRepo.RemoveAt(ctx, index); err != nil {
		return state, nil, fmt.Errorf("coursesRepo.RemoveAt: %w", err)
	}
	log.Debug().Int("index", index).Msg("course removed")

	// any held index is stale now
	state = state.Reset()

	view, err := s.View(ctx)
	if err != nil {
		return state, nil, fmt.Errorf("View: %w", err)
	}

	return state, view, nil
}

// Import appends the named records and returns how many were appended.
func (s *svc) Import(ctx context.Context, records []*domain.CourseRecord) (int, *domain.CoursesView, error) {
	valid := make([]*domain.CourseRecord, 0, len(records))
	for _, record := range records {
		if record.CourseName == "" {
			continue
		}
		valid = append(valid, record)
	}

	if len(valid) != 0 {
		if err := s.coursesRepo.Append(ctx, valid...); err != nil {
			return 0, nil, fmt.Errorf("coursesRepo.Append: %w", err)
		}
	}

	view, err := s.View(ctx)
	if err != nil {
		return len(valid), nil, fmt.Errorf("View: %w", err)
	}

	return len(valid), view, nil
}
