package service

import (
	"context"

	"github.com/ilyadubrovsky/grades-calculator/internal/domain"
)

type Courses interface {
	View(ctx context.Context) (*domain.CoursesView, error)
	BeginAdd(state domain.FormState) domain.FormState
	BeginEdit(ctx context.Context, state domain.FormState, index int) (domain.FormState, *domain.CourseRecord, error)
	ToggleFullForm(state domain.FormState) domain.FormState
	Submit(ctx context.Context, state domain.FormState, form *domain.CourseForm) (domain.FormState, *domain.CoursesView, error)
	Delete(ctx context.Context, state domain.FormState, index int) (domain.FormState, *domain.CoursesView, error)
	Import(ctx context.Context, records []*domain.CourseRecord) (int, *domain.CoursesView, error)
}

type Telegram interface {
	Start()
	Stop()
}
