package repository

import (
	"context"

	"github.com/ilyadubrovsky/grades-calculator/internal/domain"
)

type Courses interface {
	GetAll(ctx context.Context) ([]*domain.CourseRecord, error)
	Append(ctx context.Context, records ...*domain.CourseRecord) error
	ReplaceAt(ctx context.Context, index int, record *domain.CourseRecord) error
	RemoveAt(ctx context.Context, index int) error
}
