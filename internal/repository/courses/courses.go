package courses

import (
	"context"
	"errors"
	"fmt"

	"github.com/ilyadubrovsky/grades-calculator/internal/database"
	"github.com/ilyadubrovsky/grades-calculator/internal/domain"
	ierrors "github.com/ilyadubrovsky/grades-calculator/internal/errors"
	"github.com/ilyadubrovsky/grades-calculator/internal/repository/courses/dbo"
	"github.com/rs/zerolog/log"
)

const DefaultKey = "coursesEspol"

type repo struct {
	kv             database.KV
	key            string
	resetMalformed bool
}

// NewRepository keeps the whole course list under a single key of kv. With
// resetMalformed a list that cannot be decoded is replaced by an empty one
// instead of failing with ErrMalformedStoredData.
func NewRepository(kv database.KV, key string, resetMalformed bool) *repo {
	if key == "" {
		key = DefaultKey
	}

	return &repo{
		kv:             kv,
		key:            key,
		resetMalformed: resetMalformed,
	}
}

// GetAll initializes the slot with an empty list on first access.
func (r *repo) GetAll(ctx context.Context) ([]*domain.CourseRecord, error) {
	data, ok, err := r.kv.Get(ctx, r.key)
	if err != nil {
		return nil, fmt.Errorf("kv.Get: %w", err)
	}
	if !ok {
		records := make([]*domain.CourseRecord, 0)
		if err = r.save(ctx, records); err != nil {
			return nil, fmt.Errorf("save(init): %w", err)
		}
		return records, nil
	}

	records, err := dbo.ToDomain(data)
	if err == nil {
		return records, nil
	}
	if !r.resetMalformed {
		return nil, fmt.Errorf("dbo.ToDomain: %w: %v", ierrors.ErrMalformedStoredData, err)
	}

	log.Warn().Str("key", r.key).Msgf("resetting malformed course list: %v", err)
	records = make([]*domain.CourseRecord, 0)
	if err = r.save(ctx, records); err != nil {
		return nil, fmt.Errorf("save(reset): %w", err)
	}

	return records, nil
}

func (r *repo) Append(ctx context.Context, records ...*domain.CourseRecord) error {
	current, err := r.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("GetAll: %w", err)
	}

	if err = r.save(ctx, append(current, records...)); err != nil {
		return fmt.Errorf("save: %w", err)
	}

	return nil
}

func (r *repo) ReplaceAt(ctx context.Context, index int, record *domain.CourseRecord) error {
	current, err := r.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("GetAll: %w", err)
	}
	if err = checkIndex(index, len(current)); err != nil {
		return err
	}

	current[index] = record
	if err = r.save(ctx, current); err != nil {
		return fmt.Errorf("save: %w", err)
	}

	return nil
}

// RemoveAt shifts every following course left by one, so indices held by
// callers are stale afterwards.
func (r *repo) RemoveAt(ctx context.Context, index int) error {
	current, err := r.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("GetAll: %w", err)
	}
	if err = checkIndex(index, len(current)); err != nil {
		return err
	}

	current = append(current[:index], current[index+1:]...)
	if err = r.save(ctx, current); err != nil {
		return fmt.Errorf("save: %w", err)
	}

	return nil
}

func (r *repo) save(ctx context.Context, records []*domain.CourseRecord) error {
	data, err := dbo.FromDomain(records)
	if err != nil {
		return fmt.Errorf("dbo.FromDomain: %w", err)
	}

	if err = r.kv.Set(ctx, r.key, data); err != nil {
		return fmt.Errorf("kv.Set: %w", err)
	}

	return nil
}

func checkIndex(index, length int) error {
	if index < 0 || index >= length {
		return fmt.Errorf("index %d, length %d: %w", index, length, ierrors.ErrIndexOutOfRange)
	}

	return nil
}

// IsMalformed reports whether err comes from an undecodable stored list.
func IsMalformed(err error) bool {
	return errors.Is(err, ierrors.ErrMalformedStoredData)
}
