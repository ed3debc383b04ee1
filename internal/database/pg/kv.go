package pg

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ilyadubrovsky/grades-calculator/internal/database"
	"github.com/jackc/pgx/v4"
)

type kv struct {
	db database.PG
}

func NewKV(db database.PG) *kv {
	return &kv{db: db}
}

func (s *kv) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query := `
		SELECT value
		FROM kv_slots
		WHERE key = $1
	`

	var value string
	err := s.db.QueryRow(ctx, query, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("db.QueryRow.Scan: %w", err)
	}

	return []byte(value), true, nil
}

func (s *kv) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv_slots (
			key,
			value,
			updated_at
		)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE
		SET
			value = $2,
			updated_at = $3
	`

	_, err := s.db.Exec(ctx, query,
		key,           // $1
		string(value), // $2
		time.Now(),    // $3
	)
	if err != nil {
		return fmt.Errorf("db.Exec: %w", err)
	}

	return nil
}
