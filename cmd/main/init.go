package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ilyadubrovsky/grades-calculator/internal/config"
	"github.com/ilyadubrovsky/grades-calculator/internal/database"
	"github.com/ilyadubrovsky/grades-calculator/internal/database/memory"
	"github.com/ilyadubrovsky/grades-calculator/internal/database/pg"
	"github.com/ilyadubrovsky/grades-calculator/internal/database/redis"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func initLogger(cfg config.Log) {
	zerolog.TimeFieldFormat = time.RFC3339

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}

// initStorage returns the key-value slot selected by STORAGE_DRIVER and a
// function releasing its connections.
func initStorage(ctx context.Context, cfg *config.Config) (database.KV, func(), error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		pool, err := pg.New(ctx, cfg.Postgres.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("pg.New: %w", err)
		}
		return pg.NewKV(pool), pool.Close, nil
	case config.StorageDriverRedis:
		client, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("redis.NewClient: %w", err)
		}
		return redis.NewKV(client), func() { _ = client.Close() }, nil
	}

	log.Warn().Msg("course list is kept in memory and is lost on restart")
	return memory.New(), func() {}, nil
}
