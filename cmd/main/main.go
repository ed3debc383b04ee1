package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/ilyadubrovsky/grades-calculator/internal/config"
	coursesrepo "github.com/ilyadubrovsky/grades-calculator/internal/repository/courses"
	"github.com/ilyadubrovsky/grades-calculator/internal/service"
	"github.com/ilyadubrovsky/grades-calculator/internal/service/courses"
	"github.com/ilyadubrovsky/grades-calculator/internal/service/telegram"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msgf("godotenv.Load: %v", err)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal().Msgf("cant initialize config: %v", err)
	}

	initLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	kv, closeStorage, err := initStorage(ctx, cfg)
	if err != nil {
		log.Fatal().Msgf("initStorage: %v", err)
	}
	defer closeStorage()

	coursesRepo := coursesrepo.NewRepository(kv, cfg.Storage.Key, cfg.Storage.ResetMalformed)
	if _, err = coursesRepo.GetAll(ctx); err != nil {
		if coursesrepo.IsMalformed(err) {
			log.Fatal().Str("key", cfg.Storage.Key).
				Msgf("stored course list is malformed, set STORAGE_RESET_MALFORMED=true to reset it: %v", err)
		}
		log.Fatal().Msgf("coursesRepo.GetAll: %v", err)
	}

	coursesSvc := courses.NewService(coursesRepo)

	var telegramSvc service.Telegram
	telegramSvc, err = telegram.NewService(coursesSvc, cfg.Telegram)
	if err != nil {
		log.Fatal().Msgf("telegram.NewService: %v", err)
	}

	log.Info().Str("storage", cfg.Storage.Driver).Msg("starting telegram bot")
	go telegramSvc.Start()

	<-ctx.Done()
	log.Info().Msg("shutting down")
	telegramSvc.Stop()
}
