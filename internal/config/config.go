package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rs/zerolog/log"
)

const (
	StorageDriverMemory   = "memory"
	StorageDriverPostgres = "postgres"
	StorageDriverRedis    = "redis"
)

type Config struct {
	Telegram Telegram
	Storage  Storage
	Postgres Postgres
	Redis    Redis
	Log      Log
}

type Telegram struct {
	BotToken        string        `env:"TELEGRAM_BOT_TOKEN" env-required:"true"`
	LongPollerDelay time.Duration `env:"TELEGRAM_LONG_POLLER_DELAY" env-default:"10s"`
	OwnerID         int64         `env:"TELEGRAM_OWNER_ID" env-required:"true"`
	FormStateTTL    time.Duration `env:"TELEGRAM_FORM_STATE_TTL" env-default:"15m"`
}

type Storage struct {
	Driver         string `env:"STORAGE_DRIVER" env-default:"memory"`
	Key            string `env:"STORAGE_KEY" env-default:"coursesEspol"`
	ResetMalformed bool   `env:"STORAGE_RESET_MALFORMED" env-default:"false"`
}

type Postgres struct {
	DSN string `env:"POSTGRES_DSN"`
}

type Redis struct {
	Addr     string `env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" env-default:"0"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" env-default:"info"`
	Pretty bool   `env:"LOG_PRETTY" env-default:"false"`
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		help, _ := cleanenv.GetDescription(cfg, nil)
		log.Debug().Msg(help)
		return nil, fmt.Errorf("cleanenv.ReadEnv: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case StorageDriverMemory, StorageDriverRedis:
	case StorageDriverPostgres:
		if c.Postgres.DSN == "" {
			return fmt.Errorf("POSTGRES_DSN is required for storage driver %q", c.Storage.Driver)
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	return nil
}
