package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort              string `env:"HTTP_PORT" env-default:"3001"`
	WSPath                string `env:"WS_PATH" env-default:"/caps"`
	LogLevel              string `env:"LOG_LEVEL" env-default:"info"`
	LedgerDuplicatePolicy string `env:"LEDGER_DUPLICATE_POLICY" env-default:"overwrite"`
	LedgerStatsSchedule   string `env:"LEDGER_STATS_SCHEDULE" env-default:"0 * * * * *"`
	LedgerReclaimSchedule string `env:"LEDGER_RECLAIM_SCHEDULE"`
	ServerURL             string `env:"SERVER_URL" env-default:"ws://localhost:3001/caps"`
}

// LoadConfig reads an optional .env file into the environment and then the
// environment into Config. Variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	return cfg, nil
}

// SlogLevel maps LOG_LEVEL to a slog level; unknown values mean info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
