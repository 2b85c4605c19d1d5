// Package config loads bridge settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	SocketPath   string `env:"SHINY_SOCKET_PATH" envDefault:"/tmp/shiny.sock"`
	LogLevel     string `env:"SHINY_LOG_LEVEL" envDefault:"info"`
	ShareBaseURL string `env:"SHINY_SHARE_BASE_URL" envDefault:"https://shiny.example/#"`
	QRSize       int    `env:"SHINY_QR_SIZE" envDefault:"256"`
}

// Load reads Config from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.QRSize <= 0 {
		return Config{}, fmt.Errorf("SHINY_QR_SIZE must be positive, got %d", cfg.QRSize)
	}
	return cfg, nil
}

// SlogLevel maps LogLevel to a slog level. Unknown names mean info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
