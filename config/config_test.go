package config

import (
	"log/slog"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SocketPath != "/tmp/shiny.sock" || cfg.QRSize != 256 || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SHINY_SOCKET_PATH", "/run/shiny.sock")
	t.Setenv("SHINY_SHARE_BASE_URL", "https://example.org/s#")
	t.Setenv("SHINY_QR_SIZE", "128")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SocketPath != "/run/shiny.sock" || cfg.ShareBaseURL != "https://example.org/s#" || cfg.QRSize != 128 {
		t.Fatalf("env not applied: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"big", "parse env:"},
		{"0", "must be positive"},
	}
	for _, tt := range tests {
		t.Setenv("SHINY_QR_SIZE", tt.value)
		_, err := Load()
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("SHINY_QR_SIZE=%s: err = %v, want %q", tt.value, err, tt.want)
		}
	}
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"chatty", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := (Config{LogLevel: tt.in}).SlogLevel(); got != tt.want {
			t.Errorf("SlogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
