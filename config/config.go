// Package config holds environment-driven settings for wiring a dispatcher
// into a host process.
package config

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Config controls the inproc wiring: where static-subscription manifests
// live, which applications' declarations to install, and how to log.
type Config struct {
	// ManifestPath points at a manifest file or a directory of *.hcl
	// manifests. Empty means no static bindings are installed.
	ManifestPath string `env:"DISPATCH_MANIFEST"`

	// Applications scopes manifest discovery to the named owning
	// applications. Empty means all applications.
	Applications []string `env:"DISPATCH_APPS"`

	LogLevel  string `env:"DISPATCH_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"DISPATCH_LOG_FORMAT" envDefault:"text"`
}

// Load parses the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

// Logger builds a slog.Logger honoring LogLevel and LogFormat. It does not
// touch the global default logger.
func (c Config) Logger(w io.Writer) *slog.Logger {
	var level slog.Level

	switch c.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if c.LogFormat == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}
