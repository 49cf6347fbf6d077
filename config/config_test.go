package config_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/next-trace/scg-event-dispatch/config"
)

func Test_Load_Defaults(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Fatalf("defaults = %+v", cfg)
	}

	if cfg.ManifestPath != "" || len(cfg.Applications) != 0 {
		t.Fatalf("unexpected non-empty manifest settings: %+v", cfg)
	}
}

func Test_Load_FromEnv(t *testing.T) {
	t.Setenv("DISPATCH_MANIFEST", "/etc/dispatch/subs.hcl")
	t.Setenv("DISPATCH_APPS", "billing,audit")
	t.Setenv("DISPATCH_LOG_LEVEL", "debug")
	t.Setenv("DISPATCH_LOG_FORMAT", "json")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.ManifestPath != "/etc/dispatch/subs.hcl" {
		t.Fatalf("manifest path = %q", cfg.ManifestPath)
	}

	if len(cfg.Applications) != 2 || cfg.Applications[0] != "billing" || cfg.Applications[1] != "audit" {
		t.Fatalf("applications = %v", cfg.Applications)
	}

	if cfg.LogLevel != "debug" || cfg.LogFormat != "json" {
		t.Fatalf("log settings = %+v", cfg)
	}
}

func Test_Logger_LevelAndFormat(t *testing.T) {
	var buf bytes.Buffer

	logger := config.Config{LogLevel: "warn", LogFormat: "json"}.Logger(&buf)

	logger.Info("dropped")
	logger.Warn("kept")

	if !logger.Enabled(context.Background(), slog.LevelWarn) {
		t.Fatalf("warn should be enabled")
	}

	out := buf.String()
	if !bytes.Contains([]byte(out), []byte(`"msg":"kept"`)) {
		t.Fatalf("warn record missing from output: %s", out)
	}

	if bytes.Contains([]byte(out), []byte("dropped")) {
		t.Fatalf("info record should have been filtered: %s", out)
	}
}
