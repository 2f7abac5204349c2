package config

import (
	"errors"
	"log/slog"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected slog.Level
	}{
		{name: "debug", input: "debug", expected: slog.LevelDebug},
		{name: "info", input: "info", expected: slog.LevelInfo},
		{name: "warn", input: "warn", expected: slog.LevelWarn},
		{name: "warning alias", input: "WARNING", expected: slog.LevelWarn},
		{name: "error", input: "error", expected: slog.LevelError},
		{name: "unknown defaults to info", input: "verbose", expected: slog.LevelInfo},
		{name: "empty defaults to info", input: "", expected: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseLogLevel(tt.input); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestLoadTriggerConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv(schedulerCronEnv, "")
		t.Setenv(schedulerCronDisabledEnv, "")

		cfg := LoadTriggerConfig()
		if !cfg.Enabled {
			t.Error("expected trigger enabled by default")
		}
		if cfg.CronSpec != defaultSchedulerCron {
			t.Errorf("expected default cron spec, got %s", cfg.CronSpec)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv(schedulerCronEnv, "30 5 * * *")
		t.Setenv(schedulerCronDisabledEnv, "true")

		cfg := LoadTriggerConfig()
		if cfg.Enabled {
			t.Error("expected trigger disabled")
		}
		if cfg.CronSpec != "30 5 * * *" {
			t.Errorf("expected overridden cron spec, got %s", cfg.CronSpec)
		}
	})
}

func TestLoadRedisConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv(redisAddrEnv, "")
		t.Setenv(redisDBEnv, "")
		t.Setenv(redisTLSEnv, "")

		cfg, err := LoadRedisConfig()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Addr != defaultRedisAddr {
			t.Errorf("expected default addr, got %s", cfg.Addr)
		}
		if cfg.DB != 0 || cfg.TLS {
			t.Errorf("unexpected defaults: %+v", cfg)
		}
	})

	t.Run("invalid db", func(t *testing.T) {
		t.Setenv(redisDBEnv, "not-a-number")

		if _, err := LoadRedisConfig(); !errors.Is(err, ErrInvalidRedisDB) {
			t.Errorf("expected ErrInvalidRedisDB, got %v", err)
		}
	})
}
