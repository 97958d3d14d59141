package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "token")
	t.Setenv("DATABASE_URI", "postgres://localhost/superbot")
	t.Setenv("TZ", "")
	t.Setenv("SCHEDULER_TICK", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Timezone != "Asia/Jakarta" {
		t.Errorf("expected default timezone Asia/Jakarta, got %q", cfg.Timezone)
	}
	if cfg.TickInterval != 30*time.Second {
		t.Errorf("expected default tick 30s, got %s", cfg.TickInterval)
	}
}

func TestLoad_InvalidTick(t *testing.T) {
	t.Setenv("SCHEDULER_TICK", "soon")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unparseable tick interval")
	}
}
