package main

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"gloomhold/internal/app/ports"

	"github.com/caarlos0/env/v11"
)

func TestConfigDefaults(t *testing.T) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Fatalf("expected default addr :8080, got %q", cfg.Addr)
	}
	if cfg.MigrationsDir != "./migrations" {
		t.Fatalf("expected default migrations dir, got %q", cfg.MigrationsDir)
	}
	if cfg.BaseSeed != 0 {
		t.Fatalf("expected zero base seed, got %d", cfg.BaseSeed)
	}
}

func TestConfigReadsEnv(t *testing.T) {
	t.Setenv("GLOOMHOLD_ADDR", ":9999")
	t.Setenv("GLOOMHOLD_BASE_SEED", "42")
	t.Setenv("GLOOMHOLD_MIGRATIONS_DIR", "/srv/migrations")

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Addr != ":9999" || cfg.BaseSeed != 42 || cfg.MigrationsDir != "/srv/migrations" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestConfigRejectsBadSeed(t *testing.T) {
	t.Setenv("GLOOMHOLD_BASE_SEED", "not-a-number")

	var cfg config
	if err := env.Parse(&cfg); err == nil {
		t.Fatal("expected parse error for non-numeric seed")
	}
}

func TestSeedSequence_HandsOutDistinctSeeds(t *testing.T) {
	next := seedSequence(100)
	for want := int64(100); want < 103; want++ {
		if got := next(); got != want {
			t.Fatalf("expected seed %d, got %d", want, got)
		}
	}
}

func TestMustBuildRepos_MemoryFallbackSeedsDemoCharacter(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	characters, archive := mustBuildRepos(config{}, log)

	record, err := characters.GetByID(context.Background(), demoCharacterID)
	if err != nil {
		t.Fatalf("expected demo character seeded, got %v", err)
	}
	if record.MaxHP <= 0 || record.Attack <= 0 {
		t.Fatalf("demo character has unusable stats: %+v", record)
	}
	if err := archive.SaveStart(context.Background(), ports.RunRecord{RunID: "main-test-run", Status: ports.RunStarted}); err != nil {
		t.Fatalf("expected working archive, got %v", err)
	}
}
