package main

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"

	httpadapter "gloomhold/internal/adapter/http"
	metricsinmem "gloomhold/internal/adapter/metrics/inmemory"
	gormrepo "gloomhold/internal/adapter/repo/gorm"
	"gloomhold/internal/adapter/repo/memory"
	"gloomhold/internal/adapter/ws"
	"gloomhold/internal/app/codex"
	"gloomhold/internal/app/ports"
	"gloomhold/internal/app/replay"
	"gloomhold/internal/app/session"

	"github.com/caarlos0/env/v11"
	"github.com/cloudwego/hertz/pkg/app/server"
)

type config struct {
	Addr          string `env:"GLOOMHOLD_ADDR" envDefault:":8080"`
	DBDSN         string `env:"GLOOMHOLD_DB_DSN"`
	BaseSeed      int64  `env:"GLOOMHOLD_BASE_SEED"`
	MigrationsDir string `env:"GLOOMHOLD_MIGRATIONS_DIR" envDefault:"./migrations"`
}

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(log)

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Error("parse env", "err", err)
		os.Exit(1)
	}

	characters, archive := mustBuildRepos(cfg, log)
	kpiRecorder := metricsinmem.NewRecorder()

	game := session.UseCase{
		Characters: characters,
		Archive:    archive,
		Metrics:    kpiRecorder,
		Sessions:   session.NewRegistry(),
		Log:        log,
	}
	if cfg.BaseSeed != 0 {
		// A fixed base seed makes every run of a dev server reproducible:
		// the Nth started run always rolls the same dungeon.
		game.NewSeed = seedSequence(cfg.BaseSeed)
	}

	codexUC, err := codex.New()
	if err != nil {
		log.Error("build codex documents", "err", err)
		os.Exit(1)
	}

	h := httpadapter.Handler{
		Channel:  ws.NewChannel(game, log),
		ReplayUC: replay.UseCase{Archive: archive},
		CodexUC:  codexUC,
		KPI:      kpiRecorder,
	}

	s := server.Default(server.WithHostPorts(cfg.Addr))
	// Hertz reuses hijacked connections unless told otherwise, which breaks
	// websocket sessions. See hertz-contrib/websocket issue 121.
	s.NoHijackConnPool = true
	h.RegisterRoutes(s)

	log.Info("gloomhold server listening", "addr", cfg.Addr)
	s.Spin()
}

// seedSequence hands out base, base+1, ... so concurrent starts never
// share a run seed.
func seedSequence(base int64) func() int64 {
	counter := base
	return func() int64 {
		return atomic.AddInt64(&counter, 1) - 1
	}
}

func mustBuildRepos(cfg config, log *slog.Logger) (ports.CharacterStore, ports.RunArchive) {
	if cfg.DBDSN == "" {
		log.Info("no GLOOMHOLD_DB_DSN set, using in-memory stores", "demo_character", demoCharacterID)
		store := memory.NewStore()
		store.SeedCharacter(demoCharacter())
		return memory.NewCharacterStore(store), memory.NewRunArchive(store)
	}

	db, err := gormrepo.OpenPostgres(cfg.DBDSN)
	if err != nil {
		log.Error("open postgres", "err", err)
		os.Exit(1)
	}
	if err := gormrepo.ApplyMigrations(context.Background(), db, cfg.MigrationsDir); err != nil {
		log.Error("apply migrations", "dir", cfg.MigrationsDir, "err", err)
		os.Exit(1)
	}
	return gormrepo.NewCharacterRepo(db), gormrepo.NewRunArchiveRepo(db)
}

const demoCharacterID = "demo-character"

func demoCharacter() ports.CharacterRecord {
	return ports.CharacterRecord{
		CharacterID: demoCharacterID,
		PlayerID:    "demo-player",
		Name:        "Maro of the Lantern",
		Level:       5,
		MaxHP:       160,
		Attack:      44,
		Defense:     12,
		Speed:       5,
		MagicFind:   10,
	}
}
