// Package main is the entry point for lessonbox.
// It loads configuration, opens storage and runs either the console
// walkthrough or the HTTP API.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"lessonbox/src/app/console"
	"lessonbox/src/app/server"
	"lessonbox/src/core/ports"
	"lessonbox/src/core/usecase"
	"lessonbox/src/infra/config"
	"lessonbox/src/infra/db"
	"lessonbox/src/infra/logger"
	"lessonbox/src/infra/metrics"
	"lessonbox/src/infra/repo"
)

func main() {
	if err := run(); err != nil {
		log.Printf("fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(cfg.Log)
	log.Debug("starting application",
		"mode", cfg.Mode,
		"storage", cfg.Storage.Driver,
		"log_level", cfg.Log.Level,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	m := metrics.New()

	switch cfg.Mode {
	case config.ModeServer:
		return server.New(cfg, log, store, m).Run(ctx)
	default:
		return runWalkthrough(ctx, cfg, log, store, m)
	}
}

// openStore returns the configured repositories and a function releasing them.
func openStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (ports.Store, func(), error) {
	if cfg.Storage.Driver != config.StoragePostgres {
		return repo.NewMemoryRepository(), func() {}, nil
	}
	pg, err := db.New(ctx, cfg.Database, log)
	if err != nil {
		return nil, nil, err
	}
	return repo.NewPostgresRepository(pg, log), pg.Close, nil
}

func runWalkthrough(ctx context.Context, cfg *config.Config, log *slog.Logger, store ports.Store, m *metrics.Metrics) error {
	svc := console.Services{
		Members:    usecase.NewMemberService(store, log),
		Accounts:   usecase.NewAccountService(store, log),
		Animals:    usecase.NewAnimalService(log),
		Calculator: usecase.NewCalculatorService(log),
		Notes:      usecase.NewNoteService(log),
	}
	w := console.New(cfg.Walkthrough, svc, os.Stdin, os.Stdout, log, m)

	sum, err := w.Run(ctx)
	if err != nil {
		return fmt.Errorf("walkthrough interrupted: %w", err)
	}
	log.Debug("walkthrough finished", "steps", sum.Steps, "failed", sum.Failed())
	return nil
}
