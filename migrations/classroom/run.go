package main

import (
	"context"
	"embed"
	"log/slog"
	"os"

	"github.com/ghuser/examseats/pkg/config"
	"github.com/ghuser/examseats/pkg/logger"
	"github.com/ghuser/examseats/pkg/migrator"
)

//go:embed *.sql
var MigrationsFS embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg)

	applied, err := migrator.Up(context.Background(), cfg.DatabaseURL, MigrationsFS)
	if err != nil {
		log.Error("classroom migrations failed", "applied", applied, "error", err)
		os.Exit(1)
	}
	log.Info("classroom migrations applied", "applied", applied)
}
