// Command migrate applies the database schema offline. It is meant to run
// as a deploy step before the api process starts. Any failure rolls the
// transaction back and exits non-zero so the deploy halts.
package main

import (
	"context"
	"os"

	"github.com/sethvargo/go-envconfig"

	"github.com/atelierworks/ffe-portal/internal/infrastructure/config"
	"github.com/atelierworks/ffe-portal/internal/infrastructure/db/sqlite"
	"github.com/atelierworks/ffe-portal/pkg/logger"
)

func main() {
	log := logger.Init(logger.Options{Pretty: true})

	// Only the storage settings matter here; the full Config would demand
	// secrets the migration never uses.
	var cfg config.SQLiteConfig
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		log.Error().Err(err).Msg("failed to load configuration")
		os.Exit(1)
	}

	db, err := sqlite.Open(cfg.Path)
	if err != nil {
		log.Error().Err(err).Str("path", cfg.Path).Msg("failed to open database")
		os.Exit(1)
	}
	defer db.Close()

	if err := sqlite.Migrate(db); err != nil {
		log.Error().Err(err).Msg("migration failed")
		os.Exit(1)
	}

	log.Info().Str("path", cfg.Path).Msg("database migrated")
}
