package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/dmaraujo/gymkeeper/internal/config"
	"github.com/dmaraujo/gymkeeper/internal/handler"
	"github.com/dmaraujo/gymkeeper/internal/logger"
	"github.com/dmaraujo/gymkeeper/internal/server"
	"github.com/dmaraujo/gymkeeper/internal/service"
	"github.com/dmaraujo/gymkeeper/internal/store"
	"github.com/dmaraujo/gymkeeper/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// a missing .env is fine, settings may come from the environment itself
	_ = godotenv.Load()

	log := logger.NewLogger("gym-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log, func(db *store.DB) error {
		return migrations.Migrate(db.DB)
	})
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services := service.NewServices(storages, *cfg, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
