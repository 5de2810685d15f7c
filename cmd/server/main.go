package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-calorie-keeper/internal/config"
	"github.com/MKhiriev/go-calorie-keeper/internal/handler"
	"github.com/MKhiriev/go-calorie-keeper/internal/logger"
	"github.com/MKhiriev/go-calorie-keeper/internal/server"
	"github.com/MKhiriev/go-calorie-keeper/internal/service"
	"github.com/MKhiriev/go-calorie-keeper/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("calorie-keeper-server", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("calorie-keeper-server", cfg.App.LogLevel)
	// a stamped binary reports its build version unless one is configured
	if cfg.App.Version == "dev" && buildVersion != "N/A" {
		cfg.App.Version = buildVersion
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
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
