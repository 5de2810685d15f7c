package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-calorie-keeper/internal/adapter"
	"github.com/MKhiriev/go-calorie-keeper/internal/config"
	"github.com/MKhiriev/go-calorie-keeper/internal/logger"
	"github.com/MKhiriev/go-calorie-keeper/internal/seed"
	"github.com/MKhiriev/go-calorie-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewConsoleLogger("calorie-keeper-seed", "info")
	cfg, err := config.GetSeedConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	client, err := adapter.NewHTTPAPIClient(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create api client")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	summary, err := seed.NewSeeder(client, *cfg, log).Run(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}

	log.Info().
		Int64("user_id", summary.UserID).
		Bool("registered", summary.Created).
		Int("removed", summary.Removed).
		Int("meals", summary.Meals).
		Str("from", summary.From.Format(models.DateLayout)).
		Str("to", summary.To.Format(models.DateLayout)).
		Msg("demo data inserted")
	log.Info().Str("email", cfg.Email).Str("password", cfg.Password).Msg("demo credentials")
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
