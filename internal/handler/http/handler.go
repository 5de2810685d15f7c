package http

import (
	"time"

	"github.com/MKhiriev/go-calorie-keeper/internal/config"
	"github.com/MKhiriev/go-calorie-keeper/internal/logger"
	"github.com/MKhiriev/go-calorie-keeper/internal/service"
	"github.com/MKhiriev/go-calorie-keeper/internal/utils"
)

type Handler struct {
	services *service.Services

	// hasher signs responses and verifies HashSHA256 request headers;
	// nil disables both.
	hasher *utils.Hasher

	requestTimeout  time.Duration
	rateLimit       int
	rateLimitWindow time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	h := &Handler{
		services:        services,
		requestTimeout:  cfg.Server.RequestTimeout,
		rateLimit:       cfg.Server.RateLimit,
		rateLimitWindow: cfg.Server.RateLimitWindow,
		logger:          logger,
	}
	if cfg.App.HashKey != "" {
		h.hasher = utils.NewHasher(cfg.App.HashKey)
	}

	logger.Info().Msg("http handler created")
	return h
}
