package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-calorie-keeper/internal/logger"
	"github.com/MKhiriev/go-calorie-keeper/internal/store"
)

type healthService struct {
	db store.Pinger

	logger *logger.Logger
}

func NewHealthService(db store.Pinger, logger *logger.Logger) HealthService {
	return &healthService{
		db:     db,
		logger: logger,
	}
}

// CheckDB pings the database. The driver error is logged but only
// ErrDatabaseUnavailable is meant to reach clients.
func (s *healthService) CheckDB(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*healthService.CheckDB").Msg("database ping failed")
		return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}

	return nil
}
