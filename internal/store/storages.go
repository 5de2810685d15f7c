package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-calorie-keeper/internal/config"
	"github.com/MKhiriev/go-calorie-keeper/internal/logger"
)

// Storages groups the repositories sharing one database connection.
type Storages struct {
	DB             *DB
	UserRepository UserRepository
	MealRepository MealRepository
}

// NewStorages connects to the configured database, applies migrations and
// builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		DB:             db,
		UserRepository: NewUserRepository(db, log),
		MealRepository: NewMealRepository(db, log),
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
