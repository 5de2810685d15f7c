package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-calorie-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
)

func TestHealthService_CheckDB(t *testing.T) {
	svc := NewHealthService(&mockPinger{}, logger.Nop())
	assert.NoError(t, svc.CheckDB(context.Background()))

	pingErr := errors.New("dial tcp: connection refused")
	svc = NewHealthService(&mockPinger{pingFn: func(ctx context.Context) error { return pingErr }}, logger.Nop())

	err := svc.CheckDB(context.Background())
	assert.ErrorIs(t, err, ErrDatabaseUnavailable)
	assert.ErrorIs(t, err, pingErr)
}
