package service

import (
	"github.com/MKhiriev/go-calorie-keeper/internal/config"
	"github.com/MKhiriev/go-calorie-keeper/internal/logger"
	"github.com/MKhiriev/go-calorie-keeper/internal/store"
)

type Services struct {
	AuthService    AuthService
	MealService    MealService
	AppInfoService AppInfoService
	HealthService  HealthService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		MealService:    NewMealValidationService().Wrap(NewMealService(storages.MealRepository, logger)),
		AppInfoService: appInfoService,
		HealthService:  NewHealthService(storages.DB, logger),
	}, nil
}
