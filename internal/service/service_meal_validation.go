package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-calorie-keeper/internal/validators"
	"github.com/MKhiriev/go-calorie-keeper/models"
)

// MealValidationService rejects malformed payloads before they reach the
// wrapped MealService. Validation failures wrap ErrInvalidDataProvided.
type MealValidationService struct {
	inner     MealService
	validator validators.Validator
}

func NewMealValidationService() MealServiceWrapper {
	return &MealValidationService{
		validator: validators.NewMealValidator(),
	}
}

func (v *MealValidationService) CreateMeal(ctx context.Context, userID int64, payload models.MealCreate) (models.Meal, error) {
	if err := v.validator.Validate(ctx, payload); err != nil {
		return models.Meal{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateMeal(ctx, userID, payload)
}

func (v *MealValidationService) GetMeal(ctx context.Context, userID, mealID int64) (models.Meal, error) {
	return v.inner.GetMeal(ctx, userID, mealID)
}

func (v *MealValidationService) ListMeals(ctx context.Context, userID int64, dateFilter string) ([]models.Meal, error) {
	return v.inner.ListMeals(ctx, userID, dateFilter)
}

func (v *MealValidationService) UpdateMeal(ctx context.Context, userID, mealID int64, patch models.MealPatch) (models.Meal, error) {
	if err := v.validator.Validate(ctx, patch); err != nil {
		return models.Meal{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateMeal(ctx, userID, mealID, patch)
}

func (v *MealValidationService) DeleteMeal(ctx context.Context, userID, mealID int64) error {
	return v.inner.DeleteMeal(ctx, userID, mealID)
}

func (v *MealValidationService) DailyStats(ctx context.Context, userID int64, dateFilter string) (models.DailyStats, error) {
	return v.inner.DailyStats(ctx, userID, dateFilter)
}

func (v *MealValidationService) Wrap(wrapper MealService) MealService {
	v.inner = wrapper
	return v
}
