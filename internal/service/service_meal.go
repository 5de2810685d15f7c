package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-calorie-keeper/internal/logger"
	"github.com/MKhiriev/go-calorie-keeper/internal/metrics"
	"github.com/MKhiriev/go-calorie-keeper/internal/store"
	"github.com/MKhiriev/go-calorie-keeper/models"
)

// mealService is the concrete implementation of MealService on top of a
// MealRepository. It holds no state between calls.
type mealService struct {
	mealRepository store.MealRepository

	// now supplies the current time for defaulted dates and "today".
	now func() time.Time

	logger *logger.Logger
}

func NewMealService(mealRepository store.MealRepository, logger *logger.Logger) MealService {
	return &mealService{
		mealRepository: mealRepository,
		now:            time.Now,
		logger:         logger,
	}
}

// CreateMeal stores a new meal owned by userID. Omitted nutrients become 0,
// an omitted date becomes the current UTC time.
func (s *mealService) CreateMeal(ctx context.Context, userID int64, payload models.MealCreate) (models.Meal, error) {
	log := logger.FromContext(ctx)

	created, err := s.mealRepository.CreateMeal(ctx, payload.ToMeal(userID, s.now()))
	if err != nil {
		log.Err(err).Str("func", "*mealService.CreateMeal").Int64("user_id", userID).Msg("meal creation ended with error")
		return models.Meal{}, fmt.Errorf("meal creation ended with error: %w", err)
	}

	metrics.RecordMealCreated()
	return created, nil
}

func (s *mealService) GetMeal(ctx context.Context, userID, mealID int64) (models.Meal, error) {
	meal, err := s.mealRepository.FindMealByID(ctx, userID, mealID)
	if err != nil {
		return models.Meal{}, fmt.Errorf("meal search ended with error: %w", err)
	}

	return meal, nil
}

func (s *mealService) ListMeals(ctx context.Context, userID int64, dateFilter string) ([]models.Meal, error) {
	window, err := ParseDateFilter(dateFilter)
	if err != nil {
		return nil, err
	}

	meals, err := s.mealRepository.FindMeals(ctx, models.MealFilter{UserID: userID, Window: window})
	if err != nil {
		return nil, fmt.Errorf("meal listing ended with error: %w", err)
	}

	return meals, nil
}

// UpdateMeal overwrites the fields present in patch. The lookup is scoped to
// userID exactly like GetMeal.
func (s *mealService) UpdateMeal(ctx context.Context, userID, mealID int64, patch models.MealPatch) (models.Meal, error) {
	log := logger.FromContext(ctx)

	meal, err := s.mealRepository.FindMealByID(ctx, userID, mealID)
	if err != nil {
		return models.Meal{}, fmt.Errorf("meal search ended with error: %w", err)
	}

	updated, err := s.mealRepository.UpdateMeal(ctx, models.ApplyPatch(meal, patch))
	if err != nil {
		log.Err(err).Str("func", "*mealService.UpdateMeal").Int64("meal_id", mealID).Msg("meal update ended with error")
		return models.Meal{}, fmt.Errorf("meal update ended with error: %w", err)
	}

	return updated, nil
}

func (s *mealService) DeleteMeal(ctx context.Context, userID, mealID int64) error {
	if err := s.mealRepository.DeleteMeal(ctx, userID, mealID); err != nil {
		return fmt.Errorf("meal deletion ended with error: %w", err)
	}

	metrics.RecordMealDeleted()
	return nil
}

func (s *mealService) DailyStats(ctx context.Context, userID int64, dateFilter string) (models.DailyStats, error) {
	window, err := ParseDateFilter(dateFilter)
	if err != nil {
		return models.DailyStats{}, err
	}
	if window == nil {
		today := models.DayWindow(s.now().UTC())
		window = &today
	}

	meals, err := s.mealRepository.FindMeals(ctx, models.MealFilter{UserID: userID, Window: window})
	if err != nil {
		return models.DailyStats{}, fmt.Errorf("meal listing ended with error: %w", err)
	}

	return models.SumMeals(window.Start.Format(models.DateLayout), meals), nil
}

// ParseDateFilter turns a YYYY-MM-DD string into the window of that day.
// An empty string yields a nil window; anything else that is not exactly a
// calendar date fails with ErrInvalidDateFilter.
func ParseDateFilter(dateFilter string) (*models.DateWindow, error) {
	if dateFilter == "" {
		return nil, nil
	}

	day, err := time.ParseInLocation(models.DateLayout, dateFilter, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDateFilter, dateFilter)
	}

	window := models.DayWindow(day)
	return &window, nil
}
