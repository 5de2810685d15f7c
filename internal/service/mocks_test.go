package service

import (
	"context"

	"github.com/MKhiriev/go-calorie-keeper/models"
)

// ─────────────────────────────────────────────
// Mocks
// ─────────────────────────────────────────────

type mockMealRepository struct {
	createFn   func(ctx context.Context, meal models.Meal) (models.Meal, error)
	findByIDFn func(ctx context.Context, userID, mealID int64) (models.Meal, error)
	findFn     func(ctx context.Context, filter models.MealFilter) ([]models.Meal, error)
	updateFn   func(ctx context.Context, meal models.Meal) (models.Meal, error)
	deleteFn   func(ctx context.Context, userID, mealID int64) error
}

func (m *mockMealRepository) CreateMeal(ctx context.Context, meal models.Meal) (models.Meal, error) {
	if m.createFn != nil {
		return m.createFn(ctx, meal)
	}
	return meal, nil
}
func (m *mockMealRepository) FindMealByID(ctx context.Context, userID, mealID int64) (models.Meal, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, userID, mealID)
	}
	return models.Meal{}, nil
}
func (m *mockMealRepository) FindMeals(ctx context.Context, filter models.MealFilter) ([]models.Meal, error) {
	if m.findFn != nil {
		return m.findFn(ctx, filter)
	}
	return []models.Meal{}, nil
}
func (m *mockMealRepository) UpdateMeal(ctx context.Context, meal models.Meal) (models.Meal, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, meal)
	}
	return meal, nil
}
func (m *mockMealRepository) DeleteMeal(ctx context.Context, userID, mealID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, mealID)
	}
	return nil
}

type mockUserRepository struct {
	createFn      func(ctx context.Context, user models.User) (models.User, error)
	findByEmailFn func(ctx context.Context, email string) (models.User, error)
	findByIDFn    func(ctx context.Context, userID int64) (models.User, error)
	deleteFn      func(ctx context.Context, userID int64) error
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	user.ID = 1
	return user, nil
}
func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return models.User{}, nil
}
func (m *mockUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, userID)
	}
	return models.User{}, nil
}
func (m *mockUserRepository) DeleteUser(ctx context.Context, userID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID)
	}
	return nil
}

type mockMealService struct {
	createFn func(ctx context.Context, userID int64, payload models.MealCreate) (models.Meal, error)
	getFn    func(ctx context.Context, userID, mealID int64) (models.Meal, error)
	listFn   func(ctx context.Context, userID int64, dateFilter string) ([]models.Meal, error)
	updateFn func(ctx context.Context, userID, mealID int64, patch models.MealPatch) (models.Meal, error)
	deleteFn func(ctx context.Context, userID, mealID int64) error
	statsFn  func(ctx context.Context, userID int64, dateFilter string) (models.DailyStats, error)
}

func (m *mockMealService) CreateMeal(ctx context.Context, userID int64, payload models.MealCreate) (models.Meal, error) {
	if m.createFn != nil {
		return m.createFn(ctx, userID, payload)
	}
	return models.Meal{}, nil
}
func (m *mockMealService) GetMeal(ctx context.Context, userID, mealID int64) (models.Meal, error) {
	if m.getFn != nil {
		return m.getFn(ctx, userID, mealID)
	}
	return models.Meal{}, nil
}
func (m *mockMealService) ListMeals(ctx context.Context, userID int64, dateFilter string) ([]models.Meal, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID, dateFilter)
	}
	return nil, nil
}
func (m *mockMealService) UpdateMeal(ctx context.Context, userID, mealID int64, patch models.MealPatch) (models.Meal, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, userID, mealID, patch)
	}
	return models.Meal{}, nil
}
func (m *mockMealService) DeleteMeal(ctx context.Context, userID, mealID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, mealID)
	}
	return nil
}
func (m *mockMealService) DailyStats(ctx context.Context, userID int64, dateFilter string) (models.DailyStats, error) {
	if m.statsFn != nil {
		return m.statsFn(ctx, userID, dateFilter)
	}
	return models.DailyStats{}, nil
}

type mockPinger struct {
	pingFn func(ctx context.Context) error
}

func (m *mockPinger) PingContext(ctx context.Context) error {
	if m.pingFn != nil {
		return m.pingFn(ctx)
	}
	return nil
}

func ptr[T any](v T) *T { return &v }
