package store

import (
	"context"

	"github.com/MKhiriev/go-calorie-keeper/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

// MealRepository persists meals. Every lookup and mutation is scoped to the
// owning user: a meal of another user is reported as [ErrMealNotFound].
type MealRepository interface {
	CreateMeal(ctx context.Context, meal models.Meal) (models.Meal, error)
	FindMealByID(ctx context.Context, userID, mealID int64) (models.Meal, error)
	FindMeals(ctx context.Context, filter models.MealFilter) ([]models.Meal, error)
	UpdateMeal(ctx context.Context, meal models.Meal) (models.Meal, error)
	DeleteMeal(ctx context.Context, userID, mealID int64) error
}

// Pinger reports database reachability.
type Pinger interface {
	PingContext(ctx context.Context) error
}
