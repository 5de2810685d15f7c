package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-calorie-keeper/models"
)

// MealService manages the meals of an already authenticated user. Every
// operation is scoped to userID; meals of other users are reported as not
// found.
type MealService interface {
	CreateMeal(ctx context.Context, userID int64, payload models.MealCreate) (models.Meal, error)
	GetMeal(ctx context.Context, userID, mealID int64) (models.Meal, error)

	// ListMeals returns the user's meals newest first. An empty dateFilter
	// returns all of them.
	ListMeals(ctx context.Context, userID int64, dateFilter string) ([]models.Meal, error)

	UpdateMeal(ctx context.Context, userID, mealID int64, patch models.MealPatch) (models.Meal, error)
	DeleteMeal(ctx context.Context, userID, mealID int64) error

	// DailyStats sums the meals of one calendar day. An empty dateFilter
	// means today.
	DailyStats(ctx context.Context, userID int64, dateFilter string) (models.DailyStats, error)
}

type AuthService interface {
	RegisterUser(ctx context.Context, credentials models.UserCredentials) (models.User, error)
	Login(ctx context.Context, credentials models.UserCredentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// Authenticate resolves a raw bearer token to an active user.
	Authenticate(ctx context.Context, tokenString string) (models.User, error)

	// DeleteUser removes the account together with all of its meals.
	DeleteUser(ctx context.Context, userID int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

type HealthService interface {
	CheckDB(ctx context.Context) error
}

// MealServiceWrapper defines middleware composition for MealService.
// Implementations wrap an existing MealService to add behavior such as
// logging or validating.
type MealServiceWrapper interface {
	Wrap(MealService) MealService // returns a decorated MealService applying additional behavior
}
