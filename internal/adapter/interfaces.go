// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides an outbound client for the calorie keeper HTTP
// API.
//
// The primary abstraction is [APIClient], which decouples callers such as
// the demo data seeder from the underlying protocol. Non-2xx responses are
// mapped to the sentinel errors in errors.go by mapHTTPError so that callers
// can use [errors.Is] (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

//go:generate mockgen -source=interfaces.go -destination=../mock/api_client_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-calorie-keeper/models"
)

// APIClient talks to a running calorie keeper server. Implementations handle
// serialisation, the bearer token and error mapping.
type APIClient interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// Register creates an account and returns it. A taken email yields
	// [ErrConflict].
	Register(ctx context.Context, credentials models.UserCredentials) (models.User, error)

	// Login exchanges credentials for a bearer token and stores it via
	// SetToken.
	Login(ctx context.Context, credentials models.UserCredentials) (models.TokenResponse, error)

	// CurrentUser returns the account the stored token belongs to.
	CurrentUser(ctx context.Context) (models.User, error)

	// CreateMeal logs a meal for the current user.
	CreateMeal(ctx context.Context, meal models.MealCreate) (models.Meal, error)

	// ListMeals returns the current user's meals; dateFilter may be empty.
	ListMeals(ctx context.Context, dateFilter string) ([]models.Meal, error)

	// DeleteMeal removes one meal of the current user.
	DeleteMeal(ctx context.Context, mealID int64) error

	// DailyStats returns the nutrition summary of one day; dateFilter may be
	// empty for today.
	DailyStats(ctx context.Context, dateFilter string) (models.DailyStats, error)
}
