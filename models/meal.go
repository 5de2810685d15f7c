// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Recognized meal types. The stored value is free text; these are the values
// the front end and the seeder use.
const (
	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
	MealTypeDinner    = "dinner"
	MealTypeSnack     = "snack"
)

// Meal is a single logged eating event owned by exactly one user.
//
// ID and UserID are assigned by the server and never change after creation.
// Nutrient amounts other than calories are grams.
type Meal struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	Name          string    `json:"name"`
	Description   *string   `json:"description"`
	Calories      float64   `json:"calories"`
	Proteins      float64   `json:"proteins"`
	Carbohydrates float64   `json:"carbohydrates"`
	Fats          float64   `json:"fats"`
	Fiber         *float64  `json:"fiber"`
	MealType      string    `json:"meal_type"`
	Date          NaiveTime `json:"date"`
}

// TableName returns the name of the database table backing [Meal].
func (m Meal) TableName() string {
	return "meals"
}

// MealCreate is the payload of a meal creation request.
//
// Pointer fields distinguish "absent" from zero so that required fields can
// be validated and optional ones defaulted. Any user_id or id sent by the
// client is not part of this type and is therefore ignored.
type MealCreate struct {
	Name          *string    `json:"name"`
	Description   *string    `json:"description"`
	Calories      *float64   `json:"calories"`
	Proteins      *float64   `json:"proteins"`
	Carbohydrates *float64   `json:"carbohydrates"`
	Fats          *float64   `json:"fats"`
	Fiber         *float64   `json:"fiber"`
	MealType      *string    `json:"meal_type"`
	Date          *NaiveTime `json:"date"`
}

// ToMeal builds a Meal owned by userID from the payload. Omitted nutrient
// amounts default to 0 and an omitted date defaults to now.
func (c MealCreate) ToMeal(userID int64, now time.Time) Meal {
	meal := Meal{
		UserID:        userID,
		Name:          deref(c.Name),
		Description:   c.Description,
		Calories:      deref(c.Calories),
		Proteins:      deref(c.Proteins),
		Carbohydrates: deref(c.Carbohydrates),
		Fats:          deref(c.Fats),
		MealType:      deref(c.MealType),
	}

	fiber := deref(c.Fiber)
	meal.Fiber = &fiber

	if c.Date != nil {
		meal.Date = NewNaiveTime(c.Date.Time)
	} else {
		meal.Date = NewNaiveTime(now)
	}

	return meal
}

// MealPatch is a partial update of a meal. Only fields present in the
// request body are applied; see [ApplyPatch].
type MealPatch struct {
	Name          Optional[string]    `json:"name"`
	Description   Optional[*string]   `json:"description"`
	Calories      Optional[float64]   `json:"calories"`
	Proteins      Optional[float64]   `json:"proteins"`
	Carbohydrates Optional[float64]   `json:"carbohydrates"`
	Fats          Optional[float64]   `json:"fats"`
	Fiber         Optional[*float64]  `json:"fiber"`
	MealType      Optional[string]    `json:"meal_type"`
	Date          Optional[NaiveTime] `json:"date"`
}

// IsEmpty reports whether the patch carries no fields at all.
func (p MealPatch) IsEmpty() bool {
	return !p.Name.Set && !p.Description.Set && !p.Calories.Set &&
		!p.Proteins.Set && !p.Carbohydrates.Set && !p.Fats.Set &&
		!p.Fiber.Set && !p.MealType.Set && !p.Date.Set
}

// ApplyPatch returns meal with every field present in patch overwritten.
// ID and UserID are never touched.
func ApplyPatch(meal Meal, patch MealPatch) Meal {
	if patch.Name.Set {
		meal.Name = patch.Name.Value
	}
	if patch.Description.Set {
		meal.Description = patch.Description.Value
	}
	if patch.Calories.Set {
		meal.Calories = patch.Calories.Value
	}
	if patch.Proteins.Set {
		meal.Proteins = patch.Proteins.Value
	}
	if patch.Carbohydrates.Set {
		meal.Carbohydrates = patch.Carbohydrates.Value
	}
	if patch.Fats.Set {
		meal.Fats = patch.Fats.Value
	}
	if patch.Fiber.Set {
		meal.Fiber = patch.Fiber.Value
	}
	if patch.MealType.Set {
		meal.MealType = patch.MealType.Value
	}
	if patch.Date.Set {
		meal.Date = NewNaiveTime(patch.Date.Value.Time)
	}

	return meal
}

// DateWindow is a half-open interval [Start, End) of naive UTC timestamps.
type DateWindow struct {
	Start time.Time
	End   time.Time
}

// DayWindow returns the window covering the calendar day of t.
func DayWindow(t time.Time) DateWindow {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return DateWindow{Start: start, End: start.AddDate(0, 0, 1)}
}

// MealFilter selects the meals of one user, optionally restricted to a window.
type MealFilter struct {
	UserID int64
	Window *DateWindow
}

// DailyStats is the nutrition summary of one calendar day.
type DailyStats struct {
	Date               string  `json:"date"`
	TotalCalories      float64 `json:"total_calories"`
	TotalProteins      float64 `json:"total_proteins"`
	TotalCarbohydrates float64 `json:"total_carbohydrates"`
	TotalFats          float64 `json:"total_fats"`
	TotalFiber         float64 `json:"total_fiber"`
	MealCount          int     `json:"meal_count"`
}

// SumMeals aggregates meals into stats for date. Missing fiber counts as 0.
func SumMeals(date string, meals []Meal) DailyStats {
	stats := DailyStats{Date: date, MealCount: len(meals)}

	for _, m := range meals {
		stats.TotalCalories += m.Calories
		stats.TotalProteins += m.Proteins
		stats.TotalCarbohydrates += m.Carbohydrates
		stats.TotalFats += m.Fats
		stats.TotalFiber += deref(m.Fiber)
	}

	return stats
}

func deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
