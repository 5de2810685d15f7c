// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-calorie-keeper/models"
)

// Field name constants used to restrict meal validation to a subset of rules.
const (
	// FieldName targets the meal name, which must be present and non-blank.
	FieldName = "name"

	// FieldCalories targets the calories amount, which must be present.
	FieldCalories = "calories"

	// FieldMealType targets the meal type, which must be present and non-blank.
	FieldMealType = "meal_type"

	// FieldNulls rejects explicit nulls for patch fields that are not nullable.
	FieldNulls = "nulls"

	// FieldNotEmpty rejects a patch that carries no fields at all.
	FieldNotEmpty = "not_empty"
)

// MealValidator checks meal payloads for presence and type-level rules.
// Nutrient values themselves are not range-checked.
type MealValidator struct {
}

func NewMealValidator() Validator {
	return &MealValidator{}
}

func (v *MealValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.MealCreate:
		return v.validateMealCreate(ctx, value, fields...)
	case *models.MealCreate:
		return v.validateMealCreate(ctx, *value, fields...)

	case models.MealPatch:
		return v.validateMealPatch(ctx, value, fields...)
	case *models.MealPatch:
		return v.validateMealPatch(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *MealValidator) validateMealCreate(ctx context.Context, meal models.MealCreate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldCalories, FieldMealType}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if meal.Name == nil || isBlank(*meal.Name) {
				return ErrEmptyName
			}
		case FieldCalories:
			if meal.Calories == nil {
				return ErrMissingCalories
			}
		case FieldMealType:
			if meal.MealType == nil || isBlank(*meal.MealType) {
				return ErrEmptyMealType
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateMealPatch only looks at present fields; an empty patch is accepted
// unless FieldNotEmpty is requested explicitly.
func (v *MealValidator) validateMealPatch(ctx context.Context, patch models.MealPatch, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNulls, FieldName, FieldMealType}
	}

	for _, f := range fields {
		switch f {
		case FieldNulls:
			if err := checkNotNull(patch); err != nil {
				return err
			}
		case FieldName:
			if patch.Name.Set && isBlank(patch.Name.Value) {
				return ErrEmptyName
			}
		case FieldMealType:
			if patch.MealType.Set && isBlank(patch.MealType.Value) {
				return ErrEmptyMealType
			}
		case FieldNotEmpty:
			if patch.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func checkNotNull(patch models.MealPatch) error {
	nonNullable := []struct {
		name string
		null bool
	}{
		{"name", patch.Name.Null},
		{"calories", patch.Calories.Null},
		{"proteins", patch.Proteins.Null},
		{"carbohydrates", patch.Carbohydrates.Null},
		{"fats", patch.Fats.Null},
		{"meal_type", patch.MealType.Null},
		{"date", patch.Date.Null},
	}

	for _, field := range nonNullable {
		if field.null {
			return fmt.Errorf("%w: %s", ErrNullNotAllowed, field.name)
		}
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
