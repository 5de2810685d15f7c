package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-calorie-keeper/internal/logger"
	"github.com/MKhiriev/go-calorie-keeper/models"
)

// mealRepository is the SQL implementation of [MealRepository] over the
// "meals" table.
//
// Every method obtains a context-scoped logger via [logger.FromContext] so
// database interactions are traced with the request trace id.
type mealRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewMealRepository constructs a [MealRepository] backed by db.
func NewMealRepository(db *DB, logger *logger.Logger) MealRepository {
	logger.Debug().Msg("creating meal repository")
	return &mealRepository{
		db:     db,
		logger: logger,
	}
}

// CreateMeal inserts meal and returns the stored row including its id.
// A meal of an unknown user is reported as [ErrNoUserWasFound].
func (m *mealRepository) CreateMeal(ctx context.Context, meal models.Meal) (models.Meal, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertMealQuery(m.db.builder(), meal)
	if err != nil {
		log.Err(err).Str("func", "*mealRepository.CreateMeal").Msg("failed to build query")
		return models.Meal{}, err
	}

	created, err := scanMeal(m.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if isForeignKeyViolation(err) {
			return models.Meal{}, ErrNoUserWasFound
		}
		log.Err(err).
			Str("func", "*mealRepository.CreateMeal").
			Int64("user_id", meal.UserID).
			Msg("error inserting meal")
		return models.Meal{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// FindMealByID returns the meal mealID owned by userID.
func (m *mealRepository) FindMealByID(ctx context.Context, userID, mealID int64) (models.Meal, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectMealByIDQuery(m.db.builder(), userID, mealID)
	if err != nil {
		log.Err(err).Str("func", "*mealRepository.FindMealByID").Msg("failed to build query")
		return models.Meal{}, err
	}

	var meal models.Meal
	err = m.db.withRetry(ctx, func() error {
		var scanErr error
		meal, scanErr = scanMeal(m.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Meal{}, ErrMealNotFound
		}
		log.Err(err).
			Str("func", "*mealRepository.FindMealByID").
			Int64("user_id", userID).
			Int64("meal_id", mealID).
			Msg("error selecting meal")
		return models.Meal{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return meal, nil
}

// FindMeals returns the meals matching filter ordered by date descending,
// ties broken by id descending. The result is never nil.
func (m *mealRepository) FindMeals(ctx context.Context, filter models.MealFilter) ([]models.Meal, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectMealsQuery(m.db.builder(), filter)
	if err != nil {
		log.Err(err).Str("func", "*mealRepository.FindMeals").Msg("failed to build query")
		return nil, err
	}

	var meals []models.Meal
	err = m.db.withRetry(ctx, func() error {
		var queryErr error
		meals, queryErr = m.queryMeals(ctx, query, args)
		return queryErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "*mealRepository.FindMeals").
			Int64("user_id", filter.UserID).
			Msg("error selecting meals")
		return nil, err
	}

	return meals, nil
}

func (m *mealRepository) queryMeals(ctx context.Context, query string, args []any) ([]models.Meal, error) {
	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	meals := make([]models.Meal, 0, 16)
	for rows.Next() {
		meal, err := scanMeal(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		meals = append(meals, meal)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return meals, nil
}

// UpdateMeal overwrites every mutable column of the meal identified by
// meal.ID and meal.UserID and returns the stored row.
func (m *mealRepository) UpdateMeal(ctx context.Context, meal models.Meal) (models.Meal, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateMealQuery(m.db.builder(), meal)
	if err != nil {
		log.Err(err).Str("func", "*mealRepository.UpdateMeal").Msg("failed to build query")
		return models.Meal{}, err
	}

	updated, err := scanMeal(m.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Meal{}, ErrMealNotFound
		}
		log.Err(err).
			Str("func", "*mealRepository.UpdateMeal").
			Int64("user_id", meal.UserID).
			Int64("meal_id", meal.ID).
			Msg("error updating meal")
		return models.Meal{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

// DeleteMeal removes the meal mealID owned by userID.
func (m *mealRepository) DeleteMeal(ctx context.Context, userID, mealID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteMealQuery(m.db.builder(), userID, mealID)
	if err != nil {
		log.Err(err).Str("func", "*mealRepository.DeleteMeal").Msg("failed to build query")
		return err
	}

	res, err := m.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*mealRepository.DeleteMeal").
			Int64("user_id", userID).
			Int64("meal_id", mealID).
			Msg("error deleting meal")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrMealNotFound
	}

	return nil
}
