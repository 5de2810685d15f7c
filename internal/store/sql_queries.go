package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-calorie-keeper/models"
)

const (
	usersTable = "users"
	mealsTable = "meals"
)

var userColumns = []string{
	"id",
	"email",
	"hashed_password",
	"is_active",
	"is_superuser",
	"is_verified",
	"created_at",
}

var mealColumns = []string{
	"id",
	"user_id",
	"name",
	"description",
	"calories",
	"proteins",
	"carbohydrates",
	"fats",
	"fiber",
	"meal_type",
	"date",
}

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := b.Insert(usersTable).
		Columns("email", "hashed_password", "is_active", "is_superuser", "is_verified").
		Values(user.Email, user.HashedPassword, user.IsActive, user.IsSuperuser, user.IsVerified).
		Suffix(returning(userColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	query, args, err := b.Select(userColumns...).
		From(usersTable).
		Where(where).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteUserQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	query, args, err := b.Delete(usersTable).
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertMealQuery(b sq.StatementBuilderType, meal models.Meal) (string, []any, error) {
	query, args, err := b.Insert(mealsTable).
		Columns(mealColumns[1:]...).
		Values(
			meal.UserID,
			meal.Name,
			meal.Description,
			meal.Calories,
			meal.Proteins,
			meal.Carbohydrates,
			meal.Fats,
			meal.Fiber,
			meal.MealType,
			meal.Date,
		).
		Suffix(returning(mealColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectMealByIDQuery(b sq.StatementBuilderType, userID, mealID int64) (string, []any, error) {
	query, args, err := b.Select(mealColumns...).
		From(mealsTable).
		Where(sq.Eq{"id": mealID, "user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildSelectMealsQuery selects the meals of filter.UserID, newest first.
// A window restricts the result to Start <= date < End.
func buildSelectMealsQuery(b sq.StatementBuilderType, filter models.MealFilter) (string, []any, error) {
	where := sq.And{sq.Eq{"user_id": filter.UserID}}
	if filter.Window != nil {
		where = append(where,
			sq.GtOrEq{"date": filter.Window.Start},
			sq.Lt{"date": filter.Window.End},
		)
	}

	query, args, err := b.Select(mealColumns...).
		From(mealsTable).
		Where(where).
		OrderBy("date DESC", "id DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpdateMealQuery(b sq.StatementBuilderType, meal models.Meal) (string, []any, error) {
	query, args, err := b.Update(mealsTable).
		SetMap(map[string]any{
			"name":          meal.Name,
			"description":   meal.Description,
			"calories":      meal.Calories,
			"proteins":      meal.Proteins,
			"carbohydrates": meal.Carbohydrates,
			"fats":          meal.Fats,
			"fiber":         meal.Fiber,
			"meal_type":     meal.MealType,
			"date":          meal.Date,
		}).
		Where(sq.Eq{"id": meal.ID, "user_id": meal.UserID}).
		Suffix(returning(mealColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteMealQuery(b sq.StatementBuilderType, userID, mealID int64) (string, []any, error) {
	query, args, err := b.Delete(mealsTable).
		Where(sq.Eq{"id": mealID, "user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// rowScanner is implemented by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.HashedPassword,
		&user.IsActive,
		&user.IsSuperuser,
		&user.IsVerified,
		&user.CreatedAt,
	)
	return user, err
}

func scanMeal(row rowScanner) (models.Meal, error) {
	var meal models.Meal
	err := row.Scan(
		&meal.ID,
		&meal.UserID,
		&meal.Name,
		&meal.Description,
		&meal.Calories,
		&meal.Proteins,
		&meal.Carbohydrates,
		&meal.Fats,
		&meal.Fiber,
		&meal.MealType,
		&meal.Date,
	)
	return meal, err
}
