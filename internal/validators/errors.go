package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName        = errors.New("name is required")
	ErrMissingCalories  = errors.New("calories is required")
	ErrEmptyMealType    = errors.New("meal_type is required")
	ErrNullNotAllowed   = errors.New("field may not be null")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")

	ErrInvalidEmail     = errors.New("invalid email address")
	ErrPasswordTooShort = errors.New("password is too short")
)
