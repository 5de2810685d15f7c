package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidDateFilter   = errors.New("invalid date format, use YYYY-MM-DD")
	ErrWrongPassword       = errors.New("wrong password")
	ErrUserInactive        = errors.New("user is inactive")

	ErrPasswordHashingFailed   = errors.New("password hashing failed")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrDatabaseUnavailable   = errors.New("database is unavailable")
)
