// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// calorie keeper server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// the "detail" field of HTTP error bodies or into log entries. Keeping them in
// one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when a decoded payload fails
	// validation (e.g. a missing name or meal type).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInvalidMealID is returned when the {id} path segment is not an
	// integer.
	MsgInvalidMealID = "meal id must be an integer"

	// MsgInvalidDateFormat is returned when date_filter is not YYYY-MM-DD.
	MsgInvalidDateFormat = "invalid date format, use YYYY-MM-DD"

	// MsgMealNotFound is returned for a meal that does not exist and for a
	// meal that belongs to another user.
	MsgMealNotFound = "meal not found"

	// MsgMealDeleted confirms a successful meal deletion.
	MsgMealDeleted = "meal deleted successfully"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgUnauthorized is returned when the bearer token is missing,
	// malformed, expired, or belongs to an unknown or inactive account.
	MsgUnauthorized = "Unauthorized"

	// MsgLoginBadCredentials is returned when the e-mail/password pair does
	// not match an active account.
	MsgLoginBadCredentials = "LOGIN_BAD_CREDENTIALS"

	// MsgRegisterUserAlreadyExists is returned when a registration attempt is
	// rejected because the e-mail is already in use.
	MsgRegisterUserAlreadyExists = "REGISTER_USER_ALREADY_EXISTS"

	// MsgRegisterInvalidCredentials is returned when the e-mail is malformed
	// or the password is too short.
	MsgRegisterInvalidCredentials = "REGISTER_INVALID_CREDENTIALS"

	// MsgIntegrityCheckFailed is returned when the HashSHA256 header does not
	// match the request body.
	MsgIntegrityCheckFailed = "integrity check failed"

	// MsgTooManyRequests is returned by the rate limiter.
	MsgTooManyRequests = "too many requests"

	// MsgNotFound is returned for unknown routes.
	MsgNotFound = "Not Found"

	// MsgMethodNotAllowed is returned when a route exists but does not
	// handle the request method.
	MsgMethodNotAllowed = "Method Not Allowed"

	// MsgStatusOK is the body value of a healthy liveness or database check.
	MsgStatusOK = "ok"

	// MsgStatusError is the body value of a failed database check.
	MsgStatusError = "error"
)
