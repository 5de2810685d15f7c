// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the HTTP layer. Callers can match against them with
// [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrMalformedBody is returned when the request body is not valid JSON
	// or form data.
	ErrMalformedBody = errors.New("malformed request body")

	// ErrInvalidBody is returned when the body is well-formed but a field has
	// the wrong type or an unparsable timestamp.
	ErrInvalidBody = errors.New("invalid request body")

	// ErrInvalidMealID is returned when the {id} path segment is not an
	// integer.
	ErrInvalidMealID = errors.New("invalid meal id")

	// ErrNoUserInContext is returned by protected handlers that run without
	// the auth middleware having stored a user.
	ErrNoUserInContext = errors.New("no authenticated user in request context")
)
