// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TokenTypeBearer is the token_type value returned by the login endpoint.
const TokenTypeBearer = "bearer"

// TokenResponse is the body returned by a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// MessageResponse carries a human-readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every error reply of the HTTP API.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// HealthResponse is returned by the liveness endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

// DBCheckResponse is returned by the database readiness endpoint.
type DBCheckResponse struct {
	DB string `json:"db"`
}
