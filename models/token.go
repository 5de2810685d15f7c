// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token is an issued or parsed bearer credential.
//
// It embeds [jwt.Token] for signing and claim inspection and
// [jwt.RegisteredClaims] so it can be used directly as the claims target of
// jwt.ParseWithClaims.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact header.payload.signature form sent to clients.
	SignedString string `json:"-"`

	// UserID is the owner identifier taken from the "sub" claim.
	UserID int64 `json:"-"`
}

// GetUserID parses the "sub" claim as a base-10 user identifier.
func (t *Token) GetUserID() (int64, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting user id from token: %w", err)
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting token subject %q to user id: %w", subject, err)
	}

	return userID, nil
}

// String returns the compact serialized token.
func (t *Token) String() string {
	return t.SignedString
}
