// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"

	"github.com/MKhiriev/go-calorie-keeper/models"
)

const (
	// FieldEmail targets the login e-mail, which must be a bare address.
	FieldEmail = "email"

	// FieldPassword targets the plain-text password length.
	FieldPassword = "password"
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 3

// CredentialsValidator checks registration and login payloads.
type CredentialsValidator struct {
}

func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UserCredentials:
		return v.validateCredentials(value, fields...)
	case *models.UserCredentials:
		return v.validateCredentials(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateCredentials(creds models.UserCredentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			addr, err := mail.ParseAddress(creds.Email)
			// "Name <a@b>" parses too, only the bare address is a login
			if err != nil || addr.Address != creds.Email {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if len(creds.Password) < MinPasswordLength {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
