// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is an account that owns meals.
// The password hash never leaves the server.
type User struct {
	// ID is the server-assigned unique identifier of the user.
	ID int64 `json:"id"`

	// Email is the unique login of the user.
	Email string `json:"email"`

	// HashedPassword is the bcrypt hash of the user's password.
	HashedPassword string `json:"-"`

	IsActive    bool `json:"is_active"`
	IsSuperuser bool `json:"is_superuser"`
	IsVerified  bool `json:"is_verified"`

	// CreatedAt is the moment the account was registered.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserCredentials is the payload of registration and login requests.
type UserCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
