// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an employee account.
// Password always holds a bcrypt hash and is never serialized to JSON.
type User struct {
	// UserID is the store-assigned identifier.
	UserID int64 `json:"id"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	// Email is unique across all users.
	Email string `json:"email"`

	// Username is unique across all users and is the identity carried in tokens.
	Username string `json:"username"`

	// Password is the bcrypt hash of the user's password.
	Password string `json:"-"`

	// IsAdmin grants access to privileged reporting operations.
	IsAdmin bool `json:"isAdmin"`

	// CreatedAt is set by the store at creation time.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// FullName returns "<first> <last>".
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// UserSummary is the public part of a user returned on login.
type UserSummary struct {
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"isAdmin"`
}

// Summary builds the login summary for u.
func (u User) Summary() UserSummary {
	return UserSummary{
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
	}
}
