// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when a new user collides with an
	// existing username or email.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrUserNotFound is returned when a lookup matches no user record.
	ErrUserNotFound = errors.New("user was not found")

	// ErrActiveEntryExists is returned when a clock-in would open a second
	// active entry for the same user.
	ErrActiveEntryExists = errors.New("active time entry already exists")

	// ErrEntryNotFound is returned when no active entry matches the lookup
	// or the conditional clock-out update.
	ErrEntryNotFound = errors.New("time entry was not found")
)

// Low-level database operation errors.
var (
	ErrBuildingSQLQuery = errors.New("error building sql query")
	ErrExecutingQuery   = errors.New("error executing sql query")
	ErrScanningRows     = errors.New("failed to scan rows")
	ErrUnsupportedDSN   = errors.New("unsupported database DSN")
)
