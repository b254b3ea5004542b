// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-time-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with UserID set.
	// A username or email collision yields [ErrUserAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByUsername yields [ErrUserNotFound] when nothing matches.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	// FindUserByUsernameOrEmail returns the first user holding either value.
	FindUserByUsernameOrEmail(ctx context.Context, username, email string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	CountUsers(ctx context.Context) (int64, error)
}

// TimeEntryRepository persists clock-in/clock-out records.
type TimeEntryRepository interface {
	// CreateEntry inserts an active entry. A second active entry for the
	// same user yields [ErrActiveEntryExists].
	CreateEntry(ctx context.Context, entry models.TimeEntry) (models.TimeEntry, error)
	// FindActiveEntry yields [ErrEntryNotFound] when the user is clocked out.
	FindActiveEntry(ctx context.Context, username string) (models.TimeEntry, error)
	// UpdateEntry stores the clock-out fields of entry, but only while the
	// stored row is still active. Otherwise it yields [ErrEntryNotFound].
	UpdateEntry(ctx context.Context, entry models.TimeEntry) (models.TimeEntry, error)
	// ListEntries returns entries newest clock-in first.
	ListEntries(ctx context.Context, filter models.EntryFilter) ([]models.TimeEntry, error)
	CountEntries(ctx context.Context) (int64, error)
	CountActiveEntries(ctx context.Context) (int64, error)
}
