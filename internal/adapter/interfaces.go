// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used by the command-line client to
// talk to the time keeper server.
//
// [ServerAdapter] hides the HTTP/JSON details from the client. Non-2xx
// responses are mapped by mapHTTPError to the sentinel values in errors.go,
// so callers can use [errors.Is] (e.g. [ErrConflict] for 409,
// [ErrForbidden] for 403).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-time-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines the client's view of the time keeper API.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" when none is set.
	Token() string

	// Signup creates an account. It does not log the user in.
	Signup(ctx context.Context, req models.SignupRequest) error

	// Login authenticates and stores the returned token via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// Clock toggles the logged-in user between clocked in and clocked out.
	Clock(ctx context.Context) (models.ClockResult, error)

	// Entries lists every time entry. Admin only.
	Entries(ctx context.Context) ([]models.TimeEntry, error)

	// EntriesFor lists the entries of one user, newest first.
	EntriesFor(ctx context.Context, username string) ([]models.TimeEntry, error)

	// Users lists all accounts. Admin only.
	Users(ctx context.Context) ([]models.User, error)

	// Stats returns the aggregate counters. Admin only.
	Stats(ctx context.Context) (models.Stats, error)

	// Health checks that the server is up.
	Health(ctx context.Context) (models.HealthResponse, error)

	// Version returns the server's version string.
	Version(ctx context.Context) (string, error)
}
