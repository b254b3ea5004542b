// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-time-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	Signup(ctx context.Context, req models.SignupRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.Token, models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Identity, error)
	EnsureAdmin(ctx context.Context, admin models.AdminBootstrap) error
}

// AttendanceService flips a user between clocked in and clocked out.
type AttendanceService interface {
	Toggle(ctx context.Context, identity models.Identity) (models.ClockResult, error)
}

// ReportingService serves read-only views gated on the caller's identity.
type ReportingService interface {
	Stats(ctx context.Context, identity models.Identity) (models.Stats, error)
	ListAllEntries(ctx context.Context, identity models.Identity) ([]models.TimeEntry, error)
	ListEntriesFor(ctx context.Context, identity models.Identity, username string) ([]models.TimeEntry, error)
	ListUsers(ctx context.Context, identity models.Identity) ([]models.User, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
