// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-time-keeper/internal/logger"
	"github.com/MKhiriev/go-time-keeper/internal/store"
	"github.com/MKhiriev/go-time-keeper/models"
)

type reportingService struct {
	userRepository      store.UserRepository
	timeEntryRepository store.TimeEntryRepository

	logger *logger.Logger
}

func NewReportingService(userRepository store.UserRepository, timeEntryRepository store.TimeEntryRepository, logger *logger.Logger) ReportingService {
	return &reportingService{
		userRepository:      userRepository,
		timeEntryRepository: timeEntryRepository,
		logger:              logger,
	}
}

// Stats returns the dashboard counters. Admin only.
func (s *reportingService) Stats(ctx context.Context, identity models.Identity) (models.Stats, error) {
	if !identity.IsAdmin {
		return models.Stats{}, ErrAdminAccessRequired
	}

	var (
		stats models.Stats
		err   error
	)

	if stats.TotalUsers, err = s.userRepository.CountUsers(ctx); err != nil {
		return models.Stats{}, fmt.Errorf("counting users failed: %w", err)
	}
	if stats.CurrentlyClockedIn, err = s.timeEntryRepository.CountActiveEntries(ctx); err != nil {
		return models.Stats{}, fmt.Errorf("counting active entries failed: %w", err)
	}
	if stats.TotalRecords, err = s.timeEntryRepository.CountEntries(ctx); err != nil {
		return models.Stats{}, fmt.Errorf("counting entries failed: %w", err)
	}

	return stats, nil
}

// ListAllEntries returns every entry, newest clock-in first. Admin only.
func (s *reportingService) ListAllEntries(ctx context.Context, identity models.Identity) ([]models.TimeEntry, error) {
	if !identity.IsAdmin {
		return nil, ErrAdminAccessRequired
	}

	entries, err := s.timeEntryRepository.ListEntries(ctx, models.EntryFilter{})
	if err != nil {
		return nil, fmt.Errorf("listing entries failed: %w", err)
	}

	return entries, nil
}

// ListEntriesFor returns the entries of username. Allowed for that user and
// for admins.
func (s *reportingService) ListEntriesFor(ctx context.Context, identity models.Identity, username string) ([]models.TimeEntry, error) {
	if !identity.CanView(username) {
		logger.FromContext(ctx).Warn().
			Str("caller", identity.Username).
			Str("username", username).
			Msg("entries of another user requested")
		return nil, ErrAccessDenied
	}

	entries, err := s.timeEntryRepository.ListEntries(ctx, models.EntryFilter{Username: username})
	if err != nil {
		return nil, fmt.Errorf("listing entries failed: %w", err)
	}

	return entries, nil
}

// ListUsers returns every account. Admin only.
func (s *reportingService) ListUsers(ctx context.Context, identity models.Identity) ([]models.User, error) {
	if !identity.IsAdmin {
		return nil, ErrAdminAccessRequired
	}

	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users failed: %w", err)
	}

	return users, nil
}
