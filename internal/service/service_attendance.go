// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-time-keeper/internal/logger"
	"github.com/MKhiriev/go-time-keeper/internal/store"
	"github.com/MKhiriev/go-time-keeper/models"
)

const (
	clockInMessage  = "Clocked In Successfully!"
	clockOutMessage = "Clocked Out Successfully!"
)

type attendanceService struct {
	userRepository      store.UserRepository
	timeEntryRepository store.TimeEntryRepository

	now func() time.Time

	logger *logger.Logger
}

func NewAttendanceService(userRepository store.UserRepository, timeEntryRepository store.TimeEntryRepository, logger *logger.Logger) AttendanceService {
	return newAttendanceService(userRepository, timeEntryRepository, time.Now, logger)
}

func newAttendanceService(userRepository store.UserRepository, timeEntryRepository store.TimeEntryRepository, now func() time.Time, logger *logger.Logger) *attendanceService {
	return &attendanceService{
		userRepository:      userRepository,
		timeEntryRepository: timeEntryRepository,
		now:                 now,
		logger:              logger,
	}
}

// Toggle clocks the caller in when no entry is active and out otherwise.
//
// Returns store.ErrUserNotFound when the account behind the token is gone,
// and ErrClockConflict when a concurrent request for the same user changed
// the state between the read and the write.
func (s *attendanceService) Toggle(ctx context.Context, identity models.Identity) (models.ClockResult, error) {
	log := logger.FromContext(ctx).With().Str("username", identity.Username).Logger()

	user, err := s.userRepository.FindUserByUsername(ctx, identity.Username)
	if err != nil {
		log.Err(err).Msg("user lookup failed")
		return models.ClockResult{}, fmt.Errorf("user lookup failed: %w", err)
	}

	active, err := s.timeEntryRepository.FindActiveEntry(ctx, user.Username)
	switch {
	case errors.Is(err, store.ErrEntryNotFound):
		return s.clockIn(ctx, user)
	case err != nil:
		log.Err(err).Msg("active entry lookup failed")
		return models.ClockResult{}, fmt.Errorf("active entry lookup failed: %w", err)
	default:
		return s.clockOut(ctx, user, active)
	}
}

func (s *attendanceService) clockIn(ctx context.Context, user models.User) (models.ClockResult, error) {
	log := logger.FromContext(ctx)

	entry, err := s.timeEntryRepository.CreateEntry(ctx, models.NewActiveEntry(user, s.now()))
	if errors.Is(err, store.ErrActiveEntryExists) {
		log.Warn().Str("username", user.Username).Msg("concurrent clock-in lost the race")
		return models.ClockResult{}, fmt.Errorf("%w: %w", ErrClockConflict, err)
	}
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("clock-in failed")
		return models.ClockResult{}, fmt.Errorf("clock-in failed: %w", err)
	}

	log.Info().Str("username", user.Username).Int64("entry_id", entry.EntryID).Msg("clocked in")
	return models.ClockResult{
		Action:  models.ActionClockIn,
		Entry:   entry,
		Message: clockInMessage + "\n" + user.FullName(),
	}, nil
}

func (s *attendanceService) clockOut(ctx context.Context, user models.User, active models.TimeEntry) (models.ClockResult, error) {
	log := logger.FromContext(ctx)

	active.Close(s.now())
	entry, err := s.timeEntryRepository.UpdateEntry(ctx, active)
	if errors.Is(err, store.ErrEntryNotFound) {
		log.Warn().Str("username", user.Username).Int64("entry_id", active.EntryID).Msg("concurrent clock-out lost the race")
		return models.ClockResult{}, fmt.Errorf("%w: %w", ErrClockConflict, err)
	}
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("clock-out failed")
		return models.ClockResult{}, fmt.Errorf("clock-out failed: %w", err)
	}

	log.Info().Str("username", user.Username).Int64("entry_id", entry.EntryID).Msg("clocked out")
	return models.ClockResult{
		Action:  models.ActionClockOut,
		Entry:   entry,
		Message: clockOutMessage + "\n" + user.FullName(),
	}, nil
}
