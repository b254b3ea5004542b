// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-time-keeper/internal/logger"
	"github.com/MKhiriev/go-time-keeper/internal/mock"
	"github.com/MKhiriev/go-time-keeper/internal/store"
	"github.com/MKhiriev/go-time-keeper/models"
)

var (
	testNow      = time.Date(2026, 3, 4, 17, 30, 0, 0, time.Local)
	testIdentity = models.Identity{Username: "ada"}
	testAda      = models.User{UserID: 1, FirstName: "Ada", LastName: "Lovelace", Username: "ada"}
)

func newTestAttendanceSvc(t *testing.T) (*attendanceService, *mock.MockUserRepository, *mock.MockTimeEntryRepository) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	entries := mock.NewMockTimeEntryRepository(ctrl)

	svc := newAttendanceService(users, entries, func() time.Time { return testNow }, logger.Nop())
	return svc, users, entries
}

func TestToggle_ClockIn(t *testing.T) {
	svc, users, entries := newTestAttendanceSvc(t)
	ctx := context.Background()

	users.EXPECT().FindUserByUsername(ctx, "ada").Return(testAda, nil)
	entries.EXPECT().FindActiveEntry(ctx, "ada").Return(models.TimeEntry{}, store.ErrEntryNotFound)
	entries.EXPECT().CreateEntry(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, e models.TimeEntry) (models.TimeEntry, error) {
			assert.Equal(t, testNow, e.ClockIn)
			assert.Equal(t, "Mar 4, 2026", e.Date)
			assert.Equal(t, "Ada", e.FirstName)
			assert.Equal(t, "Lovelace", e.LastName)
			e.EntryID = 9
			return e, nil
		})

	res, err := svc.Toggle(ctx, testIdentity)
	require.NoError(t, err)
	assert.Equal(t, models.ActionClockIn, res.Action)
	assert.Equal(t, "Clocked In Successfully!\nAda Lovelace", res.Message)
	assert.Equal(t, models.StatusClockedIn, res.Entry.Status)
	assert.Nil(t, res.Entry.ClockOut)
}

func TestToggle_ClockOut(t *testing.T) {
	svc, users, entries := newTestAttendanceSvc(t)
	ctx := context.Background()

	active := models.NewActiveEntry(testAda, testNow.Add(-8*time.Hour-20*time.Minute))
	active.EntryID = 9

	users.EXPECT().FindUserByUsername(ctx, "ada").Return(testAda, nil)
	entries.EXPECT().FindActiveEntry(ctx, "ada").Return(active, nil)
	entries.EXPECT().UpdateEntry(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, e models.TimeEntry) (models.TimeEntry, error) {
			require.NotNil(t, e.ClockOut)
			assert.Equal(t, testNow, *e.ClockOut)
			return e, nil
		})

	res, err := svc.Toggle(ctx, testIdentity)
	require.NoError(t, err)
	assert.Equal(t, models.ActionClockOut, res.Action)
	assert.Equal(t, "Clocked Out Successfully!\nAda Lovelace", res.Message)
	assert.Equal(t, models.StatusClockedOut, res.Entry.Status)
	require.NotNil(t, res.Entry.HoursWorked)
	assert.Equal(t, 8.33, *res.Entry.HoursWorked)
}

func TestToggle_UserNotFound(t *testing.T) {
	svc, users, _ := newTestAttendanceSvc(t)

	users.EXPECT().FindUserByUsername(gomock.Any(), "ada").Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.Toggle(context.Background(), testIdentity)
	require.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestToggle_Races(t *testing.T) {
	tests := []struct {
		name  string
		setup func(entries *mock.MockTimeEntryRepository)
	}{
		{
			name: "concurrent clock-in",
			setup: func(entries *mock.MockTimeEntryRepository) {
				entries.EXPECT().FindActiveEntry(gomock.Any(), "ada").Return(models.TimeEntry{}, store.ErrEntryNotFound)
				entries.EXPECT().CreateEntry(gomock.Any(), gomock.Any()).Return(models.TimeEntry{}, store.ErrActiveEntryExists)
			},
		},
		{
			name: "concurrent clock-out",
			setup: func(entries *mock.MockTimeEntryRepository) {
				entries.EXPECT().FindActiveEntry(gomock.Any(), "ada").Return(models.NewActiveEntry(testAda, testNow.Add(-time.Hour)), nil)
				entries.EXPECT().UpdateEntry(gomock.Any(), gomock.Any()).Return(models.TimeEntry{}, store.ErrEntryNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, users, entries := newTestAttendanceSvc(t)
			users.EXPECT().FindUserByUsername(gomock.Any(), "ada").Return(testAda, nil)
			tt.setup(entries)

			_, err := svc.Toggle(context.Background(), testIdentity)
			require.ErrorIs(t, err, ErrClockConflict)
		})
	}
}

func TestToggle_StoreError(t *testing.T) {
	svc, users, entries := newTestAttendanceSvc(t)

	users.EXPECT().FindUserByUsername(gomock.Any(), "ada").Return(testAda, nil)
	entries.EXPECT().FindActiveEntry(gomock.Any(), "ada").Return(models.TimeEntry{}, errors.New("db down"))

	_, err := svc.Toggle(context.Background(), testIdentity)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrClockConflict)
}
