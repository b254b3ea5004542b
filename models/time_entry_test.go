// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewActiveEntry(t *testing.T) {
	now := time.Date(2026, time.October, 19, 9, 30, 0, 0, time.Local)
	user := User{Username: "abc", FirstName: "A", LastName: "B"}

	e := NewActiveEntry(user, now)

	assert.Equal(t, "abc", e.Username)
	assert.Equal(t, "A", e.FirstName)
	assert.Equal(t, "B", e.LastName)
	assert.Equal(t, now, e.ClockIn)
	assert.Equal(t, "Oct 19, 2026", e.Date)
	assert.Equal(t, StatusClockedIn, e.Status)
	assert.True(t, e.IsActive())
	assert.Nil(t, e.ClockOut)
	assert.Nil(t, e.HoursWorked)
}

func TestTimeEntry_Close(t *testing.T) {
	in := time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC)
	out := in.Add(7*time.Hour + 46*time.Minute)

	e := TimeEntry{ClockIn: in, Status: StatusClockedIn}
	e.Close(out)

	require.NotNil(t, e.ClockOut)
	require.NotNil(t, e.HoursWorked)
	assert.Equal(t, out, *e.ClockOut)
	assert.Equal(t, StatusClockedOut, e.Status)
	assert.False(t, e.IsActive())
	assert.InDelta(t, 7.77, *e.HoursWorked, 1e-9)
}

func TestHoursBetween(t *testing.T) {
	start := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		d    time.Duration
		want float64
	}{
		{name: "zero", d: 0, want: 0},
		{name: "one hour", d: time.Hour, want: 1},
		{name: "rounds down", d: 20 * time.Second, want: 0.01},
		{name: "rounds half up", d: 90 * time.Minute, want: 1.5},
		{name: "two decimals", d: 8*time.Hour + 20*time.Minute, want: 8.33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, HoursBetween(start, start.Add(tt.d)), 1e-9)
		})
	}
}

func TestIdentity_CanView(t *testing.T) {
	assert.True(t, Identity{Username: "abc"}.CanView("abc"))
	assert.False(t, Identity{Username: "abc"}.CanView("xyz"))
	assert.True(t, Identity{Username: "root", IsAdmin: true}.CanView("xyz"))
}

func TestNewAppBuildInfo_DefaultsToNA(t *testing.T) {
	info := NewAppBuildInfo("", "2026-10-19", "")

	assert.Equal(t, "N/A", info.Version)
	assert.Equal(t, "2026-10-19", info.Date)
	assert.Equal(t, "N/A", info.Commit)
	assert.Contains(t, info.String(), "Build date: 2026-10-19")
}
