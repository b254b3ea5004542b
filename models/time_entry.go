// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"math"
	"time"
)

// EntryStatus is the attendance state of a TimeEntry.
type EntryStatus string

const (
	StatusClockedIn  EntryStatus = "Clocked In"
	StatusClockedOut EntryStatus = "Clocked Out"
)

// EntryDateLayout is the layout of TimeEntry.Date ("Oct 19, 2026").
const EntryDateLayout = "Jan 2, 2006"

// TimeEntry is one clock-in/clock-out interval of a user.
//
// FirstName and LastName are copied from the user at clock-in time.
// ClockOut and HoursWorked stay nil while the entry is active.
type TimeEntry struct {
	EntryID     int64       `json:"id"`
	Username    string      `json:"username"`
	FirstName   string      `json:"firstName"`
	LastName    string      `json:"lastName"`
	ClockIn     time.Time   `json:"clockIn"`
	ClockOut    *time.Time  `json:"clockOut,omitempty"`
	Date        string      `json:"date"`
	Status      EntryStatus `json:"status"`
	HoursWorked *float64    `json:"hoursWorked,omitempty"`
}

// TableName returns the name of the database table
// associated with the TimeEntry model.
func (e TimeEntry) TableName() string {
	return "time_entries"
}

// IsActive reports whether the entry is still clocked in.
func (e TimeEntry) IsActive() bool {
	return e.Status == StatusClockedIn
}

// NewActiveEntry opens an entry for user at now.
func NewActiveEntry(user User, now time.Time) TimeEntry {
	return TimeEntry{
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		ClockIn:   now,
		Date:      now.Format(EntryDateLayout),
		Status:    StatusClockedIn,
	}
}

// Close marks the entry clocked out at now and fills HoursWorked.
func (e *TimeEntry) Close(now time.Time) {
	hours := HoursBetween(e.ClockIn, now)
	e.ClockOut = &now
	e.Status = StatusClockedOut
	e.HoursWorked = &hours
}

// HoursBetween returns the wall-clock hours from start to end rounded to two
// decimal places.
func HoursBetween(start, end time.Time) float64 {
	return math.Round(end.Sub(start).Hours()*100) / 100
}

// EntryFilter narrows ListEntries. An empty Username selects every entry.
type EntryFilter struct {
	Username string
}
