// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ClockAction is the transition performed by a clock toggle.
type ClockAction string

const (
	ActionClockIn  ClockAction = "clockIn"
	ActionClockOut ClockAction = "clockOut"
)

// ClockResult is the outcome of POST /api/clock.
type ClockResult struct {
	Action  ClockAction `json:"action"`
	Entry   TimeEntry   `json:"entry"`
	Message string      `json:"message"`
}

// LoginResponse is returned by POST /api/login.
type LoginResponse struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}

// Stats aggregates counters for the admin dashboard.
type Stats struct {
	TotalUsers         int64 `json:"totalUsers"`
	CurrentlyClockedIn int64 `json:"currentlyClockedIn"`
	TotalRecords       int64 `json:"totalRecords"`
}

// MessageResponse carries a human-readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
