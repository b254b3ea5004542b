// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-time-keeper/models"

type loginResultMsg struct {
	resp models.LoginResponse
	err  error
}

type entriesLoadedMsg struct {
	entries []models.TimeEntry
	err     error
}

type clockDoneMsg struct {
	result models.ClockResult
	err    error
}

type statsLoadedMsg struct {
	stats models.Stats
	err   error
}
