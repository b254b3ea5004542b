// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the interactive terminal front end of the timekeeper client.
//
// It shows a login form, then a dashboard with the user's entries where the
// clock can be toggled with a single key. Admins also see every entry and
// the aggregate stats.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-time-keeper/internal/adapter"
	"github.com/MKhiriev/go-time-keeper/internal/logger"
	"github.com/MKhiriev/go-time-keeper/models"
)

type TUI struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func New(serverAdapter adapter.ServerAdapter, logger *logger.Logger) *TUI {
	return &TUI{adapter: serverAdapter, logger: logger}
}

// Run blocks until the user quits and returns the login made in this run.
// Quitting before logging in is not an error.
func (t *TUI) Run(ctx context.Context) (models.LoginResponse, error) {
	finalModel, err := tea.NewProgram(newRootModel(ctx, t.adapter), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return models.LoginResponse{}, err
	}

	result, ok := finalModel.(rootModel)
	if !ok {
		return models.LoginResponse{}, tea.ErrProgramKilled
	}

	t.logger.Debug().Bool("logged_in", result.login.Token != "").Msg("ui closed")
	return result.login, nil
}
