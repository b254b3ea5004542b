// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-time-keeper/internal/adapter"
	"github.com/MKhiriev/go-time-keeper/models"
)

type screen int

const (
	screenLogin screen = iota
	screenDashboard
)

// rootModel switches from the login form to the dashboard once a login
// succeeds and keeps the login for the caller.
type rootModel struct {
	ctx     context.Context
	adapter adapter.ServerAdapter

	screen    screen
	loginForm loginModel
	dashboard dashboardModel

	login models.LoginResponse
}

func newRootModel(ctx context.Context, serverAdapter adapter.ServerAdapter) rootModel {
	return rootModel{
		ctx:       ctx,
		adapter:   serverAdapter,
		screen:    screenLogin,
		loginForm: newLoginModel(ctx, serverAdapter),
	}
}

func (m rootModel) Init() tea.Cmd {
	return m.loginForm.Init()
}

func (m rootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "ctrl+c" || (m.screen == screenDashboard && key.Matches(keyMsg, keys.quit)) {
			return m, tea.Quit
		}
	}

	if res, ok := msg.(loginResultMsg); ok && res.err == nil {
		m.login = res.resp
		m.screen = screenDashboard
		m.dashboard = newDashboardModel(m.ctx, m.adapter, res.resp.User)
		return m, m.dashboard.Init()
	}

	var cmd tea.Cmd
	switch m.screen {
	case screenDashboard:
		m.dashboard, cmd = m.dashboard.Update(msg)
	default:
		m.loginForm, cmd = m.loginForm.Update(msg)
	}
	return m, cmd
}

func (m rootModel) View() string {
	if m.screen == screenDashboard {
		return m.dashboard.View()
	}
	return m.loginForm.View()
}
