// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-time-keeper/internal/adapter"
	"github.com/MKhiriev/go-time-keeper/models"
)

// loginModel renders the username and password inputs and dispatches an
// async login on enter. The result arrives as a loginResultMsg.
type loginModel struct {
	ctx     context.Context
	adapter adapter.ServerAdapter

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newLoginModel(ctx context.Context, serverAdapter adapter.ServerAdapter) loginModel {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64
	username.Width = 40
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return loginModel{
		ctx:     ctx,
		adapter: serverAdapter,
		inputs:  []textinput.Model{username, password},
	}
}

func (m loginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.tab):
			m.setFocus(m.focus + 1)
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.setFocus(m.focus - 1)
			return m, nil
		case key.Matches(msg, keys.enter):
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m loginModel) submit() (loginModel, tea.Cmd) {
	if m.submitting {
		return m, nil
	}

	req := models.LoginRequest{
		Username: strings.TrimSpace(m.inputs[0].Value()),
		Password: m.inputs[1].Value(),
	}
	if req.Username == "" || req.Password == "" {
		m.errMsg = "Username and password are required"
		return m, nil
	}

	m.errMsg = ""
	m.submitting = true
	return m, cmdLogin(m.ctx, m.adapter, req)
}

func (m *loginModel) setFocus(i int) {
	n := len(m.inputs)
	m.focus = ((i % n) + n) % n
	for j := range m.inputs {
		if j == m.focus {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
}

func (m loginModel) View() string {
	var b strings.Builder
	b.WriteString("Username │ ")
	b.WriteString(m.inputs[0].View())
	b.WriteString("\nPassword │ ")
	b.WriteString(m.inputs[1].View())

	if m.submitting {
		b.WriteString("\n\n[Logging in...]")
	} else {
		b.WriteString("\n\n[Log in]")
	}

	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	}

	return renderPage("TIME KEEPER · LOGIN", b.String(), "tab: next field │ enter: log in")
}

func cmdLogin(ctx context.Context, serverAdapter adapter.ServerAdapter, req models.LoginRequest) tea.Cmd {
	return func() tea.Msg {
		resp, err := serverAdapter.Login(ctx, req)
		return loginResultMsg{resp: resp, err: err}
	}
}
