// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-time-keeper/internal/adapter"
	"github.com/MKhiriev/go-time-keeper/models"
)

const entriesTableHeight = 12

// dashboardModel shows the user's entries and toggles the clock. Admins see
// every entry and can load the stats.
type dashboardModel struct {
	ctx     context.Context
	adapter adapter.ServerAdapter
	user    models.UserSummary

	table   table.Model
	entries []models.TimeEntry
	stats   *models.Stats
	status  string
	errMsg  string
	busy    bool
}

func newDashboardModel(ctx context.Context, serverAdapter adapter.ServerAdapter, user models.UserSummary) dashboardModel {
	columns := []table.Column{
		{Title: "ID", Width: 5},
		{Title: "User", Width: 12},
		{Title: "Date", Width: 13},
		{Title: "In", Width: 6},
		{Title: "Out", Width: 6},
		{Title: "Hours", Width: 6},
		{Title: "Status", Width: 12},
	}

	return dashboardModel{
		ctx:     ctx,
		adapter: serverAdapter,
		user:    user,
		table: table.New(
			table.WithColumns(columns),
			table.WithFocused(true),
			table.WithHeight(entriesTableHeight),
		),
		busy: true,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return m.entriesCmd()
}

func (m dashboardModel) Update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case entriesLoadedMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.entries = msg.entries
		m.table.SetRows(entryRows(msg.entries))
		return m, nil

	case clockDoneMsg:
		if msg.err != nil {
			m.busy = false
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = strings.ReplaceAll(msg.result.Message, "\n", " · ")
		return m, m.entriesCmd()

	case statsLoadedMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.stats = &msg.stats
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.clock):
			if m.busy {
				return m, nil
			}
			m.busy = true
			return m, cmdClock(m.ctx, m.adapter)
		case key.Matches(msg, keys.refresh):
			if m.busy {
				return m, nil
			}
			m.busy = true
			return m, m.entriesCmd()
		case key.Matches(msg, keys.stats):
			if !m.user.IsAdmin || m.busy {
				return m, nil
			}
			m.busy = true
			return m, cmdStats(m.ctx, m.adapter)
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m dashboardModel) entriesCmd() tea.Cmd {
	if m.user.IsAdmin {
		return cmdAllEntries(m.ctx, m.adapter)
	}
	return cmdEntriesFor(m.ctx, m.adapter, m.user.Username)
}

func (m dashboardModel) View() string {
	var b strings.Builder

	role := "employee"
	if m.user.IsAdmin {
		role = "admin"
	}
	fmt.Fprintf(&b, "Signed in as %s %s (%s, %s)\n", m.user.FirstName, m.user.LastName, m.user.Username, role)
	fmt.Fprintf(&b, "Currently: %s\n\n", m.currentState())

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n\n")
	}

	b.WriteString(m.table.View())

	if m.stats != nil {
		fmt.Fprintf(&b, "\n\nUsers: %d │ Clocked in now: %d │ Records: %d",
			m.stats.TotalUsers, m.stats.CurrentlyClockedIn, m.stats.TotalRecords)
	}
	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	}

	hotKeys := "c: clock in/out │ r: refresh │ q: quit"
	if m.user.IsAdmin {
		hotKeys = "c: clock in/out │ r: refresh │ s: stats │ q: quit"
	}

	return renderPage("TIME KEEPER", b.String(), hotKeys)
}

// currentState reports the user's own clock state from the loaded entries.
func (m dashboardModel) currentState() string {
	for _, e := range m.entries {
		if e.Username == m.user.Username && e.IsActive() {
			return "clocked in since " + e.ClockIn.Local().Format("15:04")
		}
	}
	return "clocked out"
}

func entryRows(entries []models.TimeEntry) []table.Row {
	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		out, hours := "-", "-"
		if e.ClockOut != nil {
			out = e.ClockOut.Local().Format("15:04")
		}
		if e.HoursWorked != nil {
			hours = strconv.FormatFloat(*e.HoursWorked, 'f', 2, 64)
		}
		rows = append(rows, table.Row{
			strconv.FormatInt(e.EntryID, 10),
			e.Username,
			e.Date,
			e.ClockIn.Local().Format("15:04"),
			out,
			hours,
			string(e.Status),
		})
	}
	return rows
}

func cmdClock(ctx context.Context, serverAdapter adapter.ServerAdapter) tea.Cmd {
	return func() tea.Msg {
		result, err := serverAdapter.Clock(ctx)
		return clockDoneMsg{result: result, err: err}
	}
}

func cmdAllEntries(ctx context.Context, serverAdapter adapter.ServerAdapter) tea.Cmd {
	return func() tea.Msg {
		entries, err := serverAdapter.Entries(ctx)
		return entriesLoadedMsg{entries: entries, err: err}
	}
}

func cmdEntriesFor(ctx context.Context, serverAdapter adapter.ServerAdapter, username string) tea.Cmd {
	return func() tea.Msg {
		entries, err := serverAdapter.EntriesFor(ctx, username)
		return entriesLoadedMsg{entries: entries, err: err}
	}
}

func cmdStats(ctx context.Context, serverAdapter adapter.ServerAdapter) tea.Cmd {
	return func() tea.Msg {
		stats, err := serverAdapter.Stats(ctx)
		return statsLoadedMsg{stats: stats, err: err}
	}
}
