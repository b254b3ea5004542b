// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/go-time-keeper/models"
)

const (
	timeLayout = "15:04"
	emptyCell  = "-"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	activeStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true)
	errorStyle  = lipgloss.NewStyle().Bold(true)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func renderEntries(entries []models.TimeEntry) string {
	if len(entries) == 0 {
		return "No entries yet."
	}

	t := newTable("ID", "User", "Name", "Date", "In", "Out", "Hours", "Status")
	active := make(map[int]bool)
	for i, e := range entries {
		t.Row(
			strconv.FormatInt(e.EntryID, 10),
			e.Username,
			e.FirstName+" "+e.LastName,
			e.Date,
			formatClock(&e.ClockIn),
			formatClock(e.ClockOut),
			formatHours(e.HoursWorked),
			string(e.Status),
		)
		active[i] = e.IsActive()
	}

	return t.StyleFunc(func(row, col int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return headerStyle
		case active[row]:
			return activeStyle
		default:
			return cellStyle
		}
	}).String()
}

func renderUsers(users []models.User) string {
	if len(users) == 0 {
		return "No users yet."
	}

	t := newTable("ID", "Username", "Name", "Email", "Admin", "Created")
	for _, u := range users {
		admin := ""
		if u.IsAdmin {
			admin = "yes"
		}
		t.Row(
			strconv.FormatInt(u.UserID, 10),
			u.Username,
			u.FullName(),
			u.Email,
			admin,
			u.CreatedAt.Local().Format(time.DateOnly),
		)
	}

	return t.String()
}

func renderStats(stats models.Stats) string {
	return newTable("Total users", "Clocked in now", "Total records").
		Row(
			strconv.FormatInt(stats.TotalUsers, 10),
			strconv.FormatInt(stats.CurrentlyClockedIn, 10),
			strconv.FormatInt(stats.TotalRecords, 10),
		).
		String()
}

func renderClock(result models.ClockResult) string {
	return titleStyle.Render(result.Message) + "\n" + renderEntries([]models.TimeEntry{result.Entry})
}

func renderError(err error) string {
	return errorStyle.Render("error: ") + err.Error()
}

func formatClock(t *time.Time) string {
	if t == nil || t.IsZero() {
		return emptyCell
	}
	return t.Local().Format(timeLayout)
}

func formatHours(h *float64) string {
	if h == nil {
		return emptyCell
	}
	return fmt.Sprintf("%.2f", *h)
}
