// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-time-keeper/models"
)

var (
	usersTable       = models.User{}.TableName()
	timeEntriesTable = models.TimeEntry{}.TableName()

	userColumns = []string{
		"user_id",
		"first_name",
		"last_name",
		"email",
		"username",
		"password",
		"is_admin",
		"created_at",
	}

	timeEntryColumns = []string{
		"entry_id",
		"username",
		"first_name",
		"last_name",
		"clock_in",
		"clock_out",
		"date",
		"status",
		"hours_worked",
	}
)

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("first_name", "last_name", "email", "username", "password", "is_admin", "created_at").
		Values(user.FirstName, user.LastName, user.Email, user.Username, user.Password, user.IsAdmin, user.CreatedAt.UTC()).
		Suffix("RETURNING user_id").
		ToSql()
}

func buildFindUserByUsernameQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"username": username}).
		Limit(1).
		ToSql()
}

func buildFindUserByUsernameOrEmailQuery(b sq.StatementBuilderType, username, email string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Or{
			sq.Eq{"username": username},
			sq.Eq{"email": email},
		}).
		Limit(1).
		ToSql()
}

func buildListUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		OrderBy("created_at", "user_id").
		ToSql()
}

func buildCountQuery(b sq.StatementBuilderType, table string, where ...sq.Sqlizer) (string, []any, error) {
	query := b.Select("COUNT(*)").From(table)
	for _, w := range where {
		query = query.Where(w)
	}

	return query.ToSql()
}

func buildCreateEntryQuery(b sq.StatementBuilderType, entry models.TimeEntry) (string, []any, error) {
	return b.Insert(timeEntriesTable).
		Columns("username", "first_name", "last_name", "clock_in", "date", "status").
		Values(entry.Username, entry.FirstName, entry.LastName, entry.ClockIn.UTC(), entry.Date, string(models.StatusClockedIn)).
		Suffix("RETURNING entry_id").
		ToSql()
}

func buildFindActiveEntryQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return b.Select(timeEntryColumns...).
		From(timeEntriesTable).
		Where(sq.And{
			sq.Eq{"username": username},
			sq.Eq{"status": string(models.StatusClockedIn)},
		}).
		Limit(1).
		ToSql()
}

// buildCloseEntryQuery only matches a row that is still clocked in, so two
// racing clock-outs cannot both succeed.
func buildCloseEntryQuery(b sq.StatementBuilderType, entry models.TimeEntry) (string, []any, error) {
	var clockOut any
	if entry.ClockOut != nil {
		clockOut = entry.ClockOut.UTC()
	}

	return b.Update(timeEntriesTable).
		Set("clock_out", clockOut).
		Set("status", string(models.StatusClockedOut)).
		Set("hours_worked", entry.HoursWorked).
		Where(sq.And{
			sq.Eq{"entry_id": entry.EntryID},
			sq.Eq{"status": string(models.StatusClockedIn)},
		}).
		ToSql()
}

func buildListEntriesQuery(b sq.StatementBuilderType, filter models.EntryFilter) (string, []any, error) {
	query := b.Select(timeEntryColumns...).From(timeEntriesTable)
	if filter.Username != "" {
		query = query.Where(sq.Eq{"username": filter.Username})
	}

	return query.OrderBy("clock_in DESC", "entry_id DESC").ToSql()
}
