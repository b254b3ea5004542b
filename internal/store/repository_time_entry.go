// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-time-keeper/internal/logger"
	"github.com/MKhiriev/go-time-keeper/models"
)

// timeEntryRepository is the SQL implementation of [TimeEntryRepository]
// over the "time_entries" table.
//
// The schema holds a partial unique index on username for active rows, so
// the database rejects a second concurrent clock-in.
type timeEntryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTimeEntryRepository constructs a [TimeEntryRepository] backed by db.
func NewTimeEntryRepository(db *DB, logger *logger.Logger) TimeEntryRepository {
	logger.Debug().Msg("creating time entry repository")
	return &timeEntryRepository{
		db:     db,
		logger: logger,
	}
}

func (r *timeEntryRepository) CreateEntry(ctx context.Context, entry models.TimeEntry) (models.TimeEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateEntryQuery(r.db.builder, entry)
	if err != nil {
		return models.TimeEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&entry.EntryID); err != nil {
		if isUniqueViolation(err) {
			log.Debug().Str("func", "*timeEntryRepository.CreateEntry").Str("username", entry.Username).Msg("user is already clocked in")
			return models.TimeEntry{}, ErrActiveEntryExists
		}
		log.Err(err).Str("func", "*timeEntryRepository.CreateEntry").Msg("error inserting time entry")
		return models.TimeEntry{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	entry.Status = models.StatusClockedIn
	return entry, nil
}

func (r *timeEntryRepository) FindActiveEntry(ctx context.Context, username string) (models.TimeEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindActiveEntryQuery(r.db.builder, username)
	if err != nil {
		return models.TimeEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	entry, err := scanTimeEntry(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.TimeEntry{}, ErrEntryNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*timeEntryRepository.FindActiveEntry").Msg("error querying active entry")
		return models.TimeEntry{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return entry, nil
}

// UpdateEntry writes the clock-out fields with a conditional UPDATE. Zero
// affected rows means another request closed the entry first.
func (r *timeEntryRepository) UpdateEntry(ctx context.Context, entry models.TimeEntry) (models.TimeEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCloseEntryQuery(r.db.builder, entry)
	if err != nil {
		return models.TimeEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*timeEntryRepository.UpdateEntry").Int64("entry_id", entry.EntryID).Msg("error updating time entry")
		return models.TimeEntry{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return models.TimeEntry{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		log.Debug().Str("func", "*timeEntryRepository.UpdateEntry").Int64("entry_id", entry.EntryID).Msg("entry is no longer active")
		return models.TimeEntry{}, ErrEntryNotFound
	}

	entry.Status = models.StatusClockedOut
	return entry, nil
}

func (r *timeEntryRepository) ListEntries(ctx context.Context, filter models.EntryFilter) ([]models.TimeEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListEntriesQuery(r.db.builder, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*timeEntryRepository.ListEntries").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.TimeEntry, 0)
	for rows.Next() {
		entry, scanErr := scanTimeEntry(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*timeEntryRepository.ListEntries").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

func (r *timeEntryRepository) CountEntries(ctx context.Context) (int64, error) {
	query, args, err := buildCountQuery(r.db.builder, timeEntriesTable)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return count(ctx, r.db, query, args)
}

func (r *timeEntryRepository) CountActiveEntries(ctx context.Context) (int64, error) {
	query, args, err := buildCountQuery(r.db.builder, timeEntriesTable, sq.Eq{"status": string(models.StatusClockedIn)})
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return count(ctx, r.db, query, args)
}

func scanTimeEntry(row rowScanner) (models.TimeEntry, error) {
	var (
		entry       models.TimeEntry
		status      string
		clockOut    sql.NullTime
		hoursWorked sql.NullFloat64
	)

	err := row.Scan(
		&entry.EntryID,
		&entry.Username,
		&entry.FirstName,
		&entry.LastName,
		&entry.ClockIn,
		&clockOut,
		&entry.Date,
		&status,
		&hoursWorked,
	)
	if err != nil {
		return models.TimeEntry{}, err
	}

	entry.Status = models.EntryStatus(status)
	if clockOut.Valid {
		t := clockOut.Time
		entry.ClockOut = &t
	}
	if hoursWorked.Valid {
		h := hoursWorked.Float64
		entry.HoursWorked = &h
	}

	return entry, nil
}
