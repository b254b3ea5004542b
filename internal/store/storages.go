// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-time-keeper/internal/config"
	"github.com/MKhiriev/go-time-keeper/internal/logger"
)

// Storages groups every repository over one database handle.
type Storages struct {
	UserRepository      UserRepository
	TimeEntryRepository TimeEntryRepository

	db *DB
}

// NewStorages connects to the database named by cfg, applies migrations and
// builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Str("dialect", db.Dialect()).Msg("error applying migrations")
		db.Close()
		return nil, err
	}
	log.Info().Str("func", "NewStorages").Str("dialect", db.Dialect()).Msg("database schema is up to date")

	return NewStoragesFromDB(db, log), nil
}

// NewStoragesFromDB builds the repositories over an already migrated db.
func NewStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:      NewUserRepository(db, log),
		TimeEntryRepository: NewTimeEntryRepository(db, log),
		db:                  db,
	}
}

// Close releases the database handle.
func (s *Storages) Close() error {
	return s.db.Close()
}
