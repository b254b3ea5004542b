// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-time-keeper/internal/config"
	"github.com/MKhiriev/go-time-keeper/internal/logger"
	"github.com/MKhiriev/go-time-keeper/migrations"
)

// DB is a database handle bound to one SQL dialect.
type DB struct {
	*sql.DB
	dialect string
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

func newDB(conn *sql.DB, dialect string, log *logger.Logger) *DB {
	var placeholder sq.PlaceholderFormat = sq.Question
	if dialect == migrations.DialectPostgres {
		placeholder = sq.Dollar
	}

	return &DB{
		DB:      conn,
		dialect: dialect,
		builder: sq.StatementBuilder.PlaceholderFormat(placeholder),
		logger:  log,
	}
}

// NewDB opens the backend selected by the DSN scheme.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch {
	case strings.HasPrefix(cfg.DSN, "postgres://"), strings.HasPrefix(cfg.DSN, "postgresql://"):
		return NewConnectPostgres(ctx, cfg, log)
	case strings.HasPrefix(cfg.DSN, sqliteScheme), strings.HasPrefix(cfg.DSN, "file:"):
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: expected postgres://, sqlite:// or file: scheme", ErrUnsupportedDSN)
	}
}

// Dialect reports the goose dialect of db.
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate applies all pending schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
