// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-time-keeper/internal/logger"
	"github.com/MKhiriev/go-time-keeper/models"
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts user and returns it with the generated UserID.
//
// A unique violation on username or email maps to [ErrUserAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUserQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.UserID); err != nil {
		if isUniqueViolation(err) {
			log.Debug().Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("user already exists")
			return models.User{}, ErrUserAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// FindUserByUsername returns the user with the given username or
// [ErrUserNotFound].
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	query, args, err := buildFindUserByUsernameQuery(r.db.builder, username)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, "*userRepository.FindUserByUsername", query, args)
}

// FindUserByUsernameOrEmail returns a user holding either the username or the
// email, or [ErrUserNotFound].
func (r *userRepository) FindUserByUsernameOrEmail(ctx context.Context, username, email string) (models.User, error) {
	query, args, err := buildFindUserByUsernameOrEmailQuery(r.db.builder, username, email)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, "*userRepository.FindUserByUsernameOrEmail", query, args)
}

func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUsersQuery(r.db.builder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, scanErr := scanUser(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*userRepository.ListUsers").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		users = append(users, user)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

func (r *userRepository) CountUsers(ctx context.Context) (int64, error) {
	query, args, err := buildCountQuery(r.db.builder, usersTable)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return count(ctx, r.db, query, args)
}

func (r *userRepository) findOne(ctx context.Context, funcName, query string, args []any) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error querying user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.UserID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.Username,
		&user.Password,
		&user.IsAdmin,
		&user.CreatedAt,
	)

	return user, err
}

// count runs a single-value COUNT query.
func count(ctx context.Context, db *DB, query string, args []any) (int64, error) {
	var n int64
	if err := db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "store.count").Msg("error executing count query")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return n, nil
}
