// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-time-keeper/internal/config"
	"github.com/MKhiriev/go-time-keeper/internal/logger"
	"github.com/MKhiriev/go-time-keeper/internal/mock"
	"github.com/MKhiriev/go-time-keeper/internal/store"
	"github.com/MKhiriev/go-time-keeper/internal/utils"
	"github.com/MKhiriev/go-time-keeper/internal/validators"
	"github.com/MKhiriev/go-time-keeper/models"
)

var testAppConfig = config.App{
	TokenSignKey:     "test-sign-key",
	TokenIssuer:      "go-time-keeper-test",
	TokenDuration:    time.Hour,
	PasswordHashCost: config.DefaultPasswordHashCost,
}

// newTestAuthSvc is a helper building authService over a mocked repository.
func newTestAuthSvc(t *testing.T) (*authService, *mock.MockUserRepository) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	svc := NewAuthService(repo, testAppConfig, logger.Nop()).(*authService)
	return svc, repo
}

func validSignup() models.SignupRequest {
	return models.SignupRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Username:  "ada",
		Password:  "secret",
	}
}

// ─────────────────────────────────────────────
// Signup
// ─────────────────────────────────────────────

func TestSignup_Success_StoresBcryptHash(t *testing.T) {
	svc, repo := newTestAuthSvc(t)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().FindUserByUsernameOrEmail(ctx, "ada", "ada@example.com").Return(models.User{}, store.ErrUserNotFound),
		repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.User, error) {
				assert.NotEqual(t, "secret", u.Password)
				assert.NoError(t, utils.CheckPassword(u.Password, "secret"))
				assert.False(t, u.IsAdmin)
				assert.False(t, u.CreatedAt.IsZero())
				u.UserID = 1
				return u, nil
			}),
	)

	user, err := svc.Signup(ctx, validSignup())
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
	assert.Equal(t, "ada", user.Username)
}

func TestSignup_BlankField_ReturnsInvalidData(t *testing.T) {
	svc, _ := newTestAuthSvc(t)

	req := validSignup()
	req.Email = " "

	_, err := svc.Signup(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestSignup_PasswordTooLong_ReturnsInvalidData(t *testing.T) {
	svc, _ := newTestAuthSvc(t)

	req := validSignup()
	req.Password = strings.Repeat("p", 80)

	_, err := svc.Signup(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrPasswordTooLong)
}

func TestSignup_ExistingUser_ReturnsConflict(t *testing.T) {
	svc, repo := newTestAuthSvc(t)
	ctx := context.Background()

	repo.EXPECT().FindUserByUsernameOrEmail(ctx, "ada", "ada@example.com").Return(models.User{Username: "ada"}, nil)

	_, err := svc.Signup(ctx, validSignup())
	require.ErrorIs(t, err, store.ErrUserAlreadyExists)
}

func TestSignup_UniqueViolationOnInsert_ReturnsConflict(t *testing.T) {
	svc, repo := newTestAuthSvc(t)
	ctx := context.Background()

	repo.EXPECT().FindUserByUsernameOrEmail(ctx, gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUserNotFound)
	repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrUserAlreadyExists)

	_, err := svc.Signup(ctx, validSignup())
	require.ErrorIs(t, err, store.ErrUserAlreadyExists)
}

func TestSignup_LookupFails(t *testing.T) {
	svc, repo := newTestAuthSvc(t)
	ctx := context.Background()

	repo.EXPECT().FindUserByUsernameOrEmail(ctx, gomock.Any(), gomock.Any()).Return(models.User{}, errors.New("db down"))

	_, err := svc.Signup(ctx, validSignup())
	require.Error(t, err)
	assert.NotErrorIs(t, err, store.ErrUserAlreadyExists)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func storedUser(t *testing.T, password string, isAdmin bool) models.User {
	hash, err := utils.HashPassword(password, config.DefaultPasswordHashCost)
	require.NoError(t, err)
	return models.User{UserID: 1, FirstName: "Ada", LastName: "Lovelace", Username: "ada", Password: hash, IsAdmin: isAdmin}
}

func TestLogin_Success_TokenCarriesIdentity(t *testing.T) {
	svc, repo := newTestAuthSvc(t)
	ctx := context.Background()

	repo.EXPECT().FindUserByUsername(ctx, "ada").Return(storedUser(t, "secret", true), nil)

	token, user, err := svc.Login(ctx, models.LoginRequest{Username: "ada", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "ada", user.Username)
	require.NotEmpty(t, token.SignedString)

	identity, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, models.Identity{Username: "ada", IsAdmin: true}, identity)
}

func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		name    string
		req     models.LoginRequest
		setup   func(t *testing.T, repo *mock.MockUserRepository)
		wantErr error
	}{
		{
			name:    "missing password",
			req:     models.LoginRequest{Username: "ada"},
			setup:   func(t *testing.T, repo *mock.MockUserRepository) {},
			wantErr: ErrInvalidDataProvided,
		},
		{
			name: "unknown user",
			req:  models.LoginRequest{Username: "ghost", Password: "secret"},
			setup: func(t *testing.T, repo *mock.MockUserRepository) {
				repo.EXPECT().FindUserByUsername(gomock.Any(), "ghost").Return(models.User{}, store.ErrUserNotFound)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name: "wrong password",
			req:  models.LoginRequest{Username: "ada", Password: "wrong"},
			setup: func(t *testing.T, repo *mock.MockUserRepository) {
				repo.EXPECT().FindUserByUsername(gomock.Any(), "ada").Return(storedUser(t, "secret", false), nil)
			},
			wantErr: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestAuthSvc(t)
			tt.setup(t, repo)

			_, _, err := svc.Login(context.Background(), tt.req)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ─────────────────────────────────────────────
// Tokens
// ─────────────────────────────────────────────

func TestCreateToken_ClaimsAndExpiry(t *testing.T) {
	svc, _ := newTestAuthSvc(t)
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	token, err := svc.CreateToken(context.Background(), models.User{Username: "ada"})
	require.NoError(t, err)

	assert.Equal(t, "ada", token.Claims.Username)
	assert.Equal(t, "ada", token.Claims.Subject)
	assert.False(t, token.Claims.IsAdmin)
	assert.Equal(t, testAppConfig.TokenIssuer, token.Claims.Issuer)
	assert.Equal(t, now.Add(time.Hour), token.Claims.ExpiresAt.Time)
}

func TestCreateToken_EmptyUsername_Fails(t *testing.T) {
	svc, _ := newTestAuthSvc(t)

	_, err := svc.CreateToken(context.Background(), models.User{})
	require.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestParseToken_Rejects(t *testing.T) {
	svc, _ := newTestAuthSvc(t)
	ctx := context.Background()

	expiredSvc, _ := newTestAuthSvc(t)
	expiredSvc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, err := expiredSvc.CreateToken(ctx, models.User{Username: "ada"})
	require.NoError(t, err)

	otherKey := NewAuthService(nil, config.App{TokenSignKey: "other", TokenIssuer: testAppConfig.TokenIssuer, TokenDuration: time.Hour}, logger.Nop())
	forged, err := otherKey.CreateToken(ctx, models.User{Username: "ada", IsAdmin: true})
	require.NoError(t, err)

	for name, tokenString := range map[string]string{
		"garbage":        "not-a-jwt",
		"expired":        expired.SignedString,
		"wrong sign key": forged.SignedString,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ParseToken(ctx, tokenString)
			require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}

// ─────────────────────────────────────────────
// EnsureAdmin
// ─────────────────────────────────────────────

func TestEnsureAdmin_NotConfigured_NoOp(t *testing.T) {
	svc, _ := newTestAuthSvc(t)

	require.NoError(t, svc.EnsureAdmin(context.Background(), models.AdminBootstrap{}))
}

func TestEnsureAdmin_AlreadyExists_NoOp(t *testing.T) {
	svc, repo := newTestAuthSvc(t)
	ctx := context.Background()

	repo.EXPECT().FindUserByUsername(ctx, "root").Return(models.User{Username: "root"}, nil)

	require.NoError(t, svc.EnsureAdmin(ctx, models.AdminBootstrap{Username: "root", Password: "pw"}))
}

func TestEnsureAdmin_CreatesAdmin(t *testing.T) {
	svc, repo := newTestAuthSvc(t)
	ctx := context.Background()

	repo.EXPECT().FindUserByUsername(ctx, "root").Return(models.User{}, store.ErrUserNotFound)
	repo.EXPECT().FindUserByUsernameOrEmail(ctx, "root", "root@localhost").Return(models.User{}, store.ErrUserNotFound)
	repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.True(t, u.IsAdmin)
			assert.Equal(t, "root", u.Username)
			assert.NoError(t, utils.CheckPassword(u.Password, "pw"))
			return u, nil
		})

	require.NoError(t, svc.EnsureAdmin(ctx, models.AdminBootstrap{Username: "root", Password: "pw"}))
}

func TestEnsureAdmin_PasswordTooLong(t *testing.T) {
	svc, _ := newTestAuthSvc(t)

	err := svc.EnsureAdmin(context.Background(), models.AdminBootstrap{Username: "root", Password: strings.Repeat("p", 73)})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrPasswordTooLong)
}

func TestEnsureAdmin_MissingPassword(t *testing.T) {
	svc, _ := newTestAuthSvc(t)

	err := svc.EnsureAdmin(context.Background(), models.AdminBootstrap{Username: "root"})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}
