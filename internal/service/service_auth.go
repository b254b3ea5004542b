// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-time-keeper/internal/config"
	"github.com/MKhiriev/go-time-keeper/internal/logger"
	"github.com/MKhiriev/go-time-keeper/internal/store"
	"github.com/MKhiriev/go-time-keeper/internal/utils"
	"github.com/MKhiriev/go-time-keeper/internal/validators"
	"github.com/MKhiriev/go-time-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles account creation, credential verification and the JWT token
// lifecycle. Passwords are stored as bcrypt hashes only.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validator rejects blank signup and login fields.
	validator validators.Validator

	// hashCost is the bcrypt work factor for new password hashes.
	hashCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validators.NewUserValidator(),
		hashCost:       cfg.PasswordHashCost,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		now:            time.Now,
		logger:         logger,
	}
}

// Signup creates a regular (non-admin) account.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if any field is blank.
//   - store.ErrUserAlreadyExists if the username or the email is taken.
func (a *authService) Signup(ctx context.Context, req models.SignupRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("username", req.Username).Msg("invalid signup data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user := models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Username:  req.Username,
	}

	return a.createUser(ctx, user, req.Password)
}

// Login verifies the credentials and issues a token for the account.
//
// An unknown username and a wrong password both yield ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.Token, models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Msg("invalid login data provided")
		return models.Token{}, models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := a.userRepository.FindUserByUsername(ctx, req.Username)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Debug().Str("username", req.Username).Msg("login for unknown user")
		return models.Token{}, models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user search by username failed")
		return models.Token{}, models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err = utils.CheckPassword(user.Password, req.Password); err != nil {
		if errors.Is(err, utils.ErrPasswordMismatch) {
			log.Debug().Str("username", req.Username).Msg("wrong password")
			return models.Token{}, models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("username", req.Username).Msg("stored password hash is unusable")
		return models.Token{}, models.User{}, fmt.Errorf("password check failed: %w", err)
	}

	token, err := a.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("token creation failed")
		return models.Token{}, models.User{}, err
	}

	return token, user, nil
}

// CreateToken issues a signed JWT carrying the username and admin flag.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	identity := models.Identity{Username: user.Username, IsAdmin: user.IsAdmin}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, identity, a.tokenDuration, a.tokenSignKey, a.now())
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw JWT string and returns the identity it carries.
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Identity, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Bool("expired", utils.IsTokenExpired(err)).Msg("token rejected")
		return models.Identity{}, ErrTokenIsExpiredOrInvalid
	}

	return token.Claims.Identity(), nil
}

// EnsureAdmin creates the configured administrator when it does not exist
// yet. It does nothing when no admin username is configured or the username
// is already taken.
func (a *authService) EnsureAdmin(ctx context.Context, admin models.AdminBootstrap) error {
	log := logger.FromContext(ctx)

	if admin.Username == "" {
		log.Debug().Msg("no admin account configured")
		return nil
	}
	if err := a.validator.Validate(ctx, admin); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	_, err := a.userRepository.FindUserByUsername(ctx, admin.Username)
	if err == nil {
		log.Info().Str("username", admin.Username).Msg("admin account already exists")
		return nil
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		return fmt.Errorf("admin lookup failed: %w", err)
	}

	email := admin.Email
	if email == "" {
		email = admin.Username + "@localhost"
	}

	user := models.User{
		FirstName: "Admin",
		LastName:  "User",
		Email:     email,
		Username:  admin.Username,
		IsAdmin:   true,
	}
	if _, err = a.createUser(ctx, user, admin.Password); err != nil {
		return err
	}

	log.Info().Str("username", admin.Username).Msg("admin account created")
	return nil
}

// createUser checks for a username or email collision, hashes password and
// persists user. The unique indexes remain the final guard against races.
func (a *authService) createUser(ctx context.Context, user models.User, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	_, err := a.userRepository.FindUserByUsernameOrEmail(ctx, user.Username, user.Email)
	if err == nil {
		log.Debug().Str("username", user.Username).Msg("username or email already taken")
		return models.User{}, store.ErrUserAlreadyExists
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		log.Err(err).Str("username", user.Username).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	user.Password, err = utils.HashPassword(password, a.hashCost)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("password hashing failed")
		return models.User{}, err
	}
	user.CreatedAt = a.now()

	created, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created, nil
}
