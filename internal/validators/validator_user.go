// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-time-keeper/models"
)

// Field names accepted by [UserValidator.Validate].
const (
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldEmail     = "email"
	FieldUsername  = "username"
	FieldPassword  = "password"
)

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// UserValidator checks account input: signup and login requests and the
// admin bootstrap settings. A value made only of whitespace counts as blank.
type UserValidator struct {
}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignupRequest:
		return v.validateSignupRequest(ctx, value, fields...)
	case *models.SignupRequest:
		return v.validateSignupRequest(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)

	case models.AdminBootstrap:
		return v.validateAdminBootstrap(ctx, value, fields...)
	case *models.AdminBootstrap:
		return v.validateAdminBootstrap(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateSignupRequest(_ context.Context, req models.SignupRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFirstName, FieldLastName, FieldEmail, FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldFirstName:
			if isBlank(req.FirstName) {
				return ErrEmptyFirstName
			}
		case FieldLastName:
			if isBlank(req.LastName) {
				return ErrEmptyLastName
			}
		case FieldEmail:
			if isBlank(req.Email) {
				return ErrEmptyEmail
			}
		case FieldUsername:
			if isBlank(req.Username) {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if isBlank(req.Password) {
				return ErrEmptyPassword
			}
			if len(req.Password) > MaxPasswordBytes {
				return ErrPasswordTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateLoginRequest(_ context.Context, req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if isBlank(req.Username) {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if isBlank(req.Password) {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateAdminBootstrap(_ context.Context, admin models.AdminBootstrap, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if isBlank(admin.Username) {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if isBlank(admin.Password) {
				return ErrEmptyPassword
			}
			if len(admin.Password) > MaxPasswordBytes {
				return ErrPasswordTooLong
			}
		case FieldEmail:
			if isBlank(admin.Email) {
				return ErrEmptyEmail
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
