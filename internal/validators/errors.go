// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyFirstName = errors.New("first name is required")
	ErrEmptyLastName  = errors.New("last name is required")
	ErrEmptyEmail     = errors.New("email is required")
	ErrEmptyUsername  = errors.New("username is required")
	ErrEmptyPassword  = errors.New("password is required")

	ErrPasswordTooLong = errors.New("password is longer than 72 bytes")
)
