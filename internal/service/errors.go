// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid username or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrClockConflict = errors.New("clock state changed concurrently")

	ErrAdminAccessRequired = errors.New("admin access required")
	ErrAccessDenied        = errors.New("access denied")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
