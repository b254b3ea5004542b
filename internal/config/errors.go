// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates a missing database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates a missing token sign key or an
	// unusable password hash cost.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidAdminConfigs indicates a half-configured bootstrap admin.
	ErrInvalidAdminConfigs = errors.New("invalid admin configuration")
)
