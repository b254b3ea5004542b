// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the merged and defaulted [StructuredConfig] can run
// the server. The token sign key and the DSN have no defaults on purpose.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}

	if cfg.App.PasswordHashCost < DefaultPasswordHashCost || cfg.App.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: password hash cost must be within [%d, %d]",
			ErrInvalidAppConfigs, DefaultPasswordHashCost, bcrypt.MaxCost)
	}

	if cfg.App.TokenDuration < 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}

	admin := cfg.App.Admin
	if (admin.Username == "") != (admin.Password == "") {
		return fmt.Errorf("%w: admin username and password must be set together", ErrInvalidAdminConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
