// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-time-keeper/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the subcommand named by args[0] and returns when it is done.
	Run(ctx context.Context, args []string) error
}

// UI is an interactive front end. Run blocks until the user quits and
// returns the login made during the run, if any.
type UI interface {
	Run(ctx context.Context) (models.LoginResponse, error)
}
