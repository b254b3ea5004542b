// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	ErrUnknownCommand  = errors.New("unknown command")
	ErrMissingArgument = errors.New("missing argument")
	ErrNoSession       = errors.New("no saved session, run `timekeeper login` first")
	ErrNoUI            = errors.New("interactive ui is not available")
)
