// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the timekeeper command-line client.
//
// Each invocation runs one subcommand against the server through
// [adapter.ServerAdapter]. The token of the last login is kept in a session
// file so later commands run authenticated. Listings are rendered as
// lipgloss tables; the "ui" subcommand hands over to the interactive
// terminal UI.
package client
