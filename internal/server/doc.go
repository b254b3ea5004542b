// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the HTTP server.
//
// It owns the server lifecycle: startup, waiting for a termination signal
// and graceful shutdown within a bounded grace period.
package server
