// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the "Bearer <token>" form.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrMissingIdentity is returned when a protected handler runs without
	// the identity the auth middleware stores in the request context.
	ErrMissingIdentity = errors.New("no identity in request context")

	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrRouteNotFound is returned for unknown paths and unregistered methods.
	ErrRouteNotFound = errors.New("route not found")
)
