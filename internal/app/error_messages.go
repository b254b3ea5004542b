// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// time keeper server handlers and middleware.
//
// All Msg* constants are human-readable strings written into HTTP response
// bodies. Clients match on some of them, so the wording is part of the API.
package app

// Messages of mapped errors.
const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidDataProvided is returned when a request fails validation.
	MsgInvalidDataProvided = "Invalid data provided"

	// MsgAllFieldsRequired replaces MsgInvalidDataProvided on signup.
	MsgAllFieldsRequired = "All fields are required"

	// MsgCredentialsRequired replaces MsgInvalidDataProvided on login.
	MsgCredentialsRequired = "Username and password are required"

	// MsgPasswordTooLong is returned when a password exceeds what bcrypt
	// can hash.
	MsgPasswordTooLong = "Password must be at most 72 bytes"

	// MsgUserAlreadyExists is returned when the username or email is taken.
	MsgUserAlreadyExists = "Username or email already exists"

	// MsgInvalidCredentials is returned for an unknown user or a wrong
	// password. Both cases share the text.
	MsgInvalidCredentials = "Invalid username or password"

	// MsgAccessDenied is returned for a missing or malformed bearer token
	// and when an employee asks for another user's entries.
	MsgAccessDenied = "Access denied"

	// MsgInvalidToken is returned when the token is expired or its
	// signature does not verify.
	MsgInvalidToken = "Invalid token"

	// MsgAdminAccessRequired is returned by admin-only endpoints.
	MsgAdminAccessRequired = "Admin access required"

	MsgUserNotFound = "User not found"
	MsgNotFound     = "Not found"

	// MsgClockConflict is returned when a concurrent toggle won the race.
	MsgClockConflict = "Clock state changed by another request, please retry"
)

// Messages of unmapped (500) errors, one per endpoint.
const (
	MsgErrorCreatingAccount = "Error creating account"
	MsgErrorLoggingIn       = "Error logging in"
	MsgErrorProcessingClock = "Error processing clock action"
	MsgErrorFetchingEntries = "Error fetching entries"
	MsgErrorFetchingUsers   = "Error fetching users"
	MsgErrorFetchingStats   = "Error fetching stats"
)

// Success messages.
const (
	MsgAccountCreated  = "Account created successfully"
	MsgServerIsRunning = "Server is running"
)
