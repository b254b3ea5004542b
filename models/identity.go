// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Identity is the caller as proven by a verified token.
// It is the only source of truth for authorization decisions.
type Identity struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}

// CanView reports whether the identity may read entries of username.
func (i Identity) CanView(username string) bool {
	return i.IsAdmin || i.Username == username
}
