// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT payload issued on login.
//
// Username and IsAdmin are the identity; the embedded registered claims carry
// issuer, subject (the username), issued-at and expiry.
type Claims struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`

	jwt.RegisteredClaims
}

// Identity returns the verified identity carried by the claims.
func (c *Claims) Identity() Identity {
	return Identity{Username: c.Username, IsAdmin: c.IsAdmin}
}

// Token wraps a signed JWT together with its decoded claims.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// Claims is the decoded payload.
	Claims *Claims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
