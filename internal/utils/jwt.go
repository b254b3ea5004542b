// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-time-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT carrying identity.
//
// Besides the username and isAdmin claims the token includes:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the username
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now plus tokenDuration
//
// Returns an error if issuer, username, tokenDuration or signKey are empty
// or zero.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("go-time-keeper", identity, 24*time.Hour, "secret", time.Now())
func GenerateJWTToken(issuer string, identity models.Identity, tokenDuration time.Duration, signKey string, now time.Time) (models.Token, error) {
	if issuer == "" || identity.Username == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	claims := &models.Claims{
		Username: identity.Username,
		IsAdmin:  identity.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   identity.Username,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Token: token, Claims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken validates tokenString and extracts its claims.
//
// Validation includes the HS256 signature, the issuer, the expiry and the
// presence of the username claim. Tokens signed with any other algorithm are
// rejected.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Username == "" {
		return models.Token{}, errors.New("empty username claim")
	}

	return models.Token{Token: token, Claims: claims, SignedString: tokenString}, nil
}

// IsTokenExpired reports whether err comes from an expired token.
func IsTokenExpired(err error) bool {
	return errors.Is(err, jwt.ErrTokenExpired)
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
