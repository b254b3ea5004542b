// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-time-keeper/internal/logger"
	"github.com/MKhiriev/go-time-keeper/internal/service"
	"github.com/MKhiriev/go-time-keeper/internal/utils"
)

// auth verifies the bearer token and stores the caller's identity in the
// request context.
//
// A missing or malformed header is answered with 401, a token that fails
// verification with 403.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader, "", nil)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err), "", nil)
			return
		}

		ctx := r.Context()
		identity, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err, "", nil)
			return
		}

		logger.FromRequest(r).Debug().Str("username", identity.Username).Bool("is_admin", identity.IsAdmin).Msg("request authenticated")

		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(ctx, identity)))
	})
}

// adminOnly rejects callers without the admin flag. It must run after auth.
func (h *Handler) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := utils.GetIdentityFromContext(r.Context())
		if !ok {
			writeError(w, r, ErrMissingIdentity, "", nil)
			return
		}
		if !identity.IsAdmin {
			writeError(w, r, service.ErrAdminAccessRequired, "", nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}
