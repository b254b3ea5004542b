// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-time-keeper/internal/service"
	"github.com/MKhiriev/go-time-keeper/internal/utils"
	"github.com/MKhiriev/go-time-keeper/models"
)

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/clock", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	rr := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rr, req)
	return rr
}

func TestAuth_Middleware(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		setup      func(m testMocks)
		wantStatus int
		wantError  string
		wantNext   bool
	}{
		{
			name:       "missing header",
			header:     "",
			setup:      func(m testMocks) {},
			wantStatus: http.StatusUnauthorized,
			wantError:  "Access denied",
		},
		{
			name:       "not a bearer header",
			header:     "Basic dXNlcjpwYXNz",
			setup:      func(m testMocks) {},
			wantStatus: http.StatusUnauthorized,
			wantError:  "Access denied",
		},
		{
			name:       "bearer without token",
			header:     "Bearer ",
			setup:      func(m testMocks) {},
			wantStatus: http.StatusUnauthorized,
			wantError:  "Access denied",
		},
		{
			name:   "expired or forged token",
			header: "Bearer forged",
			setup: func(m testMocks) {
				m.auth.EXPECT().ParseToken(gomock.Any(), "forged").Return(models.Identity{}, service.ErrTokenIsExpiredOrInvalid)
			},
			wantStatus: http.StatusForbidden,
			wantError:  "Invalid token",
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setup: func(m testMocks) {
				m.auth.EXPECT().ParseToken(gomock.Any(), "good").Return(employeeIdentity, nil)
			},
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			tt.setup(m)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			rr := executeAuth(h, tt.header, next)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, decodeError(t, rr))
			}
		})
	}
}

func TestAuth_IdentityInContext(t *testing.T) {
	h, m := newTestHandler(t)
	m.auth.EXPECT().ParseToken(gomock.Any(), "good").Return(adminIdentity, nil)

	var got models.Identity
	var ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = utils.GetIdentityFromContext(r.Context())
	})

	executeAuth(h, "Bearer good", next)

	require.True(t, ok)
	assert.Equal(t, adminIdentity, got)
}

func TestAuth_ConcurrentRequests(t *testing.T) {
	h, m := newTestHandler(t)
	m.auth.EXPECT().ParseToken(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, token string) (models.Identity, error) {
			return models.Identity{Username: token}, nil
		}).Times(20)

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			want := string(rune('a' + i))
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				identity, _ := utils.GetIdentityFromContext(r.Context())
				assert.Equal(t, want, identity.Username)
			})
			rr := executeAuth(h, "Bearer "+want, next)
			assert.Equal(t, http.StatusOK, rr.Code)
		}()
	}
	wg.Wait()
}

func TestAdminOnly(t *testing.T) {
	tests := []struct {
		name       string
		identity   *models.Identity
		wantStatus int
		wantNext   bool
	}{
		{name: "admin passes", identity: &adminIdentity, wantStatus: http.StatusOK, wantNext: true},
		{name: "employee rejected", identity: &employeeIdentity, wantStatus: http.StatusForbidden},
		{name: "no identity", identity: nil, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
			})

			req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
			if tt.identity != nil {
				req = req.WithContext(utils.WithIdentity(req.Context(), *tt.identity))
			}
			rr := httptest.NewRecorder()

			h.adminOnly(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
		})
	}
}
