// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestInit_ProtectedRoutesRequireToken(t *testing.T) {
	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/clock"},
		{http.MethodGet, "/api/entries"},
		{http.MethodGet, "/api/entries/ada"},
		{http.MethodGet, "/api/users"},
		{http.MethodGet, "/api/stats"},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			h, _ := newTestHandler(t)

			rr := serve(h, route.method, route.path, "", nil)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, "Access denied", decodeError(t, rr))
		})
	}
}

func TestInit_UnknownRoutesReturnJSON404(t *testing.T) {
	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/"},
		{http.MethodGet, "/api"},
		{http.MethodGet, "/api/unknown"},
		{http.MethodPost, "/api/entries/ada/extra"},
		{http.MethodGet, "/signup"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			h, _ := newTestHandler(t)

			rr := serve(h, tt.method, tt.path, "", nil)

			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.Equal(t, "Not found", decodeError(t, rr))
		})
	}
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/signup"},
		{http.MethodGet, "/api/login"},
		{http.MethodGet, "/api/clock"},
		{http.MethodPost, "/api/health"},
		{http.MethodDelete, "/api/users"},
		{http.MethodPut, "/api/version"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			h, _ := newTestHandler(t)

			rr := serve(h, tt.method, tt.path, "", nil)

			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.Equal(t, "Not found", decodeError(t, rr))
		})
	}
}

func TestInit_TraceIDHeader(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := serve(h, http.MethodGet, "/api/health", "", map[string]string{traceIDHeader: "req-42"})
	assert.Equal(t, "req-42", rr.Header().Get(traceIDHeader))

	rr = serve(h, http.MethodGet, "/api/missing", "", nil)
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestInit_CORS(t *testing.T) {
	t.Run("preflight", func(t *testing.T) {
		h, _ := newTestHandler(t)

		rr := serve(h, http.MethodOptions, "/api/login", "", map[string]string{
			"Origin":                         "http://localhost:5173",
			"Access-Control-Request-Method":  http.MethodPost,
			"Access-Control-Request-Headers": "Content-Type",
		})

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	})

	t.Run("simple request", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v1.0.0")

		rr := serve(h, http.MethodGet, "/api/version", "", map[string]string{"Origin": "http://localhost:5173"})

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestInit_RecoversFromPanics(t *testing.T) {
	h, m := newTestHandler(t)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).DoAndReturn(func(any) string {
		panic("boom")
	})

	rr := serve(h, http.MethodGet, "/api/version", "", nil)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
