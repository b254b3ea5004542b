// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantErr     error
		wantMessage string
	}{
		{name: "ok", status: http.StatusOK, body: `{"status":"ok"}`},
		{name: "created", status: http.StatusCreated},
		{name: "bad request", status: http.StatusBadRequest, body: `{"error":"All fields are required"}`, wantErr: ErrBadRequest, wantMessage: "All fields are required"},
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"error":"Access denied"}`, wantErr: ErrUnauthorized, wantMessage: "Access denied"},
		{name: "forbidden", status: http.StatusForbidden, body: `{"error":"Invalid token"}`, wantErr: ErrForbidden, wantMessage: "Invalid token"},
		{name: "not found", status: http.StatusNotFound, body: `{"error":"User not found"}`, wantErr: ErrNotFound, wantMessage: "User not found"},
		{name: "conflict", status: http.StatusConflict, body: `{"error":"retry"}`, wantErr: ErrConflict, wantMessage: "retry"},
		{name: "bad gateway plain body", status: http.StatusBadGateway, body: "upstream down", wantErr: ErrBadGateway, wantMessage: "upstream down"},
		{name: "internal", status: http.StatusInternalServerError, body: `{"error":"Error fetching stats"}`, wantErr: ErrInternalServerError, wantMessage: "Error fetching stats"},
		{name: "unknown status without body", status: http.StatusTeapot, wantMessage: "http 418: I'm a teapot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			resp, err := newTestAdapter(t, srv.URL).client.R().SetContext(context.Background()).Get("/")
			require.NoError(t, err)

			err = mapHTTPError(resp)
			if tt.wantMessage == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Contains(t, err.Error(), tt.wantMessage)
		})
	}
}
