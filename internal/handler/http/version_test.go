// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestGetServerVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{name: "semantic version", version: "v1.2.3"},
		{name: "empty version", version: ""},
		{name: "special characters", version: "v1.0.0-beta+build.42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(tt.version)

			rr := serve(h, http.MethodGet, "/api/version", "", nil)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "text/plain", rr.Header().Get("Content-Type"))
			assert.Equal(t, tt.version, rr.Body.String())
		})
	}
}
