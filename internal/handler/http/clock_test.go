// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-time-keeper/internal/service"
	"github.com/MKhiriev/go-time-keeper/internal/store"
	"github.com/MKhiriev/go-time-keeper/models"
)

func TestClock(t *testing.T) {
	identity := models.Identity{Username: "ada"}
	clockIn := time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC)

	t.Run("clock in", func(t *testing.T) {
		h, m := newTestHandler(t)
		entry := models.NewActiveEntry(models.User{Username: "ada", FirstName: "Ada", LastName: "Lovelace"}, clockIn)
		entry.EntryID = 3

		m.auth.EXPECT().ParseToken(gomock.Any(), "tok").Return(identity, nil)
		m.attendance.EXPECT().Toggle(gomock.Any(), identity).Return(models.ClockResult{
			Action:  models.ActionClockIn,
			Entry:   entry,
			Message: "Clocked In Successfully!\nAda Lovelace",
		}, nil)

		rr := serve(h, http.MethodPost, "/api/clock", "", bearer("tok"))

		require.Equal(t, http.StatusOK, rr.Code)

		var res models.ClockResult
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
		assert.Equal(t, models.ActionClockIn, res.Action)
		assert.Equal(t, int64(3), res.Entry.EntryID)
		assert.Equal(t, models.StatusClockedIn, res.Entry.Status)
		assert.Equal(t, "Oct 19, 2026", res.Entry.Date)
		assert.Nil(t, res.Entry.ClockOut)
		assert.NotContains(t, rr.Body.String(), "hoursWorked")
	})

	t.Run("body username is ignored", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.auth.EXPECT().ParseToken(gomock.Any(), "tok").Return(identity, nil)
		m.attendance.EXPECT().Toggle(gomock.Any(), identity).Return(models.ClockResult{Action: models.ActionClockOut}, nil)

		rr := serve(h, http.MethodPost, "/api/clock", `{"username":"mallory"}`, bearer("tok"))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"unknown user", fmt.Errorf("toggle: %w", store.ErrUserNotFound), http.StatusNotFound, "User not found"},
		{"lost race", fmt.Errorf("toggle: %w", service.ErrClockConflict), http.StatusConflict, "Clock state changed by another request, please retry"},
		{"storage failure", errors.New("disk full"), http.StatusInternalServerError, "Error processing clock action"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.auth.EXPECT().ParseToken(gomock.Any(), "tok").Return(identity, nil)
			m.attendance.EXPECT().Toggle(gomock.Any(), identity).Return(models.ClockResult{}, tt.err)

			rr := serve(h, http.MethodPost, "/api/clock", "", bearer("tok"))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantError, decodeError(t, rr))
		})
	}

	t.Run("without token", func(t *testing.T) {
		h, _ := newTestHandler(t)

		rr := serve(h, http.MethodPost, "/api/clock", "", nil)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "Access denied", decodeError(t, rr))
	})

	t.Run("handler without identity", func(t *testing.T) {
		h, _ := newTestHandler(t)
		rr := httptest.NewRecorder()

		h.clock(rr, httptest.NewRequest(http.MethodPost, "/api/clock", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
