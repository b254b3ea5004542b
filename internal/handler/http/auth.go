// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-time-keeper/internal/app"
	"github.com/MKhiriev/go-time-keeper/internal/logger"
	"github.com/MKhiriev/go-time-keeper/internal/service"
	"github.com/MKhiriev/go-time-keeper/internal/utils"
	"github.com/MKhiriev/go-time-keeper/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "", nil)
		return
	}

	user, err := h.services.AuthService.Signup(ctx, req)
	if err != nil {
		writeError(w, r, err, app.MsgErrorCreatingAccount, errorMessages{
			service.ErrInvalidDataProvided: app.MsgAllFieldsRequired,
		})
		return
	}

	log.Info().Int64("id", user.UserID).Str("username", user.Username).Msg("account created")
	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgAccountCreated}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "", nil)
		return
	}

	token, user, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, err, app.MsgErrorLoggingIn, errorMessages{
			service.ErrInvalidDataProvided: app.MsgCredentialsRequired,
		})
		return
	}

	log.Debug().Int64("id", user.UserID).Str("username", user.Username).Msg("user successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.LoginResponse{Token: token.SignedString, User: user.Summary()}, http.StatusOK)
}
