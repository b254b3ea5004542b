// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-time-keeper/internal/app"
	"github.com/MKhiriev/go-time-keeper/internal/logger"
	"github.com/MKhiriev/go-time-keeper/internal/service"
	"github.com/MKhiriev/go-time-keeper/internal/store"
	"github.com/MKhiriev/go-time-keeper/internal/utils"
	"github.com/MKhiriev/go-time-keeper/internal/validators"
	"github.com/MKhiriev/go-time-keeper/models"
)

// errorMapping is one row of the error table: a sentinel, its status code
// and the message shown to the client.
type errorMapping struct {
	target  error
	status  int
	message string
}

// errorTable is matched top to bottom with [errors.Is].
var errorTable = []errorMapping{
	{ErrInvalidJSON, http.StatusBadRequest, app.MsgInvalidJSON},
	{validators.ErrPasswordTooLong, http.StatusBadRequest, app.MsgPasswordTooLong},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{store.ErrUserAlreadyExists, http.StatusBadRequest, app.MsgUserAlreadyExists},
	{service.ErrInvalidCredentials, http.StatusBadRequest, app.MsgInvalidCredentials},

	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, app.MsgAccessDenied},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized, app.MsgAccessDenied},
	{ErrMissingIdentity, http.StatusUnauthorized, app.MsgAccessDenied},

	{service.ErrTokenIsExpiredOrInvalid, http.StatusForbidden, app.MsgInvalidToken},
	{service.ErrAdminAccessRequired, http.StatusForbidden, app.MsgAdminAccessRequired},
	{service.ErrAccessDenied, http.StatusForbidden, app.MsgAccessDenied},

	{store.ErrUserNotFound, http.StatusNotFound, app.MsgUserNotFound},
	{ErrRouteNotFound, http.StatusNotFound, app.MsgNotFound},

	{service.ErrClockConflict, http.StatusConflict, app.MsgClockConflict},
}

// errorMessages overrides the client-facing text of mapped errors for one
// endpoint. Keys are errorTable targets; an override applies only when its
// key is the row that matched.
type errorMessages map[error]string

var unmappedError = errorMapping{
	status:  http.StatusInternalServerError,
	message: http.StatusText(http.StatusInternalServerError),
}

func lookupError(err error) errorMapping {
	for _, m := range errorTable {
		if errors.Is(err, m.target) {
			return m
		}
	}
	return unmappedError
}

// writeError logs err and answers with its mapped status and a JSON body.
// Unmapped errors become 500 with internalMessage, so internal details never
// leave the server.
func writeError(w http.ResponseWriter, r *http.Request, err error, internalMessage string, overrides errorMessages) {
	log := logger.FromRequest(r)

	row := lookupError(err)
	status, message := row.status, row.message
	if text, ok := overrides[row.target]; ok && row.target != nil {
		message = text
	}

	if status == http.StatusInternalServerError {
		log.Err(err).Str("uri", r.RequestURI).Msg("request failed")
		if internalMessage != "" {
			message = internalMessage
		}
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
