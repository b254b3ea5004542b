// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-time-keeper/internal/app"
	"github.com/MKhiriev/go-time-keeper/internal/utils"
)

// clock toggles the caller between clocked in and clocked out. The username
// comes from the verified token only; the request body is ignored.
func (h *Handler) clock(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrMissingIdentity, "", nil)
		return
	}

	result, err := h.services.AttendanceService.Toggle(r.Context(), identity)
	if err != nil {
		writeError(w, r, err, app.MsgErrorProcessingClock, nil)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
