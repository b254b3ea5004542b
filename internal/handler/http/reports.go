// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-time-keeper/internal/app"
	"github.com/MKhiriev/go-time-keeper/internal/utils"
	"github.com/MKhiriev/go-time-keeper/models"
)

func (h *Handler) entries(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrMissingIdentity, "", nil)
		return
	}

	entries, err := h.services.ReportingService.ListAllEntries(r.Context(), identity)
	if err != nil {
		writeError(w, r, err, app.MsgErrorFetchingEntries, nil)
		return
	}

	utils.WriteJSON(w, nonNil(entries), http.StatusOK)
}

func (h *Handler) entriesFor(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrMissingIdentity, "", nil)
		return
	}

	username := chi.URLParam(r, "username")
	entries, err := h.services.ReportingService.ListEntriesFor(r.Context(), identity, username)
	if err != nil {
		writeError(w, r, err, app.MsgErrorFetchingEntries, nil)
		return
	}

	utils.WriteJSON(w, nonNil(entries), http.StatusOK)
}

func (h *Handler) users(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrMissingIdentity, "", nil)
		return
	}

	users, err := h.services.ReportingService.ListUsers(r.Context(), identity)
	if err != nil {
		writeError(w, r, err, app.MsgErrorFetchingUsers, nil)
		return
	}

	utils.WriteJSON(w, nonNil(users), http.StatusOK)
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrMissingIdentity, "", nil)
		return
	}

	stats, err := h.services.ReportingService.Stats(r.Context(), identity)
	if err != nil {
		writeError(w, r, err, app.MsgErrorFetchingStats, nil)
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}

// nonNil makes empty listings encode as [] instead of null.
func nonNil[T models.User | models.TimeEntry](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
