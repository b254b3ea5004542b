// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
)

// notFound answers unknown paths, and known paths requested with an
// unregistered method, with 404 and a JSON body.
func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrRouteNotFound, "", nil)
}
