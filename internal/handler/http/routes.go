// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Init builds the router with every /api route and its middleware chain.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{"Authorization", traceIDHeader},
	}))
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.Route("/api", func(r chi.Router) {
		// routes without authorization
		r.Post("/signup", h.signup)
		r.Post("/login", h.login)
		r.Get("/health", h.health)
		r.Get("/version", h.getServerVersion)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Post("/clock", h.clock)
			r.Get("/entries/{username}", h.entriesFor)

			r.Group(func(r chi.Router) {
				r.Use(h.adminOnly)
				r.Get("/entries", h.entries)
				r.Get("/users", h.users)
				r.Get("/stats", h.stats)
			})
		})
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	return router
}
