// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-time-keeper/internal/config"
	"github.com/MKhiriev/go-time-keeper/internal/logger"
	"github.com/MKhiriev/go-time-keeper/internal/utils"
	"github.com/MKhiriev/go-time-keeper/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP/REST implementation of
// [ServerAdapter] for the server at cfg.HTTPAddress.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Signup(ctx context.Context, req models.SignupRequest) error {
	resp, err := h.request(ctx).
		SetBody(req).
		Post("/api/signup")
	if err != nil {
		return fmt.Errorf("signup request: %w", err)
	}

	return mapHTTPError(resp)
}

// Login posts the credentials and stores the token from the response body.
// The Authorization response header is used when the body has none.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var result models.LoginResponse

	resp, err := h.request(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/api/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	if result.Token == "" {
		token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
		if err != nil {
			return models.LoginResponse{}, fmt.Errorf("login parse bearer token: %w", err)
		}
		result.Token = token
	}

	h.SetToken(result.Token)
	h.logger.Debug().Str("username", result.User.Username).Msg("logged in")

	return result, nil
}

func (h *httpServerAdapter) Clock(ctx context.Context) (models.ClockResult, error) {
	var result models.ClockResult
	err := h.authed(ctx, "clock", func(r *resty.Request) (*resty.Response, error) {
		return r.SetResult(&result).Post("/api/clock")
	})
	return result, err
}

func (h *httpServerAdapter) Entries(ctx context.Context) ([]models.TimeEntry, error) {
	var entries []models.TimeEntry
	err := h.authed(ctx, "entries", func(r *resty.Request) (*resty.Response, error) {
		return r.SetResult(&entries).Get("/api/entries")
	})
	return entries, err
}

func (h *httpServerAdapter) EntriesFor(ctx context.Context, username string) ([]models.TimeEntry, error) {
	var entries []models.TimeEntry
	err := h.authed(ctx, "user entries", func(r *resty.Request) (*resty.Response, error) {
		return r.SetResult(&entries).
			SetPathParam("username", username).
			Get("/api/entries/{username}")
	})
	return entries, err
}

func (h *httpServerAdapter) Users(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := h.authed(ctx, "users", func(r *resty.Request) (*resty.Response, error) {
		return r.SetResult(&users).Get("/api/users")
	})
	return users, err
}

func (h *httpServerAdapter) Stats(ctx context.Context) (models.Stats, error) {
	var stats models.Stats
	err := h.authed(ctx, "stats", func(r *resty.Request) (*resty.Response, error) {
		return r.SetResult(&stats).Get("/api/stats")
	})
	return stats, err
}

func (h *httpServerAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	var health models.HealthResponse

	resp, err := h.request(ctx).SetResult(&health).Get("/api/health")
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}

	return health, mapHTTPError(resp)
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.request(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
}

// authed runs send with the bearer token attached and maps the response.
func (h *httpServerAdapter) authed(ctx context.Context, name string, send func(*resty.Request) (*resty.Response, error)) error {
	token := h.Token()
	if token == "" {
		return ErrNotLoggedIn
	}

	resp, err := send(h.request(ctx).SetAuthToken(token))
	if err != nil {
		return fmt.Errorf("%s request: %w", name, err)
	}

	return mapHTTPError(resp)
}
