// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-time-keeper/models"
)

// mapHTTPError turns a non-2xx response into a sentinel error wrapping the
// server's message.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := errorMessage(resp)

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, message)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, message)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, message)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, message)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), message)
	}
}

// errorMessage prefers the "error" field of a JSON body and falls back to the
// raw body or the status text.
func errorMessage(resp *resty.Response) string {
	body := strings.TrimSpace(string(resp.Body()))

	var errResp models.ErrorResponse
	if err := json.Unmarshal([]byte(body), &errResp); err == nil && errResp.Error != "" {
		return errResp.Error
	}
	if body == "" {
		return http.StatusText(resp.StatusCode())
	}
	return body
}
