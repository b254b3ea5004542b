// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-time-keeper/internal/logger"
)

func executeWithTraceID(h *Handler, traceID string) (*httptest.ResponseRecorder, *http.Request) {
	var captured *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		logger.FromRequest(r).Info().Msg("inside")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	if traceID != "" {
		req.Header.Set(traceIDHeader, traceID)
	}

	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)
	return rr, captured
}

func TestWithTraceID_ReusesRequestHeader(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	rr, req := executeWithTraceID(h, "trace-from-client")

	require.NotNil(t, req)
	assert.Equal(t, "trace-from-client", rr.Header().Get(traceIDHeader))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "trace-from-client", entry["trace_id"])
}

func TestWithTraceID_GeneratesUUIDv7(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	rr, _ := executeWithTraceID(h, "")

	id, err := uuid.Parse(rr.Header().Get(traceIDHeader))
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
	assert.Contains(t, buf.String(), id.String())
}

func TestWithTraceID_UniquePerRequest(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	seen := make(map[string]struct{})
	for range 50 {
		rr, _ := executeWithTraceID(h, "")
		seen[rr.Header().Get(traceIDHeader)] = struct{}{}
	}

	assert.Len(t, seen, 50)
}

func TestWithTraceID_ParentLoggerUntouched(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	executeWithTraceID(h, "abc")
	buf.Reset()
	h.logger.Info().Msg("parent")

	assert.NotContains(t, buf.String(), "trace_id")
}

func TestWithTraceID_ConcurrentRequests(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rr, req := executeWithTraceID(h, "")
			assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
			assert.NotNil(t, req)
		}()
	}
	wg.Wait()
}
