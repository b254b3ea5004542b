// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-time-keeper/internal/config"
	"github.com/MKhiriev/go-time-keeper/internal/handler"
	"github.com/MKhiriev/go-time-keeper/internal/logger"
	"github.com/MKhiriev/go-time-keeper/internal/service"
)

func newTestServer(t *testing.T, address string) *server {
	t.Helper()

	cfg := config.Server{HTTPAddress: address}
	handlers, err := handler.NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)

	return srv.(*server)
}

func TestNewServer_NoHandlers(t *testing.T) {
	srv, err := NewServer(nil, config.Server{HTTPAddress: ":3000"}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, srv)

	srv, err = NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())
	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, srv)
}

func TestServer_RunStopsOnContextCancel(t *testing.T) {
	s := newTestServer(t, "127.0.0.1:0")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.run(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_RunReturnsListenError(t *testing.T) {
	s := newTestServer(t, "not-an-address")

	err := s.run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http server")
}
