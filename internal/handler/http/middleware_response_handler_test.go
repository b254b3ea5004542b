// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseWriter_InitialState(t *testing.T) {
	w := newResponseWriter(httptest.NewRecorder())

	assert.Equal(t, http.StatusOK, w.status)
	assert.False(t, w.wroteHeader)
	assert.Zero(t, w.size)
}

func TestResponseWriter_WriteHeader(t *testing.T) {
	tests := []struct {
		name  string
		codes []int
		want  int
	}{
		{name: "single code", codes: []int{http.StatusCreated}, want: http.StatusCreated},
		{name: "second call ignored", codes: []int{http.StatusConflict, http.StatusOK}, want: http.StatusConflict},
		{name: "error code", codes: []int{http.StatusInternalServerError}, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := newResponseWriter(rr)

			for _, code := range tt.codes {
				w.WriteHeader(code)
			}

			assert.Equal(t, tt.want, w.status)
			assert.Equal(t, tt.want, rr.Code)
		})
	}
}

func TestResponseWriter_Write(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	n, err := w.Write([]byte("hello "))
	assert.NoError(t, err)
	assert.Equal(t, 6, n)
	w.Write([]byte("world"))
	w.Write(nil)

	assert.True(t, w.wroteHeader)
	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, 11, w.size)
	assert.Equal(t, "hello world", rr.Body.String())
}

func TestResponseWriter_WriteAfterHeader(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(`{"error":"Not found"}`))

	assert.Equal(t, http.StatusNotFound, w.status)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestResponseWriter_HeadersAndUnwrap(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	w.Header().Set("X-Trace-ID", "abc")

	assert.Equal(t, "abc", rr.Header().Get("X-Trace-ID"))
	assert.Same(t, rr, w.Unwrap())
}
