// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// session is what the client remembers between invocations.
type session struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}

type sessionStore struct {
	path string
}

func newSessionStore(path string) *sessionStore {
	return &sessionStore{path: path}
}

// Load returns ErrNoSession when nothing was saved yet.
func (s *sessionStore) Load() (session, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return session{}, ErrNoSession
	}
	if err != nil {
		return session{}, fmt.Errorf("read session file: %w", err)
	}

	var sess session
	if err = json.Unmarshal(data, &sess); err != nil {
		return session{}, fmt.Errorf("decode session file: %w", err)
	}
	if sess.Token == "" {
		return session{}, ErrNoSession
	}

	return sess, nil
}

// Save writes the session readable by the current user only.
func (s *sessionStore) Save(sess session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err = os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

func (s *sessionStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
