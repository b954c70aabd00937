// Copyright (c) 2025 Brewkit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"brewkit/cli/internal/xdg"
)

// fileState is the on-disk layout of the session file.
type fileState struct {
	Token string         `json:"token,omitempty"`
	User  map[string]any `json:"user,omitempty"`
}

// File is a Store backed by a JSON file in the XDG state directory.
// Used on platforms without a native keychain.
type File struct {
	mu      sync.Mutex
	path    string
	anonKey string
}

// NewFile creates a file-backed store at the default XDG state path.
func NewFile(anonKey string) (*File, error) {
	dir, err := xdg.StateDir()
	if err != nil {
		return nil, err
	}
	return &File{path: filepath.Join(dir, "session.json"), anonKey: anonKey}, nil
}

// load reads the session file. Missing file yields zero state.
func (f *File) load() fileState {
	var st fileState
	data, err := os.ReadFile(f.path)
	if err != nil {
		return st
	}
	// Corrupt state is treated as absent rather than fatal.
	_ = json.Unmarshal(data, &st)
	return st
}

// save writes the session file with 0600 permissions.
func (f *File) save(st fileState) error {
	if st.Token == "" && st.User == nil {
		err := os.Remove(f.path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		return nil
	}
	b, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, b, 0o600)
}

func (f *File) Token() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if st := f.load(); st.Token != "" {
		return st.Token
	}
	return f.anonKey
}

func (f *File) SetToken(token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	st := f.load()
	st.Token = token
	return f.save(st)
}

func (f *File) CachedUser() map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.load().User
}

func (f *File) SetCachedUser(user map[string]any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	st := f.load()
	st.User = user
	return f.save(st)
}

func (f *File) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.save(fileState{})
}
