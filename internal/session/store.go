// Copyright (c) 2025 Brewkit
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package session persists the RaDB bearer credential and a cached snapshot of
// the authenticated user identity. The store is the single owner of that slot:
// the auth client writes it, every builder reads it.
//
// Secrets live in the OS keychain where one is available (macOS, Windows);
// elsewhere they fall back to a 0600 JSON file in the XDG state directory.
// An in-memory implementation exists for tests and for the privileged
// service-key mode, where no session is ever persisted.
package session

import (
	"sync"
)

// Store persists a bearer token and a cached user record across process runs.
//
// Reads never fail: Token falls back to the anonymous key the store was
// created with, and CachedUser returns nil when nothing is cached. Writes are
// best-effort against the underlying medium and report their error.
type Store interface {
	// Token returns the persisted session token, or the anonymous key when
	// no session exists.
	Token() string
	// SetToken persists a new session token.
	SetToken(token string) error
	// CachedUser returns the cached user identity snapshot, or nil.
	CachedUser() map[string]any
	// SetCachedUser replaces the cached user snapshot; nil removes it.
	SetCachedUser(user map[string]any) error
	// Clear removes both the token and the cached user. Always succeeds
	// locally; after Clear, Token returns the anonymous key again.
	Clear() error
}

// Memory is an in-memory Store. Safe for concurrent use.
type Memory struct {
	mu      sync.RWMutex
	anonKey string
	token   string
	user    map[string]any
}

// NewMemory creates an in-memory store with the given anonymous fallback key.
func NewMemory(anonKey string) *Memory {
	return &Memory{anonKey: anonKey}
}

func (m *Memory) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.token != "" {
		return m.token
	}
	return m.anonKey
}

func (m *Memory) SetToken(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *Memory) CachedUser() map[string]any {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user
}

func (m *Memory) SetCachedUser(user map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = user
	return nil
}

func (m *Memory) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	m.user = nil
	return nil
}
