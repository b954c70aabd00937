// Copyright (c) 2025 Brewkit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

import (
	"encoding/json"

	"brewkit/cli/internal/keychain"
)

// Keyring is a Store backed by the OS keychain via internal/keychain.
// The cached user snapshot is stored as a JSON blob next to the token.
type Keyring struct {
	km      *keychain.Manager
	anonKey string
}

// NewKeyring creates a keychain-backed store. Fails when no native
// keychain backend is available on this platform.
func NewKeyring(anonKey string) (*Keyring, error) {
	km, err := keychain.GetManager()
	if err != nil {
		return nil, err
	}
	return &Keyring{km: km, anonKey: anonKey}, nil
}

func (k *Keyring) Token() string {
	token, err := k.km.LoadSecret(keychain.KeySessionToken)
	if err != nil || token == "" {
		return k.anonKey
	}
	return token
}

func (k *Keyring) SetToken(token string) error {
	if token == "" {
		return k.km.DeleteSecret(keychain.KeySessionToken)
	}
	return k.km.SaveSecret(keychain.KeySessionToken, token)
}

func (k *Keyring) CachedUser() map[string]any {
	raw, err := k.km.LoadSecret(keychain.KeySessionUser)
	if err != nil || raw == "" {
		return nil
	}
	var user map[string]any
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil
	}
	return user
}

func (k *Keyring) SetCachedUser(user map[string]any) error {
	if user == nil {
		return k.km.DeleteSecret(keychain.KeySessionUser)
	}
	b, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return k.km.SaveSecret(keychain.KeySessionUser, string(b))
}

func (k *Keyring) Clear() error {
	return k.km.ClearAll()
}

// Open returns the best durable Store for this platform: OS keychain when
// available, otherwise the XDG state file, otherwise memory only.
func Open(anonKey string) Store {
	if kr, err := NewKeyring(anonKey); err == nil {
		return kr
	}
	if fs, err := NewFile(anonKey); err == nil {
		return fs
	}
	return NewMemory(anonKey)
}
