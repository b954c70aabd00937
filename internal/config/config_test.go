// Copyright (c) 2025 Brewkit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package config

import (
	"testing"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.BaseURL != "" || c.AnonKey != "" {
		t.Errorf("unexpected defaults: %+v", c)
	}
	if c.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", c.LogLevel)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	in := Config{BaseURL: "https://radb.example.com/api/v1", AnonKey: "anon-key", LogLevel: "debug"}
	if err := Save(in); err != nil {
		t.Fatalf("Save: %v", err)
	}
	out, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out != in {
		t.Errorf("Load() = %+v, want %+v", out, in)
	}
}

func TestResolveEnvOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if err := Save(Config{BaseURL: "https://stored.example.com", AnonKey: "stored-key"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	t.Setenv(EnvBaseURL, "https://env.example.com/api/v1/")
	t.Setenv(EnvAnonKey, "env-key")

	c, err := Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if c.BaseURL != "https://env.example.com/api/v1" {
		t.Errorf("BaseURL = %q, want env value with trailing slash trimmed", c.BaseURL)
	}
	if c.AnonKey != "env-key" {
		t.Errorf("AnonKey = %q, want env value", c.AnonKey)
	}
}

func TestResolveFileValuesWithoutEnv(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvBaseURL, "")
	t.Setenv(EnvAnonKey, "")

	if err := Save(Config{BaseURL: "https://stored.example.com/", AnonKey: "stored-key"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	c, err := Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if c.BaseURL != "https://stored.example.com" {
		t.Errorf("BaseURL = %q", c.BaseURL)
	}
	if c.AnonKey != "stored-key" {
		t.Errorf("AnonKey = %q", c.AnonKey)
	}
}

func TestServiceKeyFromEnvOnly(t *testing.T) {
	t.Setenv(EnvServiceKey, "  service-secret  ")
	if got := ServiceKey(); got != "service-secret" {
		t.Errorf("ServiceKey() = %q", got)
	}

	t.Setenv(EnvServiceKey, "")
	if got := ServiceKey(); got != "" {
		t.Errorf("ServiceKey() = %q, want empty", got)
	}
}
