// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret settings are kept here; secrets go to OS keychain.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"brewkit/cli/internal/xdg"
)

// Environment variables recognized by the CLI. The names match the ones the
// web frontend reads so one .env can drive both.
const (
	EnvBaseURL    = "RADB_URL"
	EnvAnonKey    = "RADB_ANON_KEY"
	EnvServiceKey = "RADB_SERVICE_ROLE_KEY"
)

// Config holds non-sensitive CLI settings.
type Config struct {
	BaseURL  string `json:"base_url"`
	AnonKey  string `json:"anon_key"`
	LogLevel string `json:"log_level"`
}

// path returns the path to the config file.
func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads configuration; missing file returns defaults.
func Load() (Config, error) {
	var c Config
	p, err := path()
	if err != nil {
		return c, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			c.LogLevel = "info"
			return c, nil
		}
		return c, err
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, err
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	return c, nil
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}

// Resolve loads the config file and applies environment overrides.
// Environment variables always win over the stored file so CI and scripts
// can point at another backend without touching the user's config.
func Resolve() (Config, error) {
	c, err := Load()
	if err != nil {
		return c, err
	}
	if v := strings.TrimSpace(os.Getenv(EnvBaseURL)); v != "" {
		c.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvAnonKey)); v != "" {
		c.AnonKey = v
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	return c, nil
}

// ServiceKey returns the privileged service-role key from the environment.
// The service key is never written to the config file; it belongs to trusted
// server-side contexts only.
func ServiceKey() string {
	return strings.TrimSpace(os.Getenv(EnvServiceKey))
}
