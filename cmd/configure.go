// Copyright (c) 2025 Brewkit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"strings"

	"brewkit/cli/internal/config"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	configureBaseURL string
	configureAnonKey string
)

// configureCmd stores the backend connection settings in the XDG config file.
// Only non-secret settings are written; the service-role key stays in the
// environment.
var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Store the RaDB backend URL and anonymous key",
	Long: `The configure command saves the backend base URL and the anonymous API key
to the local config file, so subsequent commands don't need environment
variables.

The privileged service-role key is intentionally never stored here; export
` + config.EnvServiceKey + ` in trusted environments instead.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		if configureBaseURL != "" {
			cfg.BaseURL = strings.TrimRight(strings.TrimSpace(configureBaseURL), "/")
		}
		if configureAnonKey != "" {
			cfg.AnonKey = strings.TrimSpace(configureAnonKey)
		}

		if cfg.BaseURL == "" {
			return fmt.Errorf("no base URL provided; pass --url")
		}

		if err := config.Save(cfg); err != nil {
			return err
		}

		pterm.Success.Println("Configuration saved")
		pterm.Printf("  Backend: %s\n", cfg.BaseURL)
		return nil
	},
}

func init() {
	configureCmd.Flags().StringVar(&configureBaseURL, "url", "", "Backend base URL (e.g. https://radb.example.com/api/v1)")
	configureCmd.Flags().StringVar(&configureAnonKey, "anon-key", "", "Anonymous API key")
	rootCmd.AddCommand(configureCmd)
}
