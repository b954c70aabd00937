// Copyright (c) 2025 Brewkit
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the brewkit CLI.
// It implements subcommands for authenticating against the RaDB backend,
// seeding the coffee-shop CMS content, uploading assets, and smoke-testing
// the backend, using the Cobra CLI framework.
package cmd

import (
	"fmt"
	"os"

	"brewkit/cli/internal/config"
	"brewkit/cli/internal/radb"
	"brewkit/cli/internal/session"

	"github.com/spf13/cobra"
)

var (
	showVersion bool
	useService  bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "brewkit",
	Short:         "Brewkit CLI for managing the coffee-shop CMS on RaDB",
	Long:          `Brewkit is a command-line tool for the RaDB-backed coffee-shop CMS: it signs in, seeds starter content, uploads assets, and smoke-tests the backend API.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("brewkit %s\n", Version)
			return nil
		}
		// If no flag is set, show help
		return cmd.Help()
	},
}

// Execute runs the CLI application.
// It executes the root command and handles any errors that occur during execution.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show CLI version information")
	rootCmd.PersistentFlags().BoolVar(&useService, "service", false, "Use the privileged service-role key from the environment instead of the session token")
}

// newClient builds a RaDB client from the resolved configuration. With
// --service (or when forceService is true) it uses the service-role key from
// the environment and never touches the persisted session; otherwise it uses
// the anonymous key plus the durable session store.
func newClient(forceService bool) (*radb.Client, error) {
	cfg, err := config.Resolve()
	if err != nil {
		return nil, err
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("no backend configured; set %s or run 'brewkit configure'", config.EnvBaseURL)
	}

	if useService || forceService {
		key := config.ServiceKey()
		if key == "" {
			return nil, fmt.Errorf("service mode requested but %s is not set", config.EnvServiceKey)
		}
		return radb.New(radb.Config{
			BaseURL:     cfg.BaseURL,
			AnonKey:     key,
			WritePrefix: "/api", // privileged deployments route writes here
			Sessions:    session.NewMemory(key),
		}), nil
	}

	if cfg.AnonKey == "" {
		return nil, fmt.Errorf("no API key configured; set %s or run 'brewkit configure'", config.EnvAnonKey)
	}
	return radb.New(radb.Config{
		BaseURL:  cfg.BaseURL,
		AnonKey:  cfg.AnonKey,
		Sessions: session.Open(cfg.AnonKey),
	}), nil
}
