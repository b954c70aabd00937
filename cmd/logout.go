// Copyright (c) 2025 Brewkit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"brewkit/cli/internal/keychain"
	"brewkit/cli/internal/session"

	"github.com/spf13/cobra"
)

// logoutCmd represents the logout command for clearing authentication state.
// Sign-out is purely local: the backend keeps no server-side session, so
// clearing the stored token is all there is to do.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the saved session token and cached identity",
	Long: `The logout command clears all authentication state from the local system.

This command removes:
- The session token from the OS keychain (or the session state file)
- The cached user identity

It always succeeds, even when no session was stored.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		// Clear whichever store holds the session, then sweep the keychain
		// directly in case a previous run used a different backend.
		_ = session.Open("").Clear()
		if km, err := keychain.GetManager(); err == nil {
			_ = km.ClearAll()
		}

		fmt.Println("✅ Session token and cached identity have been removed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
