// Copyright (c) 2025 Brewkit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"brewkit/cli/internal/errors"
	"brewkit/cli/internal/httperrors"
	"brewkit/cli/internal/radb"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	loginEmail    string
	loginPassword string
	loginSignup   bool
	loginProvider string
)

// loginCmd represents the login command for authenticating against the
// backend. It exchanges email/password credentials for a session token and
// stores it in the session store (OS keychain where available). With
// --provider it instead opens the OAuth authorize page in the browser.
var loginCmd = &cobra.Command{
	Use:     "login",
	Aliases: []string{"auth"},
	Short:   "Sign in to the RaDB backend and store the session token",
	Long: `The login command authenticates against the backend with email and password
and stores the resulting session token securely (OS keychain on macOS and
Windows, a state file elsewhere).

With --signup the command registers a new account first; if the account
already exists the backend signs it in with the same credentials instead.

With --provider the command opens the OAuth authorize page for the named
provider (e.g. google) in the default browser. The web flow completes in the
browser; the CLI does not capture its session.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		client, err := newClient(false)
		if err != nil {
			return err
		}

		if loginProvider != "" {
			authURL := client.Auth().AuthorizeURL(loginProvider, "")
			fmt.Println("Open this link to complete login:")
			fmt.Printf("%s\n\n", authURL)
			openBrowser(authURL)
			return nil
		}

		email := strings.TrimSpace(loginEmail)
		if email == "" {
			email, _ = pterm.DefaultInteractiveTextInput.Show("Email")
			email = strings.TrimSpace(email)
		}
		if email == "" {
			return errors.New(errors.AuthFailed, "email is required")
		}

		password := loginPassword
		if password == "" {
			password, _ = pterm.DefaultInteractiveTextInput.WithMask("*").Show("Password")
		}
		if password == "" {
			return errors.New(errors.AuthFailed, "password is required")
		}

		var res radb.Result
		if loginSignup {
			res = client.Auth().SignUp(ctx, email, password, "")
		} else {
			res = client.Auth().SignIn(ctx, email, password)
		}
		if res.Error != nil {
			// A zero status code means the request never reached the backend;
			// show the network troubleshooting panel instead of a bare error.
			if res.Error.StatusCode == 0 {
				return httperrors.FormatNetworkError(res.Error, "authentication")
			}
			return errors.Wrap(errors.AuthFailed, "login failed", res.Error)
		}

		showLoginGreeting(ctx, client)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email (prompted when omitted)")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password (prompted when omitted)")
	loginCmd.Flags().BoolVar(&loginSignup, "signup", false, "Register a new account instead of signing in")
	loginCmd.Flags().StringVar(&loginProvider, "provider", "", "OAuth provider to authenticate with in the browser")
	rootCmd.AddCommand(loginCmd)
}

// openBrowser attempts to open the provided URL in the user's default browser.
// It uses platform-specific commands to launch the default browser:
//   - Windows: rundll32 url.dll,FileProtocolHandler
//   - macOS: open command
//   - Linux: xdg-open command
//
// The function starts the browser process but does not wait for it to complete.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
