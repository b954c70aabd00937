package cmd

import (
	"context"
	"fmt"

	"brewkit/cli/internal/radb"
	"brewkit/cli/internal/session"

	"github.com/spf13/cobra"
)

// whoamiCmd represents the whoami command for displaying current
// authentication state. It resolves the identity through the backend's
// whoami endpoints, falling back to the cached identity when the backend
// is unreachable.
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show current authenticated account",
	Long: `The whoami command displays information about the currently authenticated
account. It asks the backend who the stored session token belongs to and
shows the account identifier. When the backend cannot be reached it falls
back to the identity cached at login time.

If no session token is stored, it will indicate that the user is not
logged in. It also shows the unverified expiry claim of the stored token
when one can be parsed, purely as a hint; the backend remains the
authority on whether the token is still accepted.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(false)
		if err != nil {
			return err
		}

		res := client.Auth().GetUser(cmd.Context())
		if res.Error != nil {
			fmt.Println("🔒 You're not logged in yet!")
			fmt.Println("   Run 'brewkit login' to get started.")
			return nil
		}

		fmt.Printf("👤 Current user: %s\n", identityString(res.Data))

		if claims, ok := session.ParseClaims(client.Sessions().Token()); ok {
			if !claims.ExpiresAt.IsZero() {
				fmt.Printf("   Token expires: %s (unverified claim)\n", claims.ExpiresAt.Format("2006-01-02 15:04 MST"))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

// identityString picks the friendliest identifier out of a user record.
func identityString(data any) string {
	m, ok := data.(map[string]any)
	if !ok {
		return fmt.Sprintf("%v", data)
	}
	for _, key := range []string{"email", "name", "user_id", "id"} {
		if s, ok := m[key].(string); ok && s != "" {
			return s
		}
	}
	return "unknown"
}

// showLoginGreeting displays a friendly greeting message with the user's
// identifier after login.
func showLoginGreeting(ctx context.Context, client *radb.Client) {
	res := client.Auth().GetUser(ctx)
	if res.Error == nil {
		if id := identityString(res.Data); id != "unknown" {
			fmt.Printf("🎉 Welcome, %s!\n", id)
			return
		}
	}
	fmt.Println("✅ Login successful!")
}
