package cmd

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"

	"github.com/melmoskitchen/pantry/internal/errors"
	"github.com/melmoskitchen/pantry/internal/tenant"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	Long: `Show the logged-in user, the selected workspace, and the token expiry.

The profile is fetched from the backend; the expiry is read from the stored
token without verifying it. Verification happens server-side on every call.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		if !a.auth.Authenticated() {
			return errors.NewNotLoggedInError()
		}

		if err := a.auth.Hydrate(cmd.Context()); err != nil {
			return err
		}

		user := a.auth.CurrentUser()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "User:      %s (%s)\n", user.Username, user.Role)
		if user.Name != "" {
			fmt.Fprintf(out, "Name:      %s\n", user.Name)
		}
		if user.Email != "" {
			fmt.Fprintf(out, "Email:     %s\n", user.Email)
		}

		if ws, ok := tenant.ByID(a.store.TenantID()); ok {
			fmt.Fprintf(out, "Workspace: %s (%s)\n", ws.Name, ws.ID)
		} else {
			fmt.Fprintln(out, "Workspace: not selected")
		}

		if expiry := tokenExpiry(a.store.Token()); !expiry.IsZero() {
			fmt.Fprintf(out, "Token:     expires %s\n", expiry.Local().Format(time.RFC1123))
		}

		return nil
	},
}

// tokenExpiry reads the exp claim without verifying the signature. The value
// is informational only; a zero time means the token carries no usable expiry.
func tokenExpiry(token string) time.Time {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
