package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/melmoskitchen/pantry/internal/api"
	"github.com/melmoskitchen/pantry/internal/errors"
	"github.com/melmoskitchen/pantry/internal/tenant"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to a workspace",
	Long: `Log in to the inventory backend for one of the configured workspaces.

The workspace id is persisted as soon as it is chosen and the token is stored
after a successful login. Both are attached to every later request.

Examples:
  pantry login --tenant melmo --username mel --password secret
  pantry login -t tearaja -u raj -p secret`,
	RunE: func(cmd *cobra.Command, args []string) error {
		tenantID, _ := cmd.Flags().GetString("tenant")
		username, _ := cmd.Flags().GetString("username")
		password, _ := cmd.Flags().GetString("password")

		if tenantID == "" {
			return errors.NewNoTenantError()
		}
		ws, ok := tenant.ByID(tenantID)
		if !ok {
			return errors.NewUnknownTenantError(tenantID)
		}
		if username == "" {
			return errors.NewFieldRequiredError("username")
		}
		if password == "" {
			return errors.NewFieldRequiredError("password")
		}

		a, err := newApp()
		if err != nil {
			return err
		}

		// The workspace choice sticks even if the login below fails.
		if err := a.store.SetTenantID(tenantID); err != nil {
			return err
		}

		if err := a.auth.Login(cmd.Context(), api.Credentials{Username: username, Password: password}); err != nil {
			return err
		}

		user := a.auth.CurrentUser()
		fmt.Fprintf(cmd.OutOrStdout(), "Logged in to %s as %s (%s)\n", ws.Name, user.Username, user.Role)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringP("tenant", "t", "", "workspace id (melmo or tearaja)")
	loginCmd.Flags().StringP("username", "u", "", "account username")
	loginCmd.Flags().StringP("password", "p", "", "account password")
	rootCmd.AddCommand(loginCmd)
}
