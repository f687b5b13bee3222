package cmd

import (
	"bufio"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/melmoskitchen/pantry/internal/api"
	"github.com/melmoskitchen/pantry/internal/errors"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage user accounts",
	Long: `Manage the workspace's user accounts. Admin only.

Subcommands:
  list    Show all users
  add     Create a user
  update  Change a user's details
  delete  Remove a user

Examples:
  pantry users list
  pantry users add --username raj --name "Raj" --password secret --role staff
  pantry users update u2 --role admin
  pantry users delete u2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all users",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if !a.auth.Authenticated() {
			return errors.NewNotLoggedInError()
		}

		users, err := a.client.ListUsers(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tUSERNAME\tNAME\tEMAIL\tROLE")
		for _, u := range users {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", u.ID, u.Username, u.Name, u.Email, u.Role)
		}
		return w.Flush()
	},
}

var usersAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		username, _ := cmd.Flags().GetString("username")
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		role, _ := cmd.Flags().GetString("role")

		if username == "" {
			return errors.NewFieldRequiredError("username")
		}
		if password == "" {
			return errors.NewFieldRequiredError("password")
		}
		if role != api.RoleAdmin && role != api.RoleStaff {
			return errors.New(errors.ErrCodeFormFieldRequired, fmt.Sprintf("invalid role %q", role)).
				WithSuggestion("Use role admin or staff")
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		if !a.auth.Authenticated() {
			return errors.NewNotLoggedInError()
		}

		user, err := a.client.Register(cmd.Context(), api.NewUser{
			Username: username,
			Name:     name,
			Email:    email,
			Password: password,
			Role:     role,
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created user %s (%s)\n", user.Username, user.ID)
		return nil
	},
}

var usersUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Change a user's details",
	Long: `Change a user's details. Unset flags keep their current value.

The password flag is optional; leaving it out keeps the current password.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if !a.auth.Authenticated() {
			return errors.NewNotLoggedInError()
		}

		users, err := a.client.ListUsers(cmd.Context())
		if err != nil {
			return err
		}

		var target *api.User
		for i := range users {
			if users[i].ID == args[0] || users[i].Username == args[0] {
				target = &users[i]
				break
			}
		}
		if target == nil {
			return errors.New(errors.ErrCodeAPIResponse, fmt.Sprintf("no user %q", args[0]))
		}

		update := api.UserUpdate{
			Username: target.Username,
			Name:     target.Name,
			Email:    target.Email,
			Role:     target.Role,
		}
		if cmd.Flags().Changed("username") {
			update.Username, _ = cmd.Flags().GetString("username")
		}
		if cmd.Flags().Changed("name") {
			update.Name, _ = cmd.Flags().GetString("name")
		}
		if cmd.Flags().Changed("email") {
			update.Email, _ = cmd.Flags().GetString("email")
		}
		if cmd.Flags().Changed("password") {
			update.Password, _ = cmd.Flags().GetString("password")
		}
		if cmd.Flags().Changed("role") {
			update.Role, _ = cmd.Flags().GetString("role")
		}

		user, err := a.client.UpdateUser(cmd.Context(), target.ID, update)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Updated user %s\n", user.Username)
		return nil
	},
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a user",
	Long: `Remove a user after confirmation. Pass --yes to skip the prompt.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		skipConfirm, _ := cmd.Flags().GetBool("yes")

		a, err := newApp()
		if err != nil {
			return err
		}
		if !a.auth.Authenticated() {
			return errors.NewNotLoggedInError()
		}

		if !skipConfirm {
			fmt.Fprintf(cmd.OutOrStdout(), "Are you sure you want to delete %s? [y/N] ", args[0])
			reader := bufio.NewReader(cmd.InOrStdin())
			answer, _ := reader.ReadString('\n')
			if !strings.EqualFold(strings.TrimSpace(answer), "y") {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}
		}

		if err := a.client.DeleteUser(cmd.Context(), args[0]); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "User deleted.")
		return nil
	},
}

func init() {
	usersAddCmd.Flags().String("username", "", "account username")
	usersAddCmd.Flags().String("name", "", "display name")
	usersAddCmd.Flags().String("email", "", "email address")
	usersAddCmd.Flags().String("password", "", "initial password")
	usersAddCmd.Flags().String("role", api.RoleStaff, "role (admin or staff)")

	usersUpdateCmd.Flags().String("username", "", "account username")
	usersUpdateCmd.Flags().String("name", "", "display name")
	usersUpdateCmd.Flags().String("email", "", "email address")
	usersUpdateCmd.Flags().String("password", "", "new password")
	usersUpdateCmd.Flags().String("role", "", "role (admin or staff)")

	usersDeleteCmd.Flags().BoolP("yes", "y", false, "skip the confirmation prompt")

	usersCmd.AddCommand(usersListCmd, usersAddCmd, usersUpdateCmd, usersDeleteCmd)
	rootCmd.AddCommand(usersCmd)
}
