package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/melmoskitchen/pantry/internal/api"
	"github.com/melmoskitchen/pantry/internal/avatar"
	"github.com/melmoskitchen/pantry/internal/errors"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View or update your profile",
	Long: `View or update the logged-in user's profile.

Subcommands:
  show      Display the current profile
  update    Update name, email, phone, or date of birth
  password  Change the password
  avatar    Set or remove the profile photo

Examples:
  pantry profile show
  pantry profile update --name "Mel M" --email mel@example.com
  pantry profile password --current old --new fresh --confirm fresh
  pantry profile avatar --file photo.png
  pantry profile avatar --remove`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the current profile",
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
		fmt.Fprintf(out, "Username: %s\n", user.Username)
		fmt.Fprintf(out, "Name:     %s\n", user.Name)
		fmt.Fprintf(out, "Email:    %s\n", user.Email)
		fmt.Fprintf(out, "Phone:    %s\n", user.Phone)
		fmt.Fprintf(out, "DOB:      %s\n", user.DOB)
		fmt.Fprintf(out, "Role:     %s\n", user.Role)
		if user.AvatarURL != "" {
			fmt.Fprintln(out, "Photo:    set")
		}
		return nil
	},
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update profile fields",
	Long: `Update name, email, phone, or date of birth.

Unset flags keep their current value; the whole profile is sent each time.`,
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

		current := a.auth.CurrentUser()
		update := api.ProfileUpdate{
			Name:      current.Name,
			Email:     current.Email,
			Phone:     current.Phone,
			DOB:       current.DOB,
			AvatarURL: current.AvatarURL,
		}

		if cmd.Flags().Changed("name") {
			update.Name, _ = cmd.Flags().GetString("name")
		}
		if cmd.Flags().Changed("email") {
			update.Email, _ = cmd.Flags().GetString("email")
		}
		if cmd.Flags().Changed("phone") {
			update.Phone, _ = cmd.Flags().GetString("phone")
		}
		if cmd.Flags().Changed("dob") {
			update.DOB, _ = cmd.Flags().GetString("dob")
		}

		user, err := a.client.UpdateProfile(cmd.Context(), update)
		if err != nil {
			return err
		}
		a.auth.UpdateUser(user)

		fmt.Fprintln(cmd.OutOrStdout(), "Profile updated successfully!")
		return nil
	},
}

var profilePasswordCmd = &cobra.Command{
	Use:   "password",
	Short: "Change the password",
	RunE: func(cmd *cobra.Command, args []string) error {
		current, _ := cmd.Flags().GetString("current")
		newPw, _ := cmd.Flags().GetString("new")
		confirm, _ := cmd.Flags().GetString("confirm")

		if current == "" {
			return errors.NewFieldRequiredError("current password")
		}
		if newPw == "" {
			return errors.NewFieldRequiredError("new password")
		}
		// Checked before anything leaves the machine.
		if newPw != confirm {
			return errors.NewPasswordMismatchError()
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		if !a.auth.Authenticated() {
			return errors.NewNotLoggedInError()
		}

		if err := a.client.ChangePassword(cmd.Context(), current, newPw); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Password changed successfully!")
		return nil
	},
}

var profileAvatarCmd = &cobra.Command{
	Use:   "avatar",
	Short: "Set or remove the profile photo",
	Long: `Set the profile photo from an image file, or remove it.

The file is embedded in the profile as a data URL and must stay under 500KB.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")
		remove, _ := cmd.Flags().GetBool("remove")

		if file == "" && !remove {
			return errors.NewFieldRequiredError("--file or --remove")
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		if !a.auth.Authenticated() {
			return errors.NewNotLoggedInError()
		}

		var avatarURL *string
		if !remove {
			encoded, err := avatar.EncodeFile(file)
			if err != nil {
				return err
			}
			avatarURL = &encoded
		}

		user, err := a.client.SetAvatar(cmd.Context(), avatarURL)
		if err != nil {
			return err
		}
		a.auth.UpdateUser(user)

		if remove {
			fmt.Fprintln(cmd.OutOrStdout(), "Profile photo removed.")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "Profile photo updated.")
		}
		return nil
	},
}

func init() {
	profileUpdateCmd.Flags().String("name", "", "display name")
	profileUpdateCmd.Flags().String("email", "", "email address")
	profileUpdateCmd.Flags().String("phone", "", "phone number")
	profileUpdateCmd.Flags().String("dob", "", "date of birth (YYYY-MM-DD)")

	profilePasswordCmd.Flags().String("current", "", "current password")
	profilePasswordCmd.Flags().String("new", "", "new password")
	profilePasswordCmd.Flags().String("confirm", "", "new password again")

	profileAvatarCmd.Flags().String("file", "", "image file to use as the photo")
	profileAvatarCmd.Flags().Bool("remove", false, "remove the current photo")

	profileCmd.AddCommand(profileShowCmd, profileUpdateCmd, profilePasswordCmd, profileAvatarCmd)
	rootCmd.AddCommand(profileCmd)
}
