package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/melmoskitchen/pantry/internal/tui"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the interactive inventory UI",
	Long: `Open the full-screen interactive UI.

Starts on the dashboard when a session is stored, or on the login screen
otherwise. This is also what running pantry without a subcommand does.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUI(cmd.Context())
	},
}

func runUI(ctx context.Context) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	// Best effort; an expired token just means the first call fails with
	// the backend's message on screen.
	if a.auth.Authenticated() {
		_ = a.auth.Hydrate(ctx)
	}

	app := tui.NewApp(a.client, a.auth, a.store)
	program := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("ui error: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(uiCmd)
}
