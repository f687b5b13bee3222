package cmd

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/melmoskitchen/pantry/internal/api"
	"github.com/melmoskitchen/pantry/internal/auth"
	"github.com/melmoskitchen/pantry/internal/config"
	"github.com/melmoskitchen/pantry/internal/log"
	"github.com/melmoskitchen/pantry/internal/session"
)

var rootCmd = &cobra.Command{
	Use:   "pantry",
	Short: "Kitchen inventory client",
	Long: `pantry is the terminal client for the Melmo's Kitchen inventory backend.

It talks to the shared backend on behalf of one of the configured workspaces
(Melmo's Kitchen or Tea Raja). Log in once; the token and selected workspace
are stored in ~/.pantry and attached to every request.

Run without a subcommand to open the interactive UI.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUI(cmd.Context())
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// app bundles the wired dependencies every command needs.
type app struct {
	cfg    *config.Config
	store  *session.FileStore
	client *api.Client
	auth   *auth.Context
}

// newApp loads configuration, configures logging, and wires the client
// stack. Called at command run time, not init time, so tests and help output
// never touch the filesystem.
func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logCfg := log.DefaultConfig()
	logCfg.Level = log.ParseLevel(cfg.LogLevel)
	logCfg.Format = log.ParseFormat(cfg.LogFormat)
	log.SetDefaultLogger(log.New(logCfg))

	dir, err := config.Dir()
	if err != nil {
		return nil, err
	}
	store := session.NewFileStore(filepath.Join(dir, session.FileName))
	client := api.New(api.DefaultBaseURL, store)

	var opts []auth.Option
	if cfg.ClearTenantOnLogout {
		opts = append(opts, auth.WithClearTenantOnLogout())
	}

	return &app{
		cfg:    cfg,
		store:  store,
		client: client,
		auth:   auth.NewContext(client, store, opts...),
	}, nil
}
