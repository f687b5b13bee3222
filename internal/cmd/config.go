package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/melmoskitchen/pantry/internal/config"
	"github.com/melmoskitchen/pantry/internal/errors"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or edit pantry configuration",
	Long: `Manage the pantry configuration stored at ~/.pantry/config.yaml

Settings:
  log_level               minimum log level (debug, info, warn, error)
  log_format              log output format (text, json)
  clear_tenant_on_logout  forget the workspace on logout (true, false)

Examples:
  pantry config view
  pantry config get log_level
  pantry config set log_level debug
  pantry config path`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var configViewCmd = &cobra.Command{
	Use:   "view",
	Short: "Display current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		data, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		switch args[0] {
		case "log_level":
			fmt.Fprintln(cmd.OutOrStdout(), cfg.LogLevel)
		case "log_format":
			fmt.Fprintln(cmd.OutOrStdout(), cfg.LogFormat)
		case "clear_tenant_on_logout":
			fmt.Fprintln(cmd.OutOrStdout(), cfg.ClearTenantOnLogout)
		default:
			return errors.New(errors.ErrCodeConfigInvalid, fmt.Sprintf("unknown setting %q", args[0]))
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		switch args[0] {
		case "log_level":
			cfg.LogLevel = args[1]
		case "log_format":
			cfg.LogFormat = args[1]
		case "clear_tenant_on_logout":
			v, err := strconv.ParseBool(args[1])
			if err != nil {
				return errors.New(errors.ErrCodeConfigInvalid, fmt.Sprintf("%q is not a boolean", args[1]))
			}
			cfg.ClearTenantOnLogout = v
		default:
			return errors.New(errors.ErrCodeConfigInvalid, fmt.Sprintf("unknown setting %q", args[0]))
		}

		path, err := config.Path()
		if err != nil {
			return err
		}
		if err := cfg.Save(path); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", args[0], args[1])
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the configuration file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.Path()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configViewCmd, configGetCmd, configSetCmd, configPathCmd)
	rootCmd.AddCommand(configCmd)
}
