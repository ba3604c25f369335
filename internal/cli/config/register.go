// Package config provides CLI commands for surveyspec configuration management.
// Includes: config show, config get, config set, config keys, config init
package config

import (
	"github.com/spf13/cobra"
	"github.com/surveyspec/surveyspec/internal/cli/shared"
)

// Register adds the config command tree to the root command.
// This function is called from the root CLI package during initialization.
func Register(rootCmd *cobra.Command) {
	rootCmd.AddCommand(newConfigCmd())
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show and change configuration",
		Long: `Show and change the surveyspec configuration.

Values are merged from defaults, the global file ~/.surveyspec/config.json,
the project file .surveyspec/config.json (or --config) and SURVEYSPEC_*
environment variables, in increasing priority.`,
	}
	cmd.GroupID = shared.GroupConfiguration

	cmd.AddCommand(newShowCmd())
	cmd.AddCommand(newGetCmd())
	cmd.AddCommand(newSetCmd())
	cmd.AddCommand(newKeysCmd())
	cmd.AddCommand(newInitCmd())
	return cmd
}
