package config

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/surveyspec/surveyspec/internal/cli/shared"
	cfgpkg "github.com/surveyspec/surveyspec/internal/config"
	clierrors "github.com/surveyspec/surveyspec/internal/errors"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as JSON",
		Args:  shared.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := shared.LoadConfig(cmd)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(cfg)
		},
	}
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print the effective value of one key",
		Example: `  # Current preset
  surveyspec config get preset`,
		Args: shared.ExactArgs(1),
		RunE: runConfigGet,
	}
}

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: `Set a configuration value in the project config file.

By default the value goes to the file named by --config
(.surveyspec/config.json). Use --global to write ~/.surveyspec/config.json.
The value is validated against the type of the key.`,
		Example: `  # Only report errors and warnings
  surveyspec config set preset lenient

  # Report exactly these severities
  surveyspec config set severities error,info

  # Check condition references everywhere
  surveyspec config set check_references true --global`,
		Args: shared.ExactArgs(2),
		RunE: runConfigSet,
	}
	cmd.Flags().Bool("global", false, "Write the global config instead of the project config")
	return cmd
}

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List all available configuration keys",
		Args:  shared.ExactArgs(0),
		RunE:  runConfigKeys,
	}
}

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file holding the defaults",
		Args:  shared.ExactArgs(0),
		RunE:  runConfigInit,
	}
	cmd.Flags().Bool("global", false, "Write the global config instead of the project config")
	cmd.Flags().Bool("force", false, "Overwrite an existing file")
	return cmd
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]
	if _, err := cfgpkg.GetKeySchema(key); err != nil {
		return unknownKeyError(key)
	}

	cfg, err := shared.LoadConfig(cmd)
	if err != nil {
		return err
	}

	var value interface{}
	switch key {
	case "preset":
		value = cfg.Preset
	case "stop_on_first_error":
		value = cfg.StopOnFirstError
	case "severities":
		value = strings.Join(cfg.Severities, ",")
	case "check_references":
		value = cfg.CheckReferences
	case "code_prefix":
		value = cfg.CodePrefix
	case "output":
		value = cfg.Output
	case "color":
		value = cfg.Color
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", key, value)
	return err
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]
	if _, err := cfgpkg.GetKeySchema(key); err != nil {
		return unknownKeyError(key)
	}

	filePath, scope, err := resolveConfigPath(cmd)
	if err != nil {
		return err
	}

	if err := cfgpkg.SetConfigValue(filePath, key, value); err != nil {
		return clierrors.NewArgumentError(err.Error())
	}
	shared.Debugf(cmd, "Wrote %s", filePath)

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s in %s config (%s)\n", key, value, scope, filePath)
	return err
}

func runConfigKeys(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, name := range cfgpkg.KeyNames() {
		schema := cfgpkg.KnownKeys[name]
		typ := schema.Type.String()
		if len(schema.AllowedValues) > 0 {
			typ += " (" + strings.Join(schema.AllowedValues, "|") + ")"
		}
		if _, err := fmt.Fprintf(out, "%-20s %-32s %s\n", name, typ, schema.Description); err != nil {
			return err
		}
	}
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	filePath, scope, err := resolveConfigPath(cmd)
	if err != nil {
		return err
	}
	force, _ := cmd.Flags().GetBool("force")

	if err := cfgpkg.WriteDefaults(filePath, force); err != nil {
		return clierrors.NewConfigError(err.Error(), "Pass --force to overwrite it")
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Wrote default %s config to %s\n", scope, filePath)
	return err
}

// resolveConfigPath returns the file a write command targets and its scope name.
func resolveConfigPath(cmd *cobra.Command) (string, string, error) {
	if global, _ := cmd.Flags().GetBool("global"); global {
		path, err := cfgpkg.GlobalPath()
		if err != nil {
			return "", "", clierrors.NewConfigError(fmt.Sprintf("locating home directory: %v", err))
		}
		return path, "global", nil
	}
	path := cfgpkg.DefaultLocalPath
	if f := cmd.Flag("config"); f != nil {
		path = f.Value.String()
	}
	return path, "project", nil
}

func unknownKeyError(key string) error {
	return clierrors.NewArgumentError(
		fmt.Sprintf("unknown configuration key: %s", key),
		"Valid keys: "+strings.Join(cfgpkg.KeyNames(), ", "),
	)
}
