// surveyspec - survey documents, type transforms and validation

// Package cli provides Cobra-based CLI commands for surveyspec.
// It wires document commands (validate, transform, new, remove, move),
// inspection commands (codes, tree, eval) and configuration management.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/surveyspec/surveyspec/internal/cli/config"
	"github.com/surveyspec/surveyspec/internal/cli/document"
	"github.com/surveyspec/surveyspec/internal/cli/inspect"
	"github.com/surveyspec/surveyspec/internal/cli/shared"
	"github.com/surveyspec/surveyspec/internal/cli/util"
	cfgpkg "github.com/surveyspec/surveyspec/internal/config"
	clierrors "github.com/surveyspec/surveyspec/internal/errors"
)

// Command group IDs for organizing help output (re-exported from shared)
const (
	GroupDocuments     = shared.GroupDocuments
	GroupInspection    = shared.GroupInspection
	GroupConfiguration = shared.GroupConfiguration
)

// NewRootCmd builds the complete command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "surveyspec",
		Short: "Survey document tooling",
		Long: `surveyspec works with survey documents: trees of questions, groups and
pages stored as JSON or YAML.

It validates documents with configurable rule sets, changes item types while
keeping whatever data survives, and evaluates display conditions against answers.`,
		Example: `  # Validate a survey
  surveyspec validate survey.yaml

  # Only report errors
  surveyspec validate survey.yaml --preset strict

  # Turn a text question into a single choice question
  surveyspec transform survey.yaml Q2 choice -i

  # Evaluate conditions against answers
  surveyspec eval survey.yaml --set Q1=yes`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Define command groups in display order
	rootCmd.AddGroup(&cobra.Group{ID: GroupDocuments, Title: "Documents:"})
	rootCmd.AddGroup(&cobra.Group{ID: GroupInspection, Title: "Inspection:"})
	rootCmd.AddGroup(&cobra.Group{ID: GroupConfiguration, Title: "Configuration:"})

	// Assign built-in help and completion to configuration group
	rootCmd.SetHelpCommandGroupID(GroupConfiguration)
	rootCmd.SetCompletionCommandGroupID(GroupConfiguration)

	// Bad flags are argument errors on every subcommand
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return clierrors.NewArgumentErrorWithUsage(err.Error(), cmd.UseLine(),
			fmt.Sprintf("Run '%s --help' for the available flags", cmd.CommandPath()))
	})

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", cfgpkg.DefaultLocalPath, "Path to config file")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	// Register commands from subpackages
	document.Register(rootCmd)
	inspect.Register(rootCmd)
	config.Register(rootCmd)
	util.Register(rootCmd)

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
