// Package inspect provides read-only CLI commands over survey documents.
// Includes: codes, tree, eval
package inspect

import (
	"github.com/spf13/cobra"
)

// Register adds all inspection commands to the root command.
func Register(rootCmd *cobra.Command) {
	rootCmd.AddCommand(newCodesCmd())
	rootCmd.AddCommand(newTreeCmd())
	rootCmd.AddCommand(newEvalCmd())
}
