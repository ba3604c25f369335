// Package document provides CLI commands that read and change survey documents.
// Includes: validate, transform, new, remove, move
package document

import (
	"github.com/spf13/cobra"
)

// Register adds all document commands to the root command.
// This function is called from the root CLI package during initialization.
func Register(rootCmd *cobra.Command) {
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newTransformCmd())
	rootCmd.AddCommand(newNewCmd())
	rootCmd.AddCommand(newRemoveCmd())
	rootCmd.AddCommand(newMoveCmd())
}
