package util

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/surveyspec/surveyspec/internal/build"
	"github.com/surveyspec/surveyspec/internal/cli/shared"
)

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "version",
		Aliases: []string{"v"},
		Short:   "Display version information (v)",
		Long:    "Display version, commit, build date, and Go version information for surveyspec",
		Example: `  # Show version info
  surveyspec version

  # Plain output (for scripts)
  surveyspec version --plain`,
		Args: shared.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			plain, _ := cmd.Flags().GetBool("plain")
			if plain {
				return printPlainVersion(cmd.OutOrStdout())
			}
			return printPrettyVersion(cmd.OutOrStdout(), shared.NewColors(shared.UseColor(cmd, "auto")))
		},
	}
	cmd.GroupID = shared.GroupConfiguration
	cmd.Flags().Bool("plain", false, "Plain output without formatting")
	return cmd
}

// printPlainVersion prints a simple version output for scripting
func printPlainVersion(w io.Writer) error {
	_, err := fmt.Fprintf(w, "surveyspec %s\ncommit: %s\nbuilt: %s\ngo: %s\nplatform: %s/%s\n",
		build.Version, build.Commit, build.BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	return err
}

func printPrettyVersion(w io.Writer, c *shared.Colors) error {
	info := []struct {
		label string
		value string
	}{
		{"Version", build.Version},
		{"Commit", build.ShortCommit()},
		{"Built", build.BuildDate},
		{"Go", runtime.Version()},
		{"Platform", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)},
	}
	if build.IsDevBuild() {
		info[0].value += " " + c.Dim("(development build)")
	}

	if _, err := fmt.Fprintln(w, c.Cyan("surveyspec")+" "+c.Dim("survey documents, transforms and validation")); err != nil {
		return err
	}
	for _, item := range info {
		if _, err := fmt.Fprintf(w, "  %s  %s\n", c.Yellow(fmt.Sprintf("%10s", item.label)), item.value); err != nil {
			return err
		}
	}
	return nil
}
