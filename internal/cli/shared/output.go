package shared

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// Debugf writes a [DEBUG] line to the command's stderr when --debug is set.
func Debugf(cmd *cobra.Command, format string, args ...interface{}) {
	if !flagBool(cmd, "debug") {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "[DEBUG] "+format+"\n", args...)
}

// UseColor decides whether output is colored. --no-color wins, then the
// configured mode; "auto" colors only a terminal stdout.
func UseColor(cmd *cobra.Command, mode string) bool {
	if flagBool(cmd, "no-color") {
		return false
	}
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if color.NoColor {
		return false
	}
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// Colors holds sprint functions for the palette used by commands.
type Colors struct {
	Cyan   func(a ...interface{}) string
	Green  func(a ...interface{}) string
	Yellow func(a ...interface{}) string
	Red    func(a ...interface{}) string
	Dim    func(a ...interface{}) string
}

// NewColors creates a palette. A disabled palette returns plain text.
func NewColors(enabled bool) *Colors {
	paint := func(attrs ...color.Attribute) func(a ...interface{}) string {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c.SprintFunc()
	}
	return &Colors{
		Cyan:   paint(color.FgCyan, color.Bold),
		Green:  paint(color.FgGreen),
		Yellow: paint(color.FgYellow),
		Red:    paint(color.FgRed),
		Dim:    paint(color.Faint),
	}
}

func flagBool(cmd *cobra.Command, name string) bool {
	f := cmd.Flag(name)
	return f != nil && f.Value.String() == "true"
}
