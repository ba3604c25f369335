package validation

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// FormatReport writes a human-readable rendering of r to w, grouped by
// severity. useColor forces colors on or off regardless of the terminal.
func FormatReport(w io.Writer, r *Result, useColor bool) error {
	paint := func(attrs ...color.Attribute) func(a ...interface{}) string {
		c := color.New(attrs...)
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c.SprintFunc()
	}
	green := paint(color.FgGreen)
	red := paint(color.FgRed)
	yellow := paint(color.FgYellow)
	cyan := paint(color.FgCyan)

	if r.IsValid {
		if _, err := fmt.Fprintf(w, "%s %s\n", green("✓"), r.Summary); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintf(w, "%s %s\n", red("✗"), r.Summary); err != nil {
			return err
		}
	}

	groups := []struct {
		title string
		mark  string
		diags []Diagnostic
	}{
		{"Errors", red("✗"), r.Errors()},
		{"Warnings", yellow("!"), r.Warnings()},
		{"Info", cyan("i"), r.Infos()},
	}
	for _, g := range groups {
		if len(g.diags) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "\n%s (%d):\n", g.title, len(g.diags)); err != nil {
			return err
		}
		for _, d := range g.diags {
			field := d.Field
			if field == "" {
				field = "(survey)"
			}
			if _, err := fmt.Fprintf(w, "  %s %s: %s", g.mark, field, d.Message); err != nil {
				return err
			}
			if d.Code != "" {
				if _, err := fmt.Fprintf(w, " [%s]", d.Code); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
			if d.Hint != "" {
				if _, err := fmt.Fprintf(w, "      %s %s\n", yellow("Hint:"), d.Hint); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
