package inspect

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/surveyspec/surveyspec/internal/cli/shared"
	"github.com/surveyspec/surveyspec/internal/survey"
)

func newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree <file>",
		Short: "Print the item tree of a survey",
		Example: `  # Items only
  surveyspec tree survey.json

  # Include rows, columns and conditions
  surveyspec tree survey.yaml --rows --conditions`,
		Args: shared.ExactArgs(1),
		RunE: runTree,
	}
	cmd.Flags().String("format", "", "Input format: json or yaml (default: from extension)")
	cmd.Flags().Bool("rows", false, "Show rows and columns")
	cmd.Flags().Bool("conditions", false, "Show compiled condition expressions")
	cmd.GroupID = shared.GroupInspection
	return cmd
}

type treePrinter struct {
	out        io.Writer
	c          *shared.Colors
	rows       bool
	conditions bool
}

func runTree(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	format, _ := flags.GetString("format")
	s, err := shared.LoadSurvey(cmd, args[0], format)
	if err != nil {
		return err
	}
	cfg, err := shared.LoadConfig(cmd)
	if err != nil {
		return err
	}

	p := treePrinter{out: cmd.OutOrStdout(), c: shared.NewColors(shared.UseColor(cmd, cfg.Color))}
	p.rows, _ = flags.GetBool("rows")
	p.conditions, _ = flags.GetBool("conditions")

	fmt.Fprintf(p.out, "%s %s\n", p.c.Cyan(s.Code), s.Title)
	p.items(s.Children, "")
	fmt.Fprintf(p.out, "\n%d items, max depth %d\n", survey.Count(s), survey.MaxDepth(s))
	return nil
}

func (p treePrinter) items(items []survey.Item, indent string) {
	for _, it := range items {
		branch, next := "├── ", "│   "
		if it.IsLast {
			branch, next = "└── ", "    "
		}

		line := fmt.Sprintf("%s%s%s %s", indent, branch, p.c.Cyan(it.Code), p.c.Dim("["+string(it.Type)+"]"))
		if label := it.LabelText(); label != "" {
			line += " " + label
		}
		fmt.Fprintln(p.out, line)

		child := indent + next
		if p.rows {
			p.elements(child, "row", it.Rows)
			p.elements(child, "col", it.Columns)
		}
		if p.conditions {
			p.conditionLines(child, it.Conditions)
		}
		p.items(it.Children, child)
	}
}

func (p treePrinter) elements(indent, kind string, elems []survey.Element) {
	for _, e := range elems {
		fmt.Fprintf(p.out, "%s%s %s %s\n", indent, p.c.Dim(kind), e.Code, e.Label)
	}
}

func (p treePrinter) conditionLines(indent string, conds []survey.Condition) {
	for _, c := range conds {
		src, err := conditionSource(c)
		if err != nil {
			src = p.c.Red(err.Error())
		}
		fmt.Fprintf(p.out, "%s%s %s\n", indent, p.c.Yellow(string(c.Action)), strings.TrimSpace(src))
	}
}
