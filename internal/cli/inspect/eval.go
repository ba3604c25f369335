package inspect

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"github.com/surveyspec/surveyspec/internal/cli/shared"
	"github.com/surveyspec/surveyspec/internal/condition"
	clierrors "github.com/surveyspec/surveyspec/internal/errors"
	"github.com/surveyspec/surveyspec/internal/survey"
)

func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <file>",
		Short: "Evaluate item conditions against a set of answers",
		Long: `Evaluate every condition of every item against a set of answers and print
whether each item is visible and required.

Answers are keyed by item code, with row and column codes appended after a dot:
Q1, Q2.R1, Q5.R1.C2.`,
		Example: `  # Answers from a file
  surveyspec eval survey.json --answers answers.yaml

  # Inline answers
  surveyspec eval survey.json --set Q1=yes --set Q2.R1=true --set Q3=42`,
		Args: shared.ExactArgs(1),
		RunE: runEval,
	}
	cmd.Flags().String("format", "", "Input format: json or yaml (default: from extension)")
	cmd.Flags().String("answers", "", "JSON or YAML file of answers")
	cmd.Flags().StringArray("set", nil, "Answer as key=value (repeatable)")
	cmd.Flags().Bool("json", false, "Print as JSON")
	cmd.GroupID = shared.GroupInspection
	return cmd
}

type evalResult struct {
	Outcomes []condition.Outcome       `json:"outcomes"`
	States   map[string]condition.State `json:"states"`
}

func runEval(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	format, _ := flags.GetString("format")
	s, err := shared.LoadSurvey(cmd, args[0], format)
	if err != nil {
		return err
	}

	answers, err := loadAnswers(cmd)
	if err != nil {
		return err
	}
	shared.Debugf(cmd, "Answers: %v", answers)

	outcomes, err := condition.Evaluate(s, answers)
	if err != nil {
		return clierrors.WrapWithMessage(err, clierrors.Runtime, "evaluating conditions",
			"Run 'surveyspec validate --check-references' to find broken conditions")
	}
	states, err := condition.Resolve(s, answers)
	if err != nil {
		return clierrors.WrapWithMessage(err, clierrors.Runtime, "resolving item states")
	}

	out := cmd.OutOrStdout()
	if asJSON, _ := flags.GetBool("json"); asJSON {
		if outcomes == nil {
			outcomes = []condition.Outcome{}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(evalResult{Outcomes: outcomes, States: states})
	}

	cfg, err := shared.LoadConfig(cmd)
	if err != nil {
		return err
	}
	c := shared.NewColors(shared.UseColor(cmd, cfg.Color))
	mark := func(ok bool) string {
		if ok {
			return c.Green("yes")
		}
		return c.Red("no")
	}

	byCode := make(map[string][]condition.Outcome)
	for _, o := range outcomes {
		byCode[o.Code] = append(byCode[o.Code], o)
	}

	fmt.Fprintf(out, "%-12s %-8s %-8s %s\n", "CODE", "VISIBLE", "REQUIRED", "CONDITIONS")
	survey.Walk(s, func(it survey.Item, _ string) bool {
		st := states[it.Code]
		conds := ""
		for _, o := range byCode[it.Code] {
			conds += fmt.Sprintf("%s=%t ", o.Action, o.Matched)
		}
		fmt.Fprintf(out, "%-12s %-8s %-8s %s\n", it.Code, mark(st.Visible), mark(st.Required), c.Dim(conds))
		return true
	})
	return nil
}

func loadAnswers(cmd *cobra.Command) (condition.Answers, error) {
	flags := cmd.Flags()
	answers := condition.Answers{}

	if path, _ := flags.GetString("answers"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, clierrors.NewPrerequisiteError(fmt.Sprintf("answers file not found: %s", path))
			}
			return nil, clierrors.AnswersDecodeError(path, err)
		}
		defer f.Close()
		if answers, err = condition.ReadAnswers(f); err != nil {
			return nil, clierrors.AnswersDecodeError(path, err)
		}
	}

	sets, _ := flags.GetStringArray("set")
	for _, kv := range sets {
		key, value, err := condition.ParseAssignment(kv)
		if err != nil {
			return nil, clierrors.NewArgumentError(err.Error(), "Use --set CODE=value, e.g. --set Q2.R1=true")
		}
		answers[key] = value
	}
	return answers, nil
}

func conditionSource(c survey.Condition) (string, error) {
	return condition.Expression(c)
}
