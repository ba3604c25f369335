package document

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/surveyspec/surveyspec/internal/cli/shared"
	clierrors "github.com/surveyspec/surveyspec/internal/errors"
	"github.com/surveyspec/surveyspec/internal/ident"
	"github.com/surveyspec/surveyspec/internal/survey"
)

func newNewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new <type>",
		Short: "Create a default item",
		Long: `Create an item of the given type with a fresh id, a unique code and the
defaults of its type.

Without --in the item is printed on its own. With --in it is inserted into the
document, at the root or under the container given by --parent.`,
		Example: `  # Print a default choice question
  surveyspec new choice

  # Append a number question to block B1
  surveyspec new number --in survey.json --parent B1 -i

  # Start a new document containing one text question
  surveyspec new string --code CSAT --title "Customer satisfaction" -o survey.yaml`,
		Args: shared.ExactArgs(1),
		RunE: runNew,
	}
	addOutputFlags(cmd)
	cmd.Flags().String("in", "", "Insert the item into this survey document")
	cmd.Flags().String("parent", "", "Container id or code to insert into (default: root)")
	cmd.Flags().Int("position", -1, "Insert position among siblings (default: append)")
	cmd.Flags().String("prefix", "", "Item code prefix (default: config code_prefix)")
	cmd.Flags().String("code", "", "Survey code when starting a new document")
	cmd.Flags().String("title", "", "Survey title when starting a new document")
	cmd.GroupID = shared.GroupDocuments
	return cmd
}

func runNew(cmd *cobra.Command, args []string) error {
	t, err := shared.ParseItemType(args[0])
	if err != nil {
		return err
	}

	cfg, err := shared.LoadConfig(cmd)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	prefix := cfg.CodePrefix
	if p, _ := flags.GetString("prefix"); p != "" {
		prefix = p
	}

	in, _ := flags.GetString("in")
	code, _ := flags.GetString("code")
	title, _ := flags.GetString("title")
	parentRef, _ := flags.GetString("parent")

	if in == "" {
		if parentRef != "" {
			return clierrors.InvalidFlagCombination("--parent", "requires --in")
		}
		if inPlace, _ := flags.GetBool("in-place"); inPlace {
			return clierrors.InvalidFlagCombination("--in-place", "requires --in")
		}
		it := survey.NewItemWithPrefix(t, ident.NewCodeSet(code), prefix)
		if code == "" && title == "" {
			return printItem(cmd, it)
		}
		s := survey.Reindex(survey.Survey{Code: code, Title: title, Children: []survey.Item{it}})
		return writeResult(cmd, s, "")
	}

	format, _ := flags.GetString("format")
	s, err := shared.LoadSurvey(cmd, in, format)
	if err != nil {
		return err
	}

	parentID := ""
	if parentRef != "" {
		parent, err := shared.ResolveItem(s, parentRef)
		if err != nil {
			return err
		}
		parentID = parent.ID
	}

	it := survey.NewItemWithPrefix(t, survey.Codes(s), prefix)
	pos, _ := flags.GetInt("position")
	out, err := survey.InsertItem(s, parentID, pos, it)
	if err != nil {
		return clierrors.WrapWithMessage(err, clierrors.Argument, fmt.Sprintf("inserting %s", it.Code))
	}
	shared.Debugf(cmd, "Inserted %s (%s) under %q at %d", it.Code, t, parentRef, pos)

	return writeResult(cmd, out, in)
}

// printItem writes a lone item to --output or stdout.
func printItem(cmd *cobra.Command, it survey.Item) error {
	output, _ := cmd.Flags().GetString("output")
	outFormat, _ := cmd.Flags().GetString("output-format")
	return shared.WriteItem(cmd, it, output, outFormat)
}
