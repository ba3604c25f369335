package document

import (
	"github.com/spf13/cobra"
	"github.com/surveyspec/surveyspec/internal/cli/shared"
	clierrors "github.com/surveyspec/surveyspec/internal/errors"
	"github.com/surveyspec/surveyspec/internal/survey"
)

func newRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove <file> <item>",
		Aliases: []string{"rm"},
		Short:   "Remove an item and its subtree",
		Example: `  # Remove block B2 with everything inside it
  surveyspec remove survey.json B2 -i`,
		Args: shared.ExactArgs(2),
		RunE: runRemove,
	}
	addOutputFlags(cmd)
	cmd.GroupID = shared.GroupDocuments
	return cmd
}

func runRemove(cmd *cobra.Command, args []string) error {
	path, ref := args[0], args[1]

	format, _ := cmd.Flags().GetString("format")
	s, err := shared.LoadSurvey(cmd, path, format)
	if err != nil {
		return err
	}

	it, err := shared.ResolveItem(s, ref)
	if err != nil {
		return err
	}

	out, err := survey.RemoveItem(s, it.ID)
	if err != nil {
		return clierrors.WrapWithMessage(err, clierrors.Runtime, "removing "+ref)
	}
	shared.Debugf(cmd, "Removed %s: %d -> %d items", it.Code, survey.Count(s), survey.Count(out))

	return writeResult(cmd, out, path)
}
