package document

import (
	"github.com/spf13/cobra"
	"github.com/surveyspec/surveyspec/internal/cli/shared"
	clierrors "github.com/surveyspec/surveyspec/internal/errors"
	"github.com/surveyspec/surveyspec/internal/transform"
)

func newTransformCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transform <file> <item> <type>",
		Short: "Change the type of an item",
		Long: `Change the type of an item, identified by id or code, and print the updated document.

Options are reset to the defaults of the new type. Label and help are kept when
the new type has them. Children survive only between container types, and rows
only between question types. A choice question always ends up with rows.`,
		Example: `  # Turn Q3 into a choice question
  surveyspec transform survey.json Q3 choice

  # Rewrite the file in place
  surveyspec transform survey.yaml B1 loop -i`,
		Args: shared.ExactArgs(3),
		RunE: runTransform,
	}
	addOutputFlags(cmd)
	cmd.GroupID = shared.GroupDocuments
	return cmd
}

func runTransform(cmd *cobra.Command, args []string) error {
	path, ref := args[0], args[1]

	to, err := shared.ParseItemType(args[2])
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	s, err := shared.LoadSurvey(cmd, path, format)
	if err != nil {
		return err
	}

	it, err := shared.ResolveItem(s, ref)
	if err != nil {
		return err
	}
	if it.Type == to {
		shared.Debugf(cmd, "%s is already %s", it.Code, to)
	}

	out, err := transform.ChangeType(s, it.ID, to)
	if err != nil {
		return clierrors.WrapWithMessage(err, clierrors.Runtime, "changing type of "+ref)
	}
	shared.Debugf(cmd, "Transformed %s: %s -> %s", it.Code, it.Type, to)

	return writeResult(cmd, out, path)
}
