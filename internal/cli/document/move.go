package document

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/surveyspec/surveyspec/internal/cli/shared"
	clierrors "github.com/surveyspec/surveyspec/internal/errors"
	"github.com/surveyspec/surveyspec/internal/survey"
)

func newMoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "move <file> <item>",
		Aliases: []string{"mv"},
		Short:   "Move an item to another container or position",
		Example: `  # Move Q4 to the front of block B1
  surveyspec move survey.json Q4 --parent B1 --position 0 -i

  # Move Q4 back to the end of the survey root
  surveyspec move survey.json Q4`,
		Args: shared.ExactArgs(2),
		RunE: runMove,
	}
	addOutputFlags(cmd)
	cmd.Flags().String("parent", "", "Container id or code to move into (default: root)")
	cmd.Flags().Int("position", -1, "Position among the new siblings (default: append)")
	cmd.GroupID = shared.GroupDocuments
	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	path, ref := args[0], args[1]
	flags := cmd.Flags()

	format, _ := flags.GetString("format")
	s, err := shared.LoadSurvey(cmd, path, format)
	if err != nil {
		return err
	}

	it, err := shared.ResolveItem(s, ref)
	if err != nil {
		return err
	}

	parentID := ""
	if parentRef, _ := flags.GetString("parent"); parentRef != "" {
		parent, err := shared.ResolveItem(s, parentRef)
		if err != nil {
			return err
		}
		parentID = parent.ID
	}
	pos, _ := flags.GetInt("position")

	out, err := survey.MoveItem(s, it.ID, parentID, pos)
	if err != nil {
		category := clierrors.Runtime
		if errors.Is(err, survey.ErrInvalidMove) || errors.Is(err, survey.ErrNotContainer) {
			category = clierrors.Argument
		}
		return clierrors.WrapWithMessage(err, category, "moving "+ref)
	}
	shared.Debugf(cmd, "Moved %s under %q at %d", it.Code, parentID, pos)

	return writeResult(cmd, out, path)
}
