package shared

import (
	"fmt"

	"github.com/spf13/cobra"
	clierrors "github.com/surveyspec/surveyspec/internal/errors"
	"github.com/surveyspec/surveyspec/internal/survey"
)

// ExactArgs is cobra.ExactArgs returning an argument error with usage.
func ExactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return clierrors.NewArgumentErrorWithUsage(
				fmt.Sprintf("%s expects %d argument(s), got %d", cmd.Name(), n, len(args)),
				cmd.UseLine(),
				fmt.Sprintf("Run '%s --help' for examples", cmd.CommandPath()),
			)
		}
		return nil
	}
}

// ParseItemType converts a type argument, listing the valid types on error.
func ParseItemType(value string) (survey.ItemType, error) {
	t, err := survey.ParseItemType(value)
	if err != nil {
		return "", clierrors.InvalidItemType(value, ItemTypeNames())
	}
	return t, nil
}

// ItemTypeNames returns every item type as a string.
func ItemTypeNames() []string {
	types := survey.ItemTypes()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return names
}

// ResolveItem finds an item by id, then by code.
func ResolveItem(s survey.Survey, ref string) (survey.Item, error) {
	if it, ok := survey.FindByID(s, ref); ok {
		return it, nil
	}
	if it, ok := survey.FindByCode(s, ref); ok {
		return it, nil
	}
	return survey.Item{}, clierrors.ItemNotFound(ref)
}
