// surveyspec - survey documents, type transforms and validation

package main

import (
	"fmt"
	"os"

	"github.com/surveyspec/surveyspec/internal/cli"
	clierrors "github.com/surveyspec/surveyspec/internal/errors"
)

func main() {
	err := cli.Execute()
	if err != nil {
		switch {
		case cli.IsExitError(err):
		case clierrors.IsCLIError(err):
			clierrors.PrintError(clierrors.AsCLIError(err))
		default:
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
	os.Exit(cli.ExitCode(err))
}
