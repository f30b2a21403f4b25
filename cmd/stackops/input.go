package main

import (
	"fmt"

	"github.com/example/stackops/internal/stack"
	"github.com/example/stackops/internal/stackops"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const stdinPath = "-"

// loadDigits reads the digits of path ("-" for stdin). Without --strict any
// failure, including a path that cannot be expanded, is logged and an empty
// stack is returned.
func loadDigits(cmd *cobra.Command, app *cliContext, path string) (*stack.Stack[rune], error) {
	if path != stdinPath && !app.opts.Strict {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return logReadFailure(app, path, expandError(path, err)), nil
		}
		digits := stackops.LoadDigitsBestEffort(app.log, expanded)
		app.log.V(1).Info("loaded digits", "path", expanded, "count", digits.Len())
		return digits, nil
	}

	var (
		digits *stack.Stack[rune]
		err    error
	)
	if path == stdinPath {
		digits, err = stackops.LoadDigits(cmd.InOrStdin())
	} else if expanded, expandErr := homedir.Expand(path); expandErr != nil {
		err = expandError(path, expandErr)
	} else {
		digits, err = stackops.LoadDigitsFromFile(expanded)
	}
	if err != nil {
		if app.opts.Strict {
			return nil, err
		}
		return logReadFailure(app, path, err), nil
	}
	return digits, nil
}

func expandError(path string, err error) error {
	return errors.WithStack(&stackops.ReadError{Path: path, Err: err})
}

func logReadFailure(app *cliContext, path string, err error) *stack.Stack[rune] {
	app.log.Error(err, "File not found", "path", path, "detail", fmt.Sprintf("%+v", err))
	return stack.New[rune]()
}
