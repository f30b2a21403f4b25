package main

import (
	"github.com/example/stackops/internal/output"
	"github.com/example/stackops/internal/stackops"
	"github.com/example/stackops/internal/ui"
	"github.com/spf13/cobra"
)

func newDigitsCommand(app *cliContext) *cobra.Command {
	return &cobra.Command{
		Use:   "digits FILE",
		Short: "Load the digits of a text file onto a stack and print it",
		Long:  "Reads FILE (or stdin when FILE is -), keeps the characters 0-9 in the order they appear and prints the resulting stack, top first.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			digits, err := loadDigits(cmd, app, args[0])
			if err != nil {
				return err
			}
			return output.Write(cmd.OutOrStdout(), app.opts.Output, output.StackOf(digits), ui.ColorEnabled(cmd.OutOrStdout(), app.opts.NoColor))
		},
	}
}

func newQueueCommand(app *cliContext) *cobra.Command {
	return &cobra.Command{
		Use:   "queue FILE",
		Short: "Convert the digit stack of a file into a queue",
		Long:  "Loads the digits of FILE onto a stack and converts it to a queue whose head is the top of the stack. The stack itself is left intact.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			digits, err := loadDigits(cmd, app, args[0])
			if err != nil {
				return err
			}
			queue := stackops.ToQueue(digits)
			return output.Write(cmd.OutOrStdout(), app.opts.Output, output.QueueOf(queue), ui.ColorEnabled(cmd.OutOrStdout(), app.opts.NoColor))
		},
	}
}
