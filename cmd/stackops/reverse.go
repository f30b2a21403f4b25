package main

import (
	"fmt"

	"github.com/example/stackops/internal/output"
	"github.com/example/stackops/internal/stackops"
	"github.com/example/stackops/internal/ui"
	"github.com/spf13/cobra"
)

func newReverseCommand(app *cliContext) *cobra.Command {
	var showDiff bool
	cmd := &cobra.Command{
		Use:   "reverse FILE",
		Short: "Reverse the digit stack of a file",
		Long:  "Loads the digits of FILE onto a stack and moves them onto a new stack, inverting the pop order. The source stack is drained in the process.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			digits, err := loadDigits(cmd, app, args[0])
			if err != nil {
				return err
			}
			original := output.StackOf(digits).Elements
			reversed := stackops.ReverseOrder(digits)
			view := output.ReverseView{
				Original:        original,
				Reversed:        output.StackOf(reversed),
				SourceRemaining: digits.Len(),
			}
			if showDiff {
				diff, err := view.Diff()
				if err != nil {
					return err
				}
				_, err = fmt.Fprint(cmd.OutOrStdout(), diff)
				return err
			}
			return output.Write(cmd.OutOrStdout(), app.opts.Output, view, ui.ColorEnabled(cmd.OutOrStdout(), app.opts.NoColor))
		},
	}
	cmd.Flags().BoolVar(&showDiff, "diff", false, "Print a unified diff of the pop order before and after reversing")
	return cmd
}
