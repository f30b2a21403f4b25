package main

import (
	"errors"

	"github.com/example/stackops/internal/output"
	"github.com/example/stackops/internal/stack"
	"github.com/example/stackops/internal/stackops"
	"github.com/spf13/cobra"
)

func newSumCommand(app *cliContext) *cobra.Command {
	var (
		start, end int
		values     []int
		sentinel   bool
	)
	cmd := &cobra.Command{
		Use:   "sum [FILE] --start N --end M",
		Short: "Sum a range of a stack, counted from the top",
		Long: `Sums the elements of a stack between --start and --end, counted from the top.
The stack comes from the digits of FILE or from --values (top first).
A range is accepted when 0 <= start < end < size; the first start-1 elements
are skipped and the next end-start elements are added.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var ints *stack.Stack[int]
			switch {
			case len(args) == 1 && cmd.Flags().Changed("values"):
				return errors.New("pass either FILE or --values, not both")
			case len(args) == 1:
				digits, err := loadDigits(cmd, app, args[0])
				if err != nil {
					return err
				}
				ints = stackops.DigitValues(digits)
			case cmd.Flags().Changed("values"):
				ints = stack.FromTop(values...)
			default:
				return errors.New("nothing to sum: pass FILE or --values")
			}

			view := output.SumView{Start: start, End: end, Size: ints.Len()}
			sum, err := stackops.SumRange(ints, start, end)
			switch {
			case err == nil:
				view.Sum = sum
				view.Valid = true
			case sentinel && errors.Is(err, stackops.ErrInvalidRange):
				app.log.V(1).Info("invalid range, reporting sentinel", "start", start, "end", end, "size", ints.Len())
				view.Sum = stackops.InvalidRangeSentinel
				view.Error = err.Error()
			default:
				return err
			}
			return output.Write(cmd.OutOrStdout(), app.opts.Output, view, false)
		},
	}
	cmd.Flags().IntVar(&start, "start", 0, "Start position, counted from the top of the stack")
	cmd.Flags().IntVar(&end, "end", 0, "End position, counted from the top of the stack")
	cmd.Flags().IntSliceVar(&values, "values", nil, "Integers to sum, top of the stack first (comma-separated)")
	cmd.Flags().BoolVar(&sentinel, "sentinel", false, "Print -1 for an invalid range instead of failing")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}
