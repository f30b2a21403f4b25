// File: cmd/stackops/version.go
// Brief: CLI command wiring and implementation for 'version'.

package main

import (
	"fmt"

	"github.com/example/stackops/internal/config"
	"github.com/example/stackops/internal/output"
	"github.com/example/stackops/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCommand(app *cliContext) *cobra.Command {
	var short bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the stackops version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			if short {
				fmt.Fprintln(cmd.OutOrStdout(), info.Version)
				return nil
			}
			switch app.opts.Output {
			case config.OutputJSON:
				return output.EncodeJSON(cmd.OutOrStdout(), info)
			case config.OutputYAML:
				return output.EncodeYAML(cmd.OutOrStdout(), info)
			default:
				fmt.Fprintln(cmd.OutOrStdout(), info.String())
				return nil
			}
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "Print just the version number")
	return cmd
}
