// File: internal/config/config.go
// Brief: Internal config package implementation for 'config'.

// Package config defines the flag plumbing and runtime options shared by the
// stackops commands, translating Cobra/Viper flag values into a typed struct
// the command implementations consume.
package config

import (
	"fmt"
	"strings"

	"github.com/example/stackops/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Output formats accepted by --output.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Options holds the CLI configuration shared by every subcommand.
type Options struct {
	LogLevel string
	Output   string
	NoColor  bool
	// Strict turns unreadable input files into command failures instead of
	// logging them and continuing with an empty stack.
	Strict bool
}

// NewOptions returns Options with defaults applied.
func NewOptions() *Options {
	return &Options{
		LogLevel: "info",
		Output:   OutputText,
	}
}

// AddFlags binds configuration flags to the persistent flags of the provided Cobra command.
func (o *Options) AddFlags(cmd *cobra.Command) {
	o.BindFlags(cmd.PersistentFlags())
}

// BindFlags attaches the shared flags to an arbitrary FlagSet.
func (o *Options) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.LogLevel, "log-level", o.LogLevel, "Log level for stackops diagnostics (debug, info, warn, error)")
	fs.StringVarP(&o.Output, "output", "o", o.Output, "Output format: text, json, or yaml")
	fs.BoolVar(&o.NoColor, "no-color", o.NoColor, "Disable colored output")
	fs.BoolVar(&o.Strict, "strict", o.Strict, "Fail when an input file cannot be read instead of treating it as empty")
}

// Validate normalizes and checks the option values.
func (o *Options) Validate() error {
	o.Output = strings.ToLower(strings.TrimSpace(o.Output))
	switch o.Output {
	case "":
		o.Output = OutputText
	case OutputText, OutputJSON, OutputYAML:
	case "yml":
		o.Output = OutputYAML
	default:
		return fmt.Errorf("unsupported output format %q (expected text, json, or yaml)", o.Output)
	}
	if _, _, err := logging.ParseLevel(o.LogLevel); err != nil {
		return err
	}
	return nil
}
