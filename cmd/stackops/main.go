// main.go bootstraps stackops: it builds the root Cobra command, layers
// Viper env/config values under explicit flags, and executes with a
// signal-aware context.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/example/stackops/internal/config"
	"github.com/example/stackops/internal/logging"
	"github.com/example/stackops/internal/stackops"
	"github.com/example/stackops/internal/ui"
	"github.com/fatih/color"
	"github.com/go-logr/logr"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// cliContext carries the resolved options and logger to subcommands.
type cliContext struct {
	opts *config.Options
	log  logr.Logger
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	rootCmd := newRootCommand()
	err := rootCmd.ExecuteContext(ctx)
	handleError(os.Stderr, err)
	if err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	app := &cliContext{opts: config.NewOptions(), log: logr.Discard()}
	cmd := &cobra.Command{
		Use:           "stackops",
		Short:         "Inspect, convert and sum stacks of digits read from text files",
		Long:          "stackops loads the digits of a text file onto a stack and converts it to a queue, reverses it, or sums a range of it.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := applyViper(cmd); err != nil {
				return err
			}
			if err := app.opts.Validate(); err != nil {
				return err
			}
			if app.opts.NoColor {
				color.NoColor = true
			}
			log, err := logging.New(app.opts.LogLevel, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			app.log = log.WithName("stackops")
			return nil
		},
	}
	app.opts.AddFlags(cmd)
	cmd.AddCommand(
		newDigitsCommand(app),
		newQueueCommand(app),
		newReverseCommand(app),
		newSumCommand(app),
		newVersionCommand(app),
	)
	cmd.Example = `  # Show the digits of a file as a stack, top first
  stackops digits notes.txt

  # Sum the top two digits
  stackops sum notes.txt --start 1 --end 3

  # Reverse a stack and show the change in pop order
  stackops reverse notes.txt --diff`
	return cmd
}

// applyViper fills every flag the user did not set from STACKOPS_* env vars
// or the config file.
func applyViper(cmd *cobra.Command) error {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix("STACKOPS")
	v.AutomaticEnv()
	configFile := os.Getenv("STACKOPS_CONFIG")
	configureConfigFile(v, configFile)

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	if err := readConfigFile(v, configFile != ""); err != nil {
		return err
	}
	pending := map[string]string{}
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			return
		}
		if !v.IsSet(f.Name) {
			return
		}
		val := flagValueString(v.Get(f.Name))
		if val != "" {
			pending[f.Name] = val
		}
	})
	for name, val := range pending {
		if err := cmd.Flags().Set(name, val); err != nil {
			return fmt.Errorf("invalid value %q for %s from environment or config: %w", val, name, err)
		}
	}
	return nil
}

// flagValueString renders a viper value the way pflag parses it. Lists from a
// config file become comma-separated, matching --values 5,3,8,1.
func flagValueString(raw any) string {
	switch raw.(type) {
	case []any, []string, []int:
		return strings.Join(cast.ToStringSlice(raw), ",")
	}
	return cast.ToString(raw)
}

func configureConfigFile(v *viper.Viper, explicitPath string) {
	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
		return
	}
	v.SetConfigName("config")
	for _, dir := range configSearchDirs() {
		v.AddConfigPath(dir)
	}
}

func readConfigFile(v *viper.Viper, strict bool) error {
	if err := v.ReadInConfig(); err != nil {
		var cfgErr viper.ConfigFileNotFoundError
		if errors.As(err, &cfgErr) && !strict {
			return nil
		}
		return err
	}
	return nil
}

func configSearchDirs() []string {
	added := make(map[string]struct{})
	var dirs []string
	add := func(path string) {
		if path == "" {
			return
		}
		if _, ok := added[path]; ok {
			return
		}
		added[path] = struct{}{}
		dirs = append(dirs, path)
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		add(filepath.Join(xdg, "stackops"))
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		add(filepath.Join(home, ".config", "stackops"))
		add(filepath.Join(home, ".stackops"))
	}
	return dirs
}

func handleError(w io.Writer, err error) {
	if err == nil || errors.Is(err, pflag.ErrHelp) {
		return
	}
	message := err.Error()
	switch {
	case errors.Is(err, stackops.ErrInvalidRange):
		message = fmt.Sprintf("%s\nHint: ranges need 0 <= --start < --end < stack size.", err)
	case errors.Is(err, stackops.ErrFileRead):
		message = fmt.Sprintf("%s\nHint: check the file exists and is UTF-8 text, or drop --strict to continue with an empty stack.", err)
	}
	prefix := "Error:"
	if ui.ColorEnabled(w, false) {
		prefix = color.New(color.FgRed, color.Bold).Sprint(prefix)
	}
	fmt.Fprintf(w, "%s %s\n", prefix, message)
}
