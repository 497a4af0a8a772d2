// main.go bootstraps racetimeout: it builds the root Cobra command and executes
// it with a signal-aware context.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ib-77/racetimeout/internal/config"
	"github.com/ib-77/racetimeout/internal/logging"
	"github.com/ib-77/racetimeout/pkg/race"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	rootCmd := newRootCommand(os.Stdout)
	err := rootCmd.ExecuteContext(ctx)
	handleError(os.Stderr, err)
	if err != nil {
		os.Exit(1)
	}
}

func newRootCommand(out io.Writer) *cobra.Command {
	opts := config.NewOptions()
	var configFile string
	cmd := &cobra.Command{
		Use:           "racetimeout",
		Short:         "Race an operation against a deadline",
		Long:          "racetimeout runs an operation and a timer side by side and reports whichever finishes first.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Bind(cmd, configFile); err != nil {
				return err
			}
			if err := opts.Validate(); err != nil {
				return err
			}
			opts.ApplyColor()
			logger, err := logging.New(opts.LogLevel)
			if err != nil {
				return err
			}
			cmd.SetContext(logr.NewContext(cmd.Context(), logger))
			return nil
		},
	}
	cmd.SetOut(out)
	cmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to a config file (default: ./config.* or <user config dir>/racetimeout/config.*)")
	opts.AddGlobalFlags(cmd.PersistentFlags())

	cmd.AddCommand(newRunCommand(opts, out), newSlowCommand(opts, out))
	return cmd
}

func handleError(w io.Writer, err error) {
	if err == nil || errors.Is(err, pflag.ErrHelp) {
		return
	}
	message := err.Error()
	if race.IsCancellationError(err) {
		hint := "interrupted before the race was decided."
		if errors.Is(err, context.DeadlineExceeded) {
			hint = "the surrounding context expired before the race was decided."
		}
		message = fmt.Sprintf("%s\nHint: %s", err, hint)
	}
	fmt.Fprintf(w, "Error: %s\n", message)
}
