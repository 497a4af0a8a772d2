package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"fortio.org/safecast"
	"github.com/fatih/color"
	"github.com/go-logr/logr"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"k8s.io/utils/clock"

	"github.com/ib-77/racetimeout/internal/config"
	"github.com/ib-77/racetimeout/pkg/race"
	"github.com/ib-77/racetimeout/pkg/race/core"
	"github.com/ib-77/racetimeout/pkg/race/solo"
)

var (
	succeeded = color.New(color.FgGreen)
	failed    = color.New(color.FgRed)
)

func newRunCommand(opts *config.Options, out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Race a simulated slow operation against --deadline",
		Example: `  racetimeout run
  racetimeout run --work 1s --deadline 2s --runs 4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRaces(cmd.Context(), opts, out)
		},
	}
	opts.AddRunFlags(cmd.Flags())
	return cmd
}

func newSlowCommand(opts *config.Options, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "slow NAME DURATION",
		Short: "Block for DURATION without yielding, raced against --deadline",
		Long: "slow blocks a goroutine for DURATION and ignores cancellation. If the deadline wins, " +
			"the blocked goroutine is abandoned and still logs when it finishes.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := time.ParseDuration(args[1])
			if err != nil {
				return errors.Wrapf(err, "parse duration %q", args[1])
			}
			outcome, err := solo.WithTimeout(cmd.Context(), opts.Deadline, slow(args[0], d))
			if err != nil {
				return err
			}
			fmt.Fprintln(out, report(cmd.Context(), outcome))
			return nil
		},
	}
}

// runRaces runs opts.Runs independent races concurrently and prints one
// report line per race, in order.
func runRaces(ctx context.Context, opts *config.Options, out io.Writer) error {
	log := logr.FromContextOrDiscard(ctx)
	lines := make([]string, opts.Runs)

	g, gctx := errgroup.WithContext(ctx)
	for i := range opts.Runs {
		g.Go(func() error {
			outcome, err := solo.WithTimeout(gctx, opts.Deadline, slowMessage(opts.Work, opts.Message))
			if err != nil {
				return errors.Wrapf(err, "race %d", i)
			}
			log.V(1).Info("race decided", "race", i, "id", outcome.Id().String(), "outcome", outcome.String())
			lines[i] = report(gctx, outcome)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, line := range lines {
		fmt.Fprintln(out, line)
	}
	return nil
}

// slowMessage yields message after work has elapsed on the context's clock,
// or gives up when the race no longer needs it.
func slowMessage(work time.Duration, message string) race.Operation[string] {
	return func(ctx context.Context) string {
		if _, err := core.Sleep(ctx, work).Await(ctx); err != nil {
			return ""
		}
		return message
	}
}

// slow blocks for d regardless of cancellation, then logs how long it ran.
func slow(name string, d time.Duration) race.Operation[string] {
	return func(ctx context.Context) string {
		core.GetClock(ctx, clock.RealClock{}).Sleep(d)
		logr.FromContextOrDiscard(ctx).Info("slow operation finished", "name", name, "ranFor", d)
		return name
	}
}

func report(ctx context.Context, outcome race.Outcome[string]) string {
	return solo.Finally(ctx, outcome,
		func(ctx context.Context, v string) string {
			return succeeded.Sprintf("Succeeded with '%s'", v)
		},
		func(ctx context.Context, deadline time.Duration) string {
			return failed.Sprintf("Failed after %s", elapsed(deadline))
		})
}

func elapsed(d time.Duration) string {
	if d%time.Second != 0 {
		return d.String()
	}
	secs, err := safecast.Conv[uint64](int64(d / time.Second))
	if err != nil {
		return d.String()
	}
	if secs == 1 {
		return "1 second"
	}
	return fmt.Sprintf("%d seconds", secs)
}
