package solo

import (
	"context"
	"time"

	"github.com/ib-77/racetimeout/pkg/race"
	"github.com/ib-77/racetimeout/pkg/race/core"
)

// WithTimeout runs op and returns Completed with its value if it finishes
// before deadline, or Expired(deadline) otherwise; see core.Race for
// tie-breaking.
//
// A deadline <= 0 is already elapsed: op is not started and the result is
// Expired(deadline). Only an already-resolved future can win a zero deadline,
// through Within(ctx, 0, core.Ready(v)).
//
// The losing branch is abandoned: the context passed to op is cancelled when
// WithTimeout returns, and any value op produces afterwards is dropped.
//
// The error result is non-nil only when ctx is done before the race is
// decided; it is ctx.Err(), unchanged. A panic in op is re-raised here.
func WithTimeout[T any](ctx context.Context, deadline time.Duration,
	op race.Operation[T]) (race.Outcome[T], error) {

	if deadline <= 0 {
		if err := ctx.Err(); err != nil {
			return race.Outcome[T]{}, err
		}
		return race.Expired[T](deadline), nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	return Within(ctx, deadline, core.Go(ctx, op))
}

// Within races an existing future against deadline. It has the same result
// contract as WithTimeout but never owns the future's goroutine.
func Within[T any](ctx context.Context, deadline time.Duration,
	future *core.Future[T]) (race.Outcome[T], error) {

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	won, err := core.Race(ctx, future, core.Sleep(ctx, deadline))
	if err != nil {
		return race.Outcome[T]{}, err
	}

	if v, ok := won.LeftValue(); ok {
		return race.Completed(v), nil
	}

	return race.Expired[T](deadline), nil
}

// Finally hands the outcome to exactly one handler and returns its result.
// An empty outcome is treated as expired with a zero deadline.
func Finally[T, Out any](ctx context.Context, outcome race.Outcome[T],
	onCompleted func(ctx context.Context, v T) Out,
	onExpired func(ctx context.Context, deadline time.Duration) Out) Out {

	if outcome.IsCompleted() {
		return onCompleted(ctx, outcome.Value())
	}
	return onExpired(ctx, outcome.Deadline())
}
