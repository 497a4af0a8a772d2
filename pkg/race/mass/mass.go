package mass

import (
	"context"
	"time"

	"github.com/ib-77/racetimeout/pkg/race"
	"github.com/ib-77/racetimeout/pkg/race/solo"
)

// Timing runs solo.WithTimeout in the background. The outcome is delivered on
// the returned channel, which is then closed. If ctx is done before the race
// is decided, the channel is closed without a value and onFault, when set,
// receives ctx.Err(). A panic in op is not recovered.
func Timing[T any](ctx context.Context, deadline time.Duration, op race.Operation[T],
	onFault func(ctx context.Context, err error)) <-chan race.Outcome[T] {

	out := make(chan race.Outcome[T], 1)

	go func() {
		defer close(out)

		outcome, err := solo.WithTimeout(ctx, deadline, op)
		if err != nil {
			if onFault != nil {
				onFault(ctx, err)
			}
			return
		}

		out <- outcome
	}()

	return out
}

type FinallyHandlers[In, Out any] struct {
	OnCompleted func(ctx context.Context, v In) Out
	OnExpired   func(ctx context.Context, deadline time.Duration) Out
}

// Finalizing maps every outcome read from inputCh through solo.Finally.
// It stops when inputCh is closed or ctx is done.
func Finalizing[In, Out any](ctx context.Context, inputCh <-chan race.Outcome[In],
	handlers FinallyHandlers[In, Out]) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return
			case in, ok := <-inputCh:
				if !ok {
					return
				}

				res := solo.Finally[In, Out](ctx, in, handlers.OnCompleted, handlers.OnExpired)

				select {
				case out <- res:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}
