package core

import (
	"context"

	"github.com/ib-77/racetimeout/pkg/race"
)

// Race waits for the first of a and b to resolve and returns its value tagged
// by side. The loser is never polled again.
//
// Race is left-biased: a is polled before b on entry, and polled again after
// any wakeup, so if both are ready at the same observation point a wins.
//
// A done ctx takes precedence over both branches: it is checked on entry and
// after every wakeup, and ctx.Err() is returned unchanged.
func Race[A, B any](ctx context.Context, a *Future[A], b *Future[B]) (race.Either[A, B], error) {
	if err := ctx.Err(); err != nil {
		return race.Either[A, B]{}, err
	}

	if v, ok := a.Poll(); ok {
		return race.Left[A, B](v), nil
	}
	if v, ok := b.Poll(); ok {
		return race.Right[A, B](v), nil
	}

	select {
	case <-a.Done():
	case <-b.Done():
	case <-ctx.Done():
	}

	// an operation that returned because ctx was cancelled must not count as a win
	if err := ctx.Err(); err != nil {
		return race.Either[A, B]{}, err
	}

	if v, ok := a.Poll(); ok {
		return race.Left[A, B](v), nil
	}
	v, _ := b.Poll()
	return race.Right[A, B](v), nil
}
