package core

import (
	"context"
	"errors"

	"github.com/ib-77/racetimeout/pkg/race"
)

// ErrOperationExited is the panic value raised when polling a future whose
// operation called runtime.Goexit instead of returning.
var ErrOperationExited = errors.New("operation exited without returning")

// Future is a single-assignment cell. The value is published by closing done,
// so every read after Done fires observes it.
type Future[T any] struct {
	done    chan struct{}
	value   T
	fault   any
	faulted bool
	exited  bool
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

func (f *Future[T]) resolve(v T) {
	f.value = v
	close(f.done)
}

// Ready returns a future that is already resolved with v.
func Ready[T any](v T) *Future[T] {
	f := newFuture[T]()
	f.resolve(v)
	return f
}

// Never returns a future that never resolves.
func Never[T any]() *Future[T] {
	return &Future[T]{}
}

// Go runs op in its own goroutine and returns the future of its result.
// A panic inside op is captured and re-raised by Poll and Await.
func Go[T any](ctx context.Context, op race.Operation[T]) *Future[T] {
	f := newFuture[T]()

	go func() {
		returned := false
		defer func() {
			if !returned {
				if r := recover(); r != nil {
					f.fault = r
					f.faulted = true
				} else {
					f.exited = true
				}
			}
			close(f.done)
		}()

		f.value = op(ctx)
		returned = true
	}()

	return f
}

// Done is closed once the future is resolved. It is nil for Never.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Poll reports the value without blocking.
func (f *Future[T]) Poll() (T, bool) {
	select {
	case <-f.done:
		f.rethrow()
		return f.value, true
	default:
		var zero T
		return zero, false
	}
}

// Await blocks until the future resolves or ctx is done.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		f.rethrow()
		return f.value, nil
	case <-ctx.Done():
		if v, ok := f.Poll(); ok {
			return v, nil
		}
		var zero T
		return zero, ctx.Err()
	}
}

func (f *Future[T]) rethrow() {
	if f.faulted {
		panic(f.fault)
	}
	if f.exited {
		panic(ErrOperationExited)
	}
}
