package race

import (
	"context"
	"time"
)

// Operation is an asynchronous computation producing a T. The context it
// receives is cancelled once the race it takes part in is decided, so an
// operation that may lose should return promptly when ctx is done and must
// not hold resources that need any other release signal.
type Operation[T any] func(ctx context.Context) T

type ValueProvider[T any] interface {
	// Value returns the value produced by the operation
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithExpiry defines an interface for outcomes that may report an elapsed deadline
type WithExpiry[T any] interface {
	ValueProvider[T]
	// IsCompleted returns true if the operation beat the deadline
	IsCompleted() bool
	// IsExpired returns true if the deadline elapsed first
	IsExpired() bool
	// Deadline returns the deadline of an expired outcome
	Deadline() time.Duration
}

var _ WithExpiry[int] = Outcome[int]{}
