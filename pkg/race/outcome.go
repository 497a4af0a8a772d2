package race

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Outcome is the result of racing an operation against a deadline.
// A resolved Outcome is either Completed or Expired, never both.
type Outcome[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	deadline  time.Duration
	expired   bool
	resolved  bool
}

func Completed[T any](v T) Outcome[T] {
	return Outcome[T]{
		value:     v,
		expired:   false,
		resolved:  true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Expired[T any](deadline time.Duration) Outcome[T] {
	return Outcome[T]{
		deadline:  deadline,
		expired:   true,
		resolved:  true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Value returns the operation's value. It is the zero value unless the
// outcome is Completed.
func (o Outcome[T]) Value() T {
	return o.value
}

// Get returns the value and whether the outcome is Completed.
func (o Outcome[T]) Get() (T, bool) {
	return o.value, o.IsCompleted()
}

// Deadline returns the deadline carried by an Expired outcome.
func (o Outcome[T]) Deadline() time.Duration {
	return o.deadline
}

func (o Outcome[T]) IsCompleted() bool {
	return o.resolved && !o.expired
}

func (o Outcome[T]) IsExpired() bool {
	return o.resolved && o.expired
}

func (o Outcome[T]) IsEmpty() bool {
	return !o.resolved
}

// Err returns an *ExpiredError for Expired outcomes and nil otherwise.
func (o Outcome[T]) Err() error {
	if o.IsExpired() {
		return &ExpiredError{Deadline: o.deadline}
	}
	return nil
}

func (o Outcome[T]) CreatedAt() time.Time {
	return o.createdAt
}

func (o Outcome[T]) Id() uuid.UUID {
	return o.id
}

func (o Outcome[T]) String() string {
	switch {
	case o.IsCompleted():
		return fmt.Sprintf("Completed(%v)", o.value)
	case o.IsExpired():
		return fmt.Sprintf("Expired(%s)", o.deadline)
	default:
		return "Empty"
	}
}
