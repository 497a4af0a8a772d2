package race

import (
	"errors"
	"fmt"
	"time"
)

// ErrExpired is wrapped by every ExpiredError.
var ErrExpired = errors.New("deadline elapsed")

// ExpiredError reports the deadline an operation failed to beat.
type ExpiredError struct {
	Deadline time.Duration
}

func (e *ExpiredError) Error() string {
	return fmt.Sprintf("%s after %s", ErrExpired, e.Deadline)
}

func (e *ExpiredError) Unwrap() error {
	return ErrExpired
}
