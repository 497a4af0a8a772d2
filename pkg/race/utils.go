package race

import (
	"context"
	"errors"
)

// IsCancellationError reports whether err comes from a cancelled or expired
// context rather than from the race itself.
func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
