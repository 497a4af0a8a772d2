package core

import (
	"context"
	"time"

	"k8s.io/utils/clock"
)

// Sleep returns a future that resolves once d has elapsed on the clock
// carried by ctx. A non-positive d is already resolved. When ctx is done
// before the timer fires, the timer is stopped and the future never resolves.
func Sleep(ctx context.Context, d time.Duration) *Future[struct{}] {
	if d <= 0 {
		return Ready(struct{}{})
	}

	f := newFuture[struct{}]()
	timer := GetClock(ctx, clock.RealClock{}).NewTimer(d)

	go func() {
		select {
		case <-timer.C():
			f.resolve(struct{}{})
		case <-ctx.Done():
			timer.Stop()
		}
	}()

	return f
}
