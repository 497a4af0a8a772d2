package core

import (
	"context"

	"k8s.io/utils/clock"
)

type OptionKey string

const (
	ClockOptionKey OptionKey = "clock_options"
)

type ClockOptions struct {
	Clock clock.Clock
}

// WithClock makes Sleep, and every combinator built on it, measure time with c.
func WithClock(ctx context.Context, c clock.Clock) context.Context {
	return context.WithValue(ctx, ClockOptionKey, ClockOptions{Clock: c})
}

func GetClock(ctx context.Context, defaultClock clock.Clock) clock.Clock {
	options, ok := ctx.Value(ClockOptionKey).(ClockOptions)
	if ok && options.Clock != nil {
		return options.Clock
	}
	return defaultClock
}
