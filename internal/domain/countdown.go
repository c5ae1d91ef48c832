package domain

import (
	"context"
	"time"
)

// CountdownTicks is the number of one-per-interval ticks emitted after a
// successful booking before the client is told to redirect.
const CountdownTicks = 5

// Countdown is a cancellable redirect timer. It emits a fixed number of
// discrete ticks and then terminates; cancelling the context stops it
// deterministically, and no tick fires after cancellation.
type Countdown struct {
	ticks    int
	interval time.Duration
}

func NewCountdown() Countdown {
	return Countdown{ticks: CountdownTicks, interval: time.Second}
}

// NewCountdownWithInterval is intended for tests and clients that need a
// faster tick rate.
func NewCountdownWithInterval(ticks int, interval time.Duration) Countdown {
	return Countdown{ticks: ticks, interval: interval}
}

func (c Countdown) Ticks() int {
	return c.ticks
}

// Run invokes onTick once per interval with the remaining tick count,
// counting down from Ticks-1 to 0, then returns nil. It returns the context
// error when cancelled early.
func (c Countdown) Run(ctx context.Context, onTick func(remaining int)) error {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for remaining := c.ticks - 1; remaining >= 0; remaining-- {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			onTick(remaining)
		}
	}

	return nil
}
