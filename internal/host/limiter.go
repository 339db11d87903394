package host

import (
	"context"
	"fmt"
	"time"
)

// Limiter paces the host loop to a fixed number of cycles per second.
type Limiter struct {
	interval time.Duration
	ticker   *time.Ticker
}

// NewLimiter returns a limiter that triggers rate times per second.
func NewLimiter(rate int) (*Limiter, error) {
	if rate <= 0 {
		return nil, fmt.Errorf("invalid limiter rate %d", rate)
	}
	interval := Interval(rate)
	return &Limiter{
		interval: interval,
		ticker:   time.NewTicker(interval),
	}, nil
}

// Interval returns the duration between two triggers at the given rate.
func Interval(rate int) time.Duration {
	if rate <= 0 {
		return 0
	}
	return time.Second / time.Duration(rate)
}

// Wait blocks until the next trigger or until the context is done.
func (l *Limiter) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-l.ticker.C:
		return nil
	}
}

// Stop releases the ticker, Wait must not be called afterwards.
func (l *Limiter) Stop() {
	l.ticker.Stop()
}
