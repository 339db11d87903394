package host

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/retroenv/retrogolib/assert"
)

func TestInterval(t *testing.T) {
	tests := []struct {
		rate     int
		expected time.Duration
	}{
		{60, time.Second / 60},
		{1, time.Second},
		{1000, time.Millisecond},
		{0, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Interval(tt.rate))
	}
}

func TestNewLimiter_InvalidRate(t *testing.T) {
	_, err := NewLimiter(0)
	assert.Error(t, err)
}

func TestLimiter_Wait(t *testing.T) {
	limiter, err := NewLimiter(1000)
	assert.NoError(t, err)
	defer limiter.Stop()

	start := time.Now()
	for range 3 {
		assert.NoError(t, limiter.Wait(context.Background()))
	}
	assert.True(t, time.Since(start) >= 2*time.Millisecond)
}

func TestLimiter_WaitCanceled(t *testing.T) {
	limiter, err := NewLimiter(1)
	assert.NoError(t, err)
	defer limiter.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = limiter.Wait(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
}
