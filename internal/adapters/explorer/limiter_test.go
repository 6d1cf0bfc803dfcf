package explorer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock advances only when the limiter sleeps
type fakeClock struct {
	now    time.Time
	sleeps []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) After(d time.Duration) <-chan time.Time {
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
	ch := make(chan time.Time, 1)
	ch <- c.now
	return ch
}

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func TestLimiter_FirstAcquireDoesNotWait(t *testing.T) {
	clock := newFakeClock()
	limiter := NewLimiter(DefaultRequestSpacing, clock)

	waited, err := limiter.Acquire(context.Background())
	require.NoError(t, err)
	assert.Zero(t, waited)
	assert.Empty(t, clock.sleeps)
}

func TestLimiter_SpacesConsecutiveCalls(t *testing.T) {
	clock := newFakeClock()
	limiter := NewLimiter(DefaultRequestSpacing, clock)

	_, err := limiter.Acquire(context.Background())
	require.NoError(t, err)

	waited, err := limiter.Acquire(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DefaultRequestSpacing, waited)

	waited, err = limiter.Acquire(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DefaultRequestSpacing, waited)

	assert.Equal(t, []time.Duration{DefaultRequestSpacing, DefaultRequestSpacing}, clock.sleeps)
}

func TestLimiter_WaitsOnlyForRemainder(t *testing.T) {
	clock := newFakeClock()
	limiter := NewLimiter(DefaultRequestSpacing, clock)

	_, err := limiter.Acquire(context.Background())
	require.NoError(t, err)

	clock.advance(100 * time.Millisecond)
	waited, err := limiter.Acquire(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 120*time.Millisecond, waited)

	clock.advance(time.Second)
	waited, err = limiter.Acquire(context.Background())
	require.NoError(t, err)
	assert.Zero(t, waited)
}

func TestLimiter_ContextCancelled(t *testing.T) {
	limiter := NewLimiter(time.Hour, SystemClock{})

	_, err := limiter.Acquire(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = limiter.Acquire(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLimiter_WallClock(t *testing.T) {
	limiter := NewLimiter(DefaultRequestSpacing, nil)

	start := time.Now()
	_, err := limiter.Acquire(context.Background())
	require.NoError(t, err)
	first := time.Since(start)

	_, err = limiter.Acquire(context.Background())
	require.NoError(t, err)
	second := time.Since(start)

	assert.Less(t, first, 50*time.Millisecond)
	assert.GreaterOrEqual(t, second-first, DefaultRequestSpacing-5*time.Millisecond)
}
