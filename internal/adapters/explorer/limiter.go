package explorer

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// DefaultRequestSpacing keeps requests under Etherscan's 5 calls/second limit
const DefaultRequestSpacing = 220 * time.Millisecond

// Clock abstracts time so request spacing can be tested without sleeping
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

// SystemClock is the wall clock
type SystemClock struct{}

func (SystemClock) Now() time.Time                         { return time.Now() }
func (SystemClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// Limiter enforces a minimum spacing between explorer requests.
// The first Acquire never waits.
type Limiter struct {
	limiter *rate.Limiter
	clock   Clock
}

// NewLimiter creates a limiter that admits one request per spacing interval
func NewLimiter(spacing time.Duration, clock Clock) *Limiter {
	if spacing <= 0 {
		spacing = DefaultRequestSpacing
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &Limiter{
		limiter: rate.NewLimiter(rate.Every(spacing), 1),
		clock:   clock,
	}
}

// Acquire blocks until the next request may be sent. It returns the time spent
// waiting, or the context error if the context ends first.
func (l *Limiter) Acquire(ctx context.Context) (time.Duration, error) {
	now := l.clock.Now()
	reservation := l.limiter.ReserveN(now, 1)
	// rate works in float tokens; drop sub-microsecond noise
	delay := reservation.DelayFrom(now).Round(time.Microsecond)
	if delay <= 0 {
		return 0, nil
	}

	select {
	case <-l.clock.After(delay):
		return delay, nil
	case <-ctx.Done():
		reservation.CancelAt(l.clock.Now())
		return 0, ctx.Err()
	}
}
