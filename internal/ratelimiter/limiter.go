package ratelimiter

import (
	"golang.org/x/time/rate"
)

// Limiter is a single token bucket shared by every request on the public
// listener. A nil *Limiter admits everything.
type Limiter struct {
	limiter *rate.Limiter
}

// New creates a Limiter with ratePerSec tokens per second and the given burst.
// It returns nil when ratePerSec is zero so callers can pass it straight to
// the router without a separate enabled flag.
func New(ratePerSec, burst int) *Limiter {
	if ratePerSec <= 0 {
		return nil
	}
	return &Limiter{limiter: rate.NewLimiter(rate.Limit(ratePerSec), burst)}
}

// Allow reports whether a request may proceed now. It never blocks.
func (l *Limiter) Allow() bool {
	if l == nil {
		return true
	}
	return l.limiter.Allow()
}
