package portal

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter controls the frequency of outbound requests to the portal API.
type RateLimiter struct {
	limiter *rate.Limiter

	// additional backoff after a 429 Retry-After
	retryAfterUntil time.Time
	mu              sync.Mutex
}

// NewRateLimiter creates a limiter with the given requests-per-second and burst.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// DefaultRateLimiter returns a limiter with conservative settings.
func DefaultRateLimiter() *RateLimiter {
	return NewRateLimiter(10, 5)
}

// Wait blocks until the next request is allowed.
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.mu.Lock()
	waitUntil := r.retryAfterUntil
	r.mu.Unlock()

	// honor a pending Retry-After pause first
	if time.Now().Before(waitUntil) {
		select {
		case <-time.After(time.Until(waitUntil)):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return r.limiter.Wait(ctx)
}

// SetRetryAfter sets a pause after the server answered 429.
func (r *RateLimiter) SetRetryAfter(seconds int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.retryAfterUntil = time.Now().Add(time.Duration(seconds) * time.Second)
}
