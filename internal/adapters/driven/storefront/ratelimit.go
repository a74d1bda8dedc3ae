package storefront

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// ProactiveRate is the steady request rate the client allows itself.
	ProactiveRate = 8

	// ProactiveBurst lets a screen load its queries together.
	ProactiveBurst = 6

	// DefaultBackoff is used when a throttled response carries no Retry-After.
	DefaultBackoff = 2 * time.Second

	// HeaderRetryAfter is the retry-after header (seconds).
	HeaderRetryAfter = "Retry-After"
)

// RateLimiter throttles requests proactively with a token bucket and
// reactively after the API reports throttling.
type RateLimiter struct {
	mu      sync.Mutex
	retryAt time.Time     // Set by throttled responses
	bucket  *rate.Limiter // Proactive throttling
	now     func() time.Time
}

// NewRateLimiter creates a new rate limiter with proactive throttling.
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		bucket: rate.NewLimiter(rate.Limit(ProactiveRate), ProactiveBurst),
		now:    time.Now,
	}
}

// Wait blocks until it's safe to make a request.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if err := r.bucket.Wait(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	retryAt := r.retryAt
	now := r.now()
	r.mu.Unlock()

	if now.Before(retryAt) {
		timer := time.NewTimer(retryAt.Sub(now))
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	return nil
}

// CheckResponse records throttling signalled by the HTTP status.
// Returns a RateLimitError if rate limited, nil otherwise.
func (r *RateLimiter) CheckResponse(resp *http.Response) error {
	if resp == nil || resp.StatusCode != http.StatusTooManyRequests {
		return nil
	}
	backoff := DefaultBackoff
	if retryAfter := resp.Header.Get(HeaderRetryAfter); retryAfter != "" {
		if seconds, err := strconv.Atoi(retryAfter); err == nil && seconds >= 0 {
			backoff = time.Duration(seconds) * time.Second
		}
	}
	return r.Throttle(backoff)
}

// Throttle blocks further requests for d and returns the matching error.
func (r *RateLimiter) Throttle(d time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	retryAt := r.now().Add(d)
	if retryAt.After(r.retryAt) {
		r.retryAt = retryAt
	}
	return &RateLimitError{RetryAt: r.retryAt}
}

// RetryAt returns the time until which requests are held back.
func (r *RateLimiter) RetryAt() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.retryAt
}
