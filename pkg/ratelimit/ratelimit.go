// Package ratelimit provides a minimum-interval limiter with error backoff
// for calls to an external service.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter enforces a minimum interval between requests and backs off
// after repeated errors. Safe for concurrent use.
type Limiter struct {
	mu           sync.Mutex
	minInterval  time.Duration
	lastRequest  time.Time
	backoffUntil time.Time
	errorCount   int
}

// New creates a limiter allowing at most one request per interval. A zero
// or negative interval disables throttling.
func New(interval time.Duration) *Limiter {
	return &Limiter{minInterval: interval}
}

// Wait blocks until a request may be made, or until ctx is done.
func (l *Limiter) Wait(ctx context.Context) error {
	for {
		l.mu.Lock()
		now := time.Now()

		wait := time.Duration(0)
		if now.Before(l.backoffUntil) {
			wait = l.backoffUntil.Sub(now)
		} else if l.minInterval > 0 && now.Sub(l.lastRequest) < l.minInterval {
			wait = l.minInterval - now.Sub(l.lastRequest)
		}

		if wait == 0 {
			l.lastRequest = now
			l.mu.Unlock()
			return nil
		}
		l.mu.Unlock()

		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// RecordError registers a failed request, growing the backoff window up
// to 30 seconds.
func (l *Limiter) RecordError() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.errorCount++
	backoff := time.Duration(l.errorCount) * time.Second
	if backoff > 30*time.Second {
		backoff = 30 * time.Second
	}
	l.backoffUntil = time.Now().Add(backoff)
}

// RecordSuccess clears any accumulated backoff.
func (l *Limiter) RecordSuccess() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.errorCount = 0
	l.backoffUntil = time.Time{}
}
