// Package ratelimit provides the in-process admission gate for the completion
// endpoint. One bucket instance is shared by all in-flight requests; multiple
// process replicas each get an independent, uncoordinated budget.
package ratelimit

import (
	"sync"
	"time"

	"github.com/onalabs/ona-backend/internal/config"
)

const millisPerMinute = 60_000

// Bucket is a token bucket sized to the per-minute budget. Tokens trickle in
// proportional to elapsed time rather than resetting in discrete windows,
// which avoids burst-at-window-boundary artifacts.
type Bucket struct {
	mu         sync.Mutex
	tokens     int
	maxTokens  int
	lastRefill time.Time
	clk        func() time.Time
}

// NewBucket creates the process-wide bucket (DI constructor). The bucket
// starts full: a fresh process admits up to PerMinute requests immediately.
func NewBucket(cfg *config.RateLimitConfig) *Bucket {
	return NewBucketWithClock(cfg, nil)
}

// NewBucketWithClock is NewBucket with an explicit clock; clk nil means
// time.Now. Tests use it to exercise refill behavior without sleeping.
func NewBucketWithClock(cfg *config.RateLimitConfig, clk func() time.Time) *Bucket {
	if clk == nil {
		clk = time.Now
	}
	return &Bucket{
		tokens:     cfg.PerMinute,
		maxTokens:  cfg.PerMinute,
		lastRefill: clk(),
		clk:        clk,
	}
}

// TryConsume reports whether the request is admitted, consuming one token if
// so. It never blocks; rejected callers surface a rate-limit error instead of
// waiting.
func (b *Bucket) TryConsume() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.refill(b.clk())

	if b.tokens > 0 {
		b.tokens--
		return true
	}
	return false
}

// refill adds floor(elapsedMs / 60000 * maxTokens) tokens, capped at
// maxTokens. lastRefill only advances when at least one whole token accrued,
// so fractional progress is never lost to rounding.
func (b *Bucket) refill(now time.Time) {
	if now.Before(b.lastRefill) {
		// Clock went backwards; treat as no elapsed time.
		return
	}

	elapsedMs := now.Sub(b.lastRefill).Milliseconds()
	tokensToAdd := int(elapsedMs * int64(b.maxTokens) / millisPerMinute)
	if tokensToAdd <= 0 {
		return
	}

	b.tokens = min(b.maxTokens, b.tokens+tokensToAdd)
	b.lastRefill = now
}
