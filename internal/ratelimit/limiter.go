// Package ratelimit caps gateway deliveries per minute using the
// maxMessagesPerMinute protection setting.
package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"wa-console/internal/observability"
	"wa-console/internal/store"
)

const window = time.Minute

// RateLimitResult represents the result of a rate limit check
type RateLimitResult struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetAt    time.Time
	RetryAfter time.Duration
}

// LimitSource supplies the current per-minute cap
type LimitSource interface {
	GetProtectionSettings(ctx context.Context) (store.ProtectionSettings, error)
}

// Limiter is an in-memory sliding window limiter. Each key keeps the
// timestamps of the sends accepted in the last minute.
type Limiter struct {
	source LimitSource
	logger *observability.Logger
	now    func() time.Time

	mu   sync.Mutex
	hits map[string][]time.Time
}

func New(source LimitSource, logger *observability.Logger) *Limiter {
	return &Limiter{
		source: source,
		logger: logger,
		now:    time.Now,
		hits:   make(map[string][]time.Time),
	}
}

// CheckRateLimit records a send for key when it fits under the cap. A cap of
// zero or less disables limiting.
func (l *Limiter) CheckRateLimit(ctx context.Context, key string) (RateLimitResult, error) {
	settings, err := l.source.GetProtectionSettings(ctx)
	if err != nil {
		return RateLimitResult{}, fmt.Errorf("failed to read protection settings: %w", err)
	}
	limit := settings.MaxMessagesPerMinute

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "rate_limit_key", Value: key},
		observability.Field{Key: "rate_limit", Value: limit},
	)

	now := l.now()
	if limit <= 0 {
		return RateLimitResult{Allowed: true, Limit: limit, ResetAt: now}, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Remove entries outside the window
	hits := l.hits[key]
	cutoff := now.Add(-window)
	kept := hits[:0]
	for _, at := range hits {
		if at.After(cutoff) {
			kept = append(kept, at)
		}
	}

	if len(kept) >= limit {
		l.hits[key] = kept
		resetAt := kept[0].Add(window)
		retryAfter := resetAt.Sub(now)
		if retryAfter < 0 {
			retryAfter = 0
		}
		l.logger.Warn(ctx, "rate limit exceeded")
		return RateLimitResult{
			Allowed:    false,
			Limit:      limit,
			Remaining:  0,
			ResetAt:    resetAt,
			RetryAfter: retryAfter,
		}, nil
	}

	kept = append(kept, now)
	l.hits[key] = kept
	return RateLimitResult{
		Allowed:   true,
		Limit:     limit,
		Remaining: limit - len(kept),
		ResetAt:   kept[0].Add(window),
	}, nil
}
