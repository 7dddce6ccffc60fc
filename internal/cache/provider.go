// Package cache holds the optional answer cache. Answers are deterministic
// for a given snapshot, so caching serialized responses by normalized request
// is safe; the cache only trades freshness against repeated computation.
package cache

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"
)

// Provider defines the minimal cache operations needed by the service.
type Provider interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Close() error
}

// ErrCacheMiss signals that a cache key was not found.
var ErrCacheMiss = errors.New("cache miss")

// NoopProvider implements Provider but never stores data.
type NoopProvider struct{}

// Get always returns ErrCacheMiss.
func (NoopProvider) Get(context.Context, string) ([]byte, error) {
	return nil, ErrCacheMiss
}

// Set discards the value and returns nil.
func (NoopProvider) Set(context.Context, string, []byte, time.Duration) error {
	return nil
}

// Close is a no-op.
func (NoopProvider) Close() error { return nil }

// AnswerKey builds the cache key for one question. The text is lowercased so
// trivially re-typed questions hit the same entry.
func AnswerKey(question, windowLabel, windowStart, windowEnd, audience string, skipClarification bool) string {
	parts := []string{
		"answer",
		strings.ToLower(strings.TrimSpace(question)),
		windowLabel,
		windowStart,
		windowEnd,
		audience,
		strconv.FormatBool(skipClarification),
	}
	return strings.Join(parts, "|")
}
