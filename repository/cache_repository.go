package repository

import "time"

// CacheRepository memoizes calculation results keyed by their input.
// The calculations themselves are pure, so a cached value never goes
// stale; the TTL only bounds memory growth.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string, ttl time.Duration) error
}
