package ratelimit

// RateLimitConfig describes the per-window request allowances for a key.
// A zero limit disables that window.
type RateLimitConfig struct {
	RequestsPerMinute int
	RequestsPerHour   int
	RequestsPerDay    int
}

// RateLimiter answers whether a request identified by key may proceed.
type RateLimiter interface {
	Allow(key string, config RateLimitConfig) (bool, error)
}
