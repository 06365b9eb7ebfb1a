package middleware

import (
	"planboard/pkg/log"
)

// Middleware bundles the cross-cutting gin handlers.
type Middleware struct {
	l      log.Logger
	apiKey string
	rl     *rateLimiter
}

// New creates the middleware set. apiKey may be empty, in which case Auth()
// is a no-op (development mode). rateLimitPerMin <= 0 disables RateLimit().
func New(l log.Logger, apiKey string, rateLimitPerMin int) Middleware {
	var rl *rateLimiter
	if rateLimitPerMin > 0 {
		rl = newRateLimiter(rateLimitPerMin)
	}
	return Middleware{
		l:      l,
		apiKey: apiKey,
		rl:     rl,
	}
}
