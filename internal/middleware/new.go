package middleware

import (
	"smart-quick-add/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New builds the middleware set. A requestsPerMin of zero or less disables rate limiting.
func New(l log.Logger, requestsPerMin int) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(requestsPerMin),
	}
}
