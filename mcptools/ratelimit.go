// Copyright (c) The a0 Authors. All rights reserved.
// Licensed under the MIT License.

package mcptools

import (
	"fmt"

	"golang.org/x/time/rate"
)

// RateLimiter is a token bucket shared by all tools of a server.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter allows burst calls at once, refilled at perSecond tokens
// per second. NewRateLimiter(10, 1.0) allows 10 burst calls and one more
// each second.
func NewRateLimiter(burst int, perSecond float64) *RateLimiter {
	return &RateLimiter{limiter: rate.NewLimiter(rate.Limit(perSecond), burst)}
}

// Allow consumes a token if one is available.
func (r *RateLimiter) Allow() bool {
	return r.limiter.Allow()
}

// CheckRateLimit returns an error if the limit for toolName is exceeded.
func (r *RateLimiter) CheckRateLimit(toolName string) error {
	if !r.Allow() {
		return fmt.Errorf("rate limit exceeded for tool %q, please wait before retrying", toolName)
	}
	return nil
}
