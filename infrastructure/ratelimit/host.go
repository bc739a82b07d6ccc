// ABOUTME: Per-host politeness limiter for outbound feed and page requests
// ABOUTME: Spaces requests to the same host by a fixed delay using x/time/rate

package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/AllrounderTechBrief/TheStreamic/pkg/utils/urls"
)

// HostLimiter hands out one token per host every delay
type HostLimiter struct {
	mu       sync.Mutex
	delay    time.Duration
	limiters map[string]*rate.Limiter
}

// NewHostLimiter creates a limiter. A non-positive delay disables limiting.
func NewHostLimiter(delay time.Duration) *HostLimiter {
	return &HostLimiter{
		delay:    delay,
		limiters: make(map[string]*rate.Limiter),
	}
}

// Wait blocks until a request to rawURL's host may proceed or ctx is done.
// URLs without a host are never delayed.
func (h *HostLimiter) Wait(ctx context.Context, rawURL string) error {
	if h == nil || h.delay <= 0 {
		return ctx.Err()
	}

	host := urls.Host(rawURL)
	if host == "" {
		return ctx.Err()
	}
	return h.limiterFor(host).Wait(ctx)
}

// Hosts reports how many distinct hosts have been seen
func (h *HostLimiter) Hosts() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.limiters)
}

func (h *HostLimiter) limiterFor(host string) *rate.Limiter {
	h.mu.Lock()
	defer h.mu.Unlock()

	l, ok := h.limiters[host]
	if !ok {
		l = rate.NewLimiter(rate.Every(h.delay), 1)
		h.limiters[host] = l
	}
	return l
}
