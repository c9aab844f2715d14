package crawl

import (
	"context"

	"github.com/fwojciec/linkwalk"
	"golang.org/x/time/rate"
)

var _ linkwalk.RequestLimiter = (*RequestLimiter)(nil)

// RequestLimiter caps the request rate of a whole crawl using a single token
// bucket shared by every worker. It does not distinguish between hosts.
type RequestLimiter struct {
	limiter *rate.Limiter
}

// NewRequestLimiter creates a RequestLimiter allowing rps requests per second
// with a burst of 1. A non-positive rps disables limiting.
func NewRequestLimiter(rps float64) *RequestLimiter {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	return &RequestLimiter{
		limiter: rate.NewLimiter(limit, 1),
	}
}

// Wait blocks until the next request may be issued.
// Returns an error if the context is canceled before the wait completes.
func (l *RequestLimiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}
