package mock

import (
	"context"

	"github.com/fwojciec/linkwalk"
)

var _ linkwalk.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of linkwalk.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*linkwalk.Response, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*linkwalk.Response, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

var _ linkwalk.RequestLimiter = (*RequestLimiter)(nil)

// RequestLimiter is a mock implementation of linkwalk.RequestLimiter.
type RequestLimiter struct {
	WaitFn func(ctx context.Context) error
}

func (l *RequestLimiter) Wait(ctx context.Context) error {
	return l.WaitFn(ctx)
}
