// Package http provides an HTTP-based implementation of linkwalk.Fetcher.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/linkwalk"
)

const (
	// DefaultFetchTimeout is the default timeout for a single fetch.
	DefaultFetchTimeout = 10 * time.Second

	// DefaultMaxBodySize is the default number of body bytes read per page.
	DefaultMaxBodySize = 10 << 20
)

// Ensure Fetcher implements linkwalk.Fetcher at compile time.
var _ linkwalk.Fetcher = (*Fetcher)(nil)

// Fetcher issues plain GET requests. It never follows redirects: a 301 or
// 302 response is returned with its own body, like any other status.
type Fetcher struct {
	client      *http.Client
	timeout     time.Duration
	maxBodySize int64
	transport   http.RoundTripper
	userAgent   string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithMaxBodySize caps how many body bytes are read. Longer bodies are
// truncated, not rejected.
func WithMaxBodySize(n int64) Option {
	return func(f *Fetcher) {
		f.maxBodySize = n
	}
}

// WithTransport sets the round tripper used by the client.
func WithTransport(rt http.RoundTripper) Option {
	return func(f *Fetcher) {
		f.transport = rt
	}
}

// WithUserAgent sets the User-Agent header. An empty value keeps the
// transport default.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:     DefaultFetchTimeout,
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout:   f.timeout,
		Transport: f.transport,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	return f
}

// Fetch issues a GET for url and returns the response whatever its status.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*linkwalk.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, linkwalk.Errorf(linkwalk.EINVALID, "invalid request URL %q: %v", url, err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize))
	if err != nil {
		return nil, err
	}

	return &linkwalk.Response{
		URL:        url,
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
