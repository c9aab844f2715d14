package linkwalk

import "context"

// Response is the raw result of a single GET request.
type Response struct {
	// URL is the requested URL.
	URL string

	// StatusCode is the HTTP status returned by the server.
	// Redirects are not followed, so 301/302 are reported as-is.
	StatusCode int

	// Body holds the full (possibly size-capped) response body.
	Body []byte
}

// Fetcher issues HTTP GET requests.
type Fetcher interface {
	// Fetch performs a GET request for url and returns the response
	// regardless of its status code. An error means no response was
	// received (connection refused, timeout, malformed response).
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*Response, error)

	// Close releases transport resources.
	Close() error
}

// RequestLimiter caps the global request rate of a crawl.
type RequestLimiter interface {
	// Wait blocks until the next request may be issued.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context) error
}
