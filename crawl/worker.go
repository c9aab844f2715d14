package crawl

import (
	"context"
	"net/http"

	"github.com/fwojciec/linkwalk"
)

// visit fetches and parses a single URL. Every failure is reported as a
// skipped Attempt; nothing is retried.
func (c *Crawler) visit(ctx context.Context, u string) linkwalk.Attempt {
	attempt := linkwalk.Attempt{URL: u}

	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			attempt.Reason = linkwalk.SkipTransport
			attempt.Err = err
			return attempt
		}
	}

	resp, err := c.Fetcher.Fetch(ctx, u)
	if err != nil {
		attempt.Reason = linkwalk.SkipTransport
		attempt.Err = err
		return attempt
	}

	if !acceptStatus(resp.StatusCode) {
		attempt.Reason = linkwalk.SkipStatus
		attempt.Err = linkwalk.Errorf(linkwalk.ESTATUS, "unexpected status %d for %s", resp.StatusCode, u)
		return attempt
	}

	links, err := c.Extractor.ExtractLinks(resp.Body)
	if err != nil {
		attempt.Reason = linkwalk.SkipParse
		attempt.Err = err
		return attempt
	}

	attempt.Outcome = &linkwalk.Outcome{
		URL:         u,
		Status:      resp.StatusCode,
		Links:       links,
		ContentHash: ComputeHash(resp.Body),
		Bytes:       len(resp.Body),
	}
	return attempt
}

// acceptStatus reports whether a page with the given status is parsed.
// Redirects are not followed; their bodies are parsed like any other page.
func acceptStatus(code int) bool {
	switch {
	case code >= 200 && code < 300:
		return true
	case code == http.StatusMovedPermanently, code == http.StatusFound:
		return true
	default:
		return false
	}
}
