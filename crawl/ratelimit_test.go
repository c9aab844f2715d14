package crawl_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/linkwalk"
	"github.com/fwojciec/linkwalk/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLimiter(t *testing.T) {
	t.Parallel()

	t.Run("implements linkwalk.RequestLimiter interface", func(t *testing.T) {
		t.Parallel()
		var _ linkwalk.RequestLimiter = crawl.NewRequestLimiter(1)
	})

	t.Run("allows immediate request when under limit", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewRequestLimiter(10) // 10 req/sec

		start := time.Now()
		err := limiter.Wait(context.Background())
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.Less(t, elapsed, 50*time.Millisecond, "first request should be immediate")
	})

	t.Run("rate limits consecutive requests", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewRequestLimiter(10) // 10 req/sec = 100ms between requests

		err := limiter.Wait(context.Background())
		require.NoError(t, err)

		start := time.Now()
		err = limiter.Wait(context.Background())
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.GreaterOrEqual(t, elapsed, 80*time.Millisecond, "should wait for rate limit")
	})

	t.Run("zero rate disables limiting", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewRequestLimiter(0)

		start := time.Now()
		for range 100 {
			require.NoError(t, limiter.Wait(context.Background()))
		}
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("returns error when context is canceled", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewRequestLimiter(0.1) // one request per 10s

		require.NoError(t, limiter.Wait(context.Background()))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := limiter.Wait(ctx)
		assert.Error(t, err)
	})
}
