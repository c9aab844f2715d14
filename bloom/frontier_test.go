package bloom_test

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/fwojciec/linkwalk"
	"github.com/fwojciec/linkwalk/bloom"
	"github.com/fwojciec/linkwalk/crawl"
	"github.com/fwojciec/linkwalk/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ linkwalk.Frontier = (*bloom.Frontier)(nil)

func TestFrontier_Insert(t *testing.T) {
	t.Parallel()

	t.Run("admits new URLs once", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFrontier(1000, 0.001)

		assert.True(t, f.Insert("http://example.org/a", nil))
		assert.False(t, f.Insert("http://example.org/a", nil))
		assert.True(t, f.Insert("http://example.org/b", nil))
		assert.Equal(t, 2, f.Len())
		assert.True(t, f.Contains("http://example.org/a"))
	})

	t.Run("uses defaults for zero sizing", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFrontier(0, 0)

		for i := range 1000 {
			assert.True(t, f.Insert(fmt.Sprintf("http://example.org/%d", i), nil))
		}
		assert.Equal(t, 1000, f.Len())
	})
}

func TestFrontier_drives_crawl(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	fetched := map[string]int{}
	pages := map[string]string{
		"http://root.test/":  "/a /b /a",
		"http://root.test/a": "/ /b",
		"http://root.test/b": "/a",
	}
	fetcher := &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (*linkwalk.Response, error) {
			mu.Lock()
			defer mu.Unlock()
			fetched[url]++
			return &linkwalk.Response{URL: url, StatusCode: 200, Body: []byte(pages[url])}, nil
		},
	}
	extractor := &mock.LinkExtractor{
		ExtractLinksFn: func(body []byte) ([]string, error) {
			return strings.Fields(string(body)), nil
		},
	}

	c := crawl.NewCrawler(fetcher, extractor)
	c.Frontier = bloom.NewFrontier(1000, 0.001)

	result, err := c.Run(context.Background(), "http://root.test/", nil)

	require.NoError(t, err)
	assert.Equal(t, 3, result.Discovered)
	assert.Equal(t, map[string]int{
		"http://root.test/":  1,
		"http://root.test/a": 1,
		"http://root.test/b": 1,
	}, fetched)
}
