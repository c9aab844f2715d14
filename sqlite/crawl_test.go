package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/linkwalk"
	"github.com/fwojciec/linkwalk/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func createCrawl(t *testing.T, svc *sqlite.CrawlService) *linkwalk.Crawl {
	t.Helper()
	crawl := &linkwalk.Crawl{SeedURL: "http://root.test/", Budget: 10}
	require.NoError(t, svc.CreateCrawl(context.Background(), crawl))
	return crawl
}

func TestCrawlService_CreateCrawl(t *testing.T) {
	t.Parallel()

	t.Run("creates crawl with generated ID and start time", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewCrawlService(setupTestDB(t))

		crawl := createCrawl(t, svc)

		assert.NotEmpty(t, crawl.ID, "ID should be generated")
		assert.False(t, crawl.StartedAt.IsZero(), "StartedAt should be set")
		assert.True(t, crawl.FinishedAt.IsZero())
	})

	t.Run("returns error for invalid crawl", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewCrawlService(setupTestDB(t))

		err := svc.CreateCrawl(context.Background(), &linkwalk.Crawl{})
		require.Error(t, err)
		assert.Equal(t, linkwalk.EINVALID, linkwalk.ErrorCode(err))

		err = svc.CreateCrawl(context.Background(), &linkwalk.Crawl{SeedURL: "http://root.test/", Budget: -1})
		assert.Equal(t, linkwalk.EINVALID, linkwalk.ErrorCode(err))
	})
}

func TestCrawlService_FindCrawlByID(t *testing.T) {
	t.Parallel()

	t.Run("returns crawl when found", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewCrawlService(setupTestDB(t))
		created := createCrawl(t, svc)

		found, err := svc.FindCrawlByID(context.Background(), created.ID)

		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
		assert.Equal(t, "http://root.test/", found.SeedURL)
		assert.Equal(t, 10, found.Budget)
		assert.True(t, created.StartedAt.Equal(found.StartedAt))
		assert.True(t, found.FinishedAt.IsZero())
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewCrawlService(setupTestDB(t))

		_, err := svc.FindCrawlByID(context.Background(), "missing")
		require.Error(t, err)
		assert.Equal(t, linkwalk.ENOTFOUND, linkwalk.ErrorCode(err))
	})
}

func TestCrawlService_FinishCrawl(t *testing.T) {
	t.Parallel()

	t.Run("stores stats and finish time", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewCrawlService(setupTestDB(t))
		created := createCrawl(t, svc)
		ctx := context.Background()

		stats := linkwalk.Stats{Scheduled: 12, Spawned: 10, Outcomes: 8, Skipped: 2, Discovered: 30}
		require.NoError(t, svc.FinishCrawl(ctx, created.ID, stats))

		found, err := svc.FindCrawlByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, stats, found.Stats)
		assert.False(t, found.FinishedAt.IsZero())
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewCrawlService(setupTestDB(t))

		err := svc.FinishCrawl(context.Background(), "missing", linkwalk.Stats{})
		assert.Equal(t, linkwalk.ENOTFOUND, linkwalk.ErrorCode(err))
	})
}

func TestCrawlService_RecordOutcome(t *testing.T) {
	t.Parallel()

	t.Run("returns outcomes in recording order", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewCrawlService(setupTestDB(t))
		crawl := createCrawl(t, svc)
		ctx := context.Background()

		first := &linkwalk.Outcome{
			URL:         "http://root.test/",
			Status:      200,
			Links:       []string{"/b", "/a", "/b"},
			ContentHash: "00000000deadbeef",
			Bytes:       42,
		}
		second := &linkwalk.Outcome{URL: "http://root.test/b", Status: 301}
		third := &linkwalk.Outcome{URL: "http://root.test/a", Status: 200, Links: []string{"mailto:x@example.org"}}

		require.NoError(t, svc.RecordOutcome(ctx, crawl.ID, first))
		require.NoError(t, svc.RecordOutcome(ctx, crawl.ID, second))
		require.NoError(t, svc.RecordOutcome(ctx, crawl.ID, third))

		outcomes, err := svc.FindOutcomes(ctx, crawl.ID)
		require.NoError(t, err)
		require.Len(t, outcomes, 3)
		assert.Equal(t, first, outcomes[0])
		assert.Equal(t, "http://root.test/b", outcomes[1].URL)
		assert.Equal(t, 301, outcomes[1].Status)
		assert.Empty(t, outcomes[1].Links)
		assert.Equal(t, []string{"mailto:x@example.org"}, outcomes[2].Links)
	})

	t.Run("separates outcomes by crawl", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewCrawlService(setupTestDB(t))
		a := createCrawl(t, svc)
		b := createCrawl(t, svc)
		ctx := context.Background()

		require.NoError(t, svc.RecordOutcome(ctx, a.ID, &linkwalk.Outcome{URL: "http://root.test/", Status: 200}))

		outcomes, err := svc.FindOutcomes(ctx, b.ID)
		require.NoError(t, err)
		assert.Empty(t, outcomes)
	})

	t.Run("rejects outcome for unknown crawl", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewCrawlService(setupTestDB(t))

		err := svc.RecordOutcome(context.Background(), "missing", &linkwalk.Outcome{URL: "http://root.test/", Status: 200})
		require.Error(t, err)
	})

	t.Run("rejects outcome without URL", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewCrawlService(setupTestDB(t))
		crawl := createCrawl(t, svc)

		err := svc.RecordOutcome(context.Background(), crawl.ID, &linkwalk.Outcome{})
		assert.Equal(t, linkwalk.EINVALID, linkwalk.ErrorCode(err))
	})
}

func TestCrawlRecorder(t *testing.T) {
	t.Parallel()

	svc := sqlite.NewCrawlService(setupTestDB(t))
	crawl := createCrawl(t, svc)
	ctx := context.Background()

	recorder := linkwalk.CrawlRecorder(svc, crawl.ID)
	require.NoError(t, recorder.RecordOutcome(ctx, &linkwalk.Outcome{URL: "http://root.test/", Status: 200}))

	outcomes, err := svc.FindOutcomes(ctx, crawl.ID)
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.Equal(t, "http://root.test/", outcomes[0].URL)
}
