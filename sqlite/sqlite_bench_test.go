package sqlite_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/fwojciec/linkwalk"
	"github.com/fwojciec/linkwalk/sqlite"
	"github.com/stretchr/testify/require"
)

// BenchmarkRecordOutcome measures outcome inserts against a file database,
// which is what a crawl with --db writes to.
func BenchmarkRecordOutcome(b *testing.B) {
	db := sqlite.NewDB(filepath.Join(b.TempDir(), "bench.db"))
	require.NoError(b, db.Open())
	defer db.Close()

	ctx := context.Background()
	svc := sqlite.NewCrawlService(db)
	crawl := &linkwalk.Crawl{SeedURL: "http://example.org/", Budget: b.N}
	require.NoError(b, svc.CreateCrawl(ctx, crawl))

	links := make([]string, 50)
	for i := range links {
		links[i] = fmt.Sprintf("/page/%d", i)
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		o := &linkwalk.Outcome{
			URL:         fmt.Sprintf("http://example.org/page/%d", i),
			Status:      200,
			Links:       links,
			ContentHash: "0123456789abcdef",
			Bytes:       4096,
		}
		if err := svc.RecordOutcome(ctx, crawl.ID, o); err != nil {
			b.Fatal(err)
		}
	}
}
