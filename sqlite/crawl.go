package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fwojciec/linkwalk"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ linkwalk.CrawlService = (*CrawlService)(nil)

// CrawlService implements linkwalk.CrawlService using SQLite.
type CrawlService struct {
	db *DB
}

// NewCrawlService creates a new CrawlService.
func NewCrawlService(db *DB) *CrawlService {
	return &CrawlService{db: db}
}

// CreateCrawl creates a new crawl record.
func (s *CrawlService) CreateCrawl(ctx context.Context, crawl *linkwalk.Crawl) error {
	if err := crawl.Validate(); err != nil {
		return err
	}

	crawl.ID = uuid.New().String()
	crawl.StartedAt = time.Now().UTC().Truncate(time.Second)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO crawls (id, seed_url, budget, started_at)
		VALUES (?, ?, ?, ?)
	`, crawl.ID, crawl.SeedURL, crawl.Budget, formatRFC3339(crawl.StartedAt))

	return err
}

// FinishCrawl stores the final stats of a crawl and stamps its finish time.
func (s *CrawlService) FinishCrawl(ctx context.Context, id string, stats linkwalk.Stats) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE crawls
		SET finished_at = ?, scheduled = ?, spawned = ?, outcomes = ?, skipped = ?, discovered = ?
		WHERE id = ?
	`, formatRFC3339(time.Now()), stats.Scheduled, stats.Spawned, stats.Outcomes,
		stats.Skipped, stats.Discovered, id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return linkwalk.Errorf(linkwalk.ENOTFOUND, "crawl not found")
	}
	return nil
}

// FindCrawlByID retrieves a crawl by ID.
func (s *CrawlService) FindCrawlByID(ctx context.Context, id string) (*linkwalk.Crawl, error) {
	var crawl linkwalk.Crawl
	var startedAt, finishedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, seed_url, budget, started_at, finished_at, scheduled, spawned, outcomes, skipped, discovered
		FROM crawls
		WHERE id = ?
	`, id).Scan(&crawl.ID, &crawl.SeedURL, &crawl.Budget, &startedAt, &finishedAt,
		&crawl.Stats.Scheduled, &crawl.Stats.Spawned, &crawl.Stats.Outcomes,
		&crawl.Stats.Skipped, &crawl.Stats.Discovered)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, linkwalk.Errorf(linkwalk.ENOTFOUND, "crawl not found")
	}
	if err != nil {
		return nil, err
	}

	if crawl.StartedAt, err = parseRFC3339(startedAt, "started_at"); err != nil {
		return nil, err
	}
	if crawl.FinishedAt, err = parseOptionalRFC3339(finishedAt, "finished_at"); err != nil {
		return nil, err
	}

	return &crawl, nil
}

// RecordOutcome stores one outcome of the given crawl.
func (s *CrawlService) RecordOutcome(ctx context.Context, crawlID string, o *linkwalk.Outcome) error {
	if o == nil || o.URL == "" {
		return linkwalk.Errorf(linkwalk.EINVALID, "outcome URL required")
	}

	links := o.Links
	if links == nil {
		links = []string{}
	}
	encoded, err := json.Marshal(links)
	if err != nil {
		return fmt.Errorf("failed to encode links: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO outcomes (id, crawl_id, url, status, link_count, links, content_hash, bytes, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, uuid.New().String(), crawlID, o.URL, o.Status, len(o.Links), string(encoded),
		o.ContentHash, o.Bytes, formatRFC3339(time.Now()))

	return err
}

// FindOutcomes retrieves the outcomes of a crawl in recording order.
func (s *CrawlService) FindOutcomes(ctx context.Context, crawlID string) ([]*linkwalk.Outcome, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT url, status, links, content_hash, bytes
		FROM outcomes
		WHERE crawl_id = ?
		ORDER BY rowid ASC
	`, crawlID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var outcomes []*linkwalk.Outcome
	for rows.Next() {
		var o linkwalk.Outcome
		var links string

		if err := rows.Scan(&o.URL, &o.Status, &links, &o.ContentHash, &o.Bytes); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(links), &o.Links); err != nil {
			return nil, fmt.Errorf("failed to decode links: %w", err)
		}

		outcomes = append(outcomes, &o)
	}

	return outcomes, rows.Err()
}
