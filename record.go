package linkwalk

import (
	"context"
	"time"
)

// Crawl is the recorded summary of one crawl run.
type Crawl struct {
	ID         string    `json:"id"`
	SeedURL    string    `json:"seedUrl"`
	Budget     int       `json:"budget"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
	Stats      Stats     `json:"stats"`
}

// Validate returns an error if the crawl contains invalid fields.
func (c *Crawl) Validate() error {
	if c.SeedURL == "" {
		return Errorf(EINVALID, "crawl seed URL required")
	}
	if c.Budget < 0 {
		return Errorf(EINVALID, "crawl budget must not be negative")
	}
	return nil
}

// Stats counts what a crawl did.
type Stats struct {
	// Scheduled is the request counter: every scheduling decision,
	// including candidates charged after the budget ran out.
	Scheduled int `json:"scheduled"`

	// Spawned is the number of fetch workers actually dispatched.
	Spawned int `json:"spawned"`

	// Outcomes is the number of successful fetch-and-parse cycles processed.
	Outcomes int `json:"outcomes"`

	// Skipped is the number of dispatched fetches that produced no outcome.
	Skipped int `json:"skipped"`

	// Discovered is the number of URLs admitted to the frontier.
	Discovered int `json:"discovered"`
}

// CrawlService records crawls and their outcomes. Records are a report of
// what happened; they are never used to resume a crawl.
type CrawlService interface {
	// CreateCrawl stores a new crawl and assigns its ID and StartedAt.
	CreateCrawl(ctx context.Context, crawl *Crawl) error

	// FinishCrawl stores the final stats of a crawl.
	// Returns ENOTFOUND if the crawl does not exist.
	FinishCrawl(ctx context.Context, id string, stats Stats) error

	// FindCrawlByID retrieves a crawl by ID.
	// Returns ENOTFOUND if the crawl does not exist.
	FindCrawlByID(ctx context.Context, id string) (*Crawl, error)

	// RecordOutcome stores one outcome of the given crawl.
	RecordOutcome(ctx context.Context, crawlID string, o *Outcome) error

	// FindOutcomes retrieves the outcomes of a crawl in recording order.
	FindOutcomes(ctx context.Context, crawlID string) ([]*Outcome, error)
}

// CrawlRecorder binds s to one crawl, returning an OutcomeRecorder that
// stores every outcome under crawlID.
func CrawlRecorder(s CrawlService, crawlID string) OutcomeRecorder {
	return &crawlRecorder{service: s, crawlID: crawlID}
}

type crawlRecorder struct {
	service CrawlService
	crawlID string
}

func (r *crawlRecorder) RecordOutcome(ctx context.Context, o *Outcome) error {
	return r.service.RecordOutcome(ctx, r.crawlID, o)
}
