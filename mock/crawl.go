package mock

import (
	"context"

	"github.com/fwojciec/linkwalk"
)

var _ linkwalk.CrawlService = (*CrawlService)(nil)

// CrawlService is a mock implementation of linkwalk.CrawlService.
type CrawlService struct {
	CreateCrawlFn   func(ctx context.Context, crawl *linkwalk.Crawl) error
	FinishCrawlFn   func(ctx context.Context, id string, stats linkwalk.Stats) error
	FindCrawlByIDFn func(ctx context.Context, id string) (*linkwalk.Crawl, error)
	RecordOutcomeFn func(ctx context.Context, crawlID string, o *linkwalk.Outcome) error
	FindOutcomesFn  func(ctx context.Context, crawlID string) ([]*linkwalk.Outcome, error)
}

func (s *CrawlService) CreateCrawl(ctx context.Context, crawl *linkwalk.Crawl) error {
	return s.CreateCrawlFn(ctx, crawl)
}

func (s *CrawlService) FinishCrawl(ctx context.Context, id string, stats linkwalk.Stats) error {
	return s.FinishCrawlFn(ctx, id, stats)
}

func (s *CrawlService) FindCrawlByID(ctx context.Context, id string) (*linkwalk.Crawl, error) {
	return s.FindCrawlByIDFn(ctx, id)
}

func (s *CrawlService) RecordOutcome(ctx context.Context, crawlID string, o *linkwalk.Outcome) error {
	return s.RecordOutcomeFn(ctx, crawlID, o)
}

func (s *CrawlService) FindOutcomes(ctx context.Context, crawlID string) ([]*linkwalk.Outcome, error) {
	return s.FindOutcomesFn(ctx, crawlID)
}

var _ linkwalk.OutcomeRecorder = (*OutcomeRecorder)(nil)

// OutcomeRecorder is a mock implementation of linkwalk.OutcomeRecorder.
type OutcomeRecorder struct {
	RecordOutcomeFn func(ctx context.Context, o *linkwalk.Outcome) error
}

func (r *OutcomeRecorder) RecordOutcome(ctx context.Context, o *linkwalk.Outcome) error {
	return r.RecordOutcomeFn(ctx, o)
}
