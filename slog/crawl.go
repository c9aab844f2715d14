package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/linkwalk"
)

var _ linkwalk.CrawlService = (*LoggingCrawlService)(nil)

// LoggingCrawlService wraps a CrawlService with debug logging.
type LoggingCrawlService struct {
	next   linkwalk.CrawlService
	logger *slog.Logger
}

// NewLoggingCrawlService creates a new LoggingCrawlService.
func NewLoggingCrawlService(next linkwalk.CrawlService, logger *slog.Logger) *LoggingCrawlService {
	return &LoggingCrawlService{next: next, logger: logger}
}

func (s *LoggingCrawlService) CreateCrawl(ctx context.Context, crawl *linkwalk.Crawl) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create crawl",
			"id", crawl.ID,
			"seed", crawl.SeedURL,
			"budget", crawl.Budget,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateCrawl(ctx, crawl)
}

func (s *LoggingCrawlService) FinishCrawl(ctx context.Context, id string, stats linkwalk.Stats) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("finish crawl",
			"id", id,
			"scheduled", stats.Scheduled,
			"spawned", stats.Spawned,
			"outcomes", stats.Outcomes,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FinishCrawl(ctx, id, stats)
}

func (s *LoggingCrawlService) FindCrawlByID(ctx context.Context, id string) (crawl *linkwalk.Crawl, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find crawl",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindCrawlByID(ctx, id)
}

func (s *LoggingCrawlService) RecordOutcome(ctx context.Context, crawlID string, o *linkwalk.Outcome) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("record outcome",
			"crawl", crawlID,
			"url", o.URL,
			"status", o.Status,
			"links", len(o.Links),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.RecordOutcome(ctx, crawlID, o)
}

func (s *LoggingCrawlService) FindOutcomes(ctx context.Context, crawlID string) (outcomes []*linkwalk.Outcome, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find outcomes",
			"crawl", crawlID,
			"count", len(outcomes),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindOutcomes(ctx, crawlID)
}
