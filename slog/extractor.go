package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/linkwalk"
)

var _ linkwalk.LinkExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a LinkExtractor with debug logging.
type LoggingExtractor struct {
	next   linkwalk.LinkExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next linkwalk.LinkExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// ExtractLinks delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) ExtractLinks(body []byte) (links []string, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract links",
			"bytes", len(body),
			"links", len(links),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractLinks(body)
}
