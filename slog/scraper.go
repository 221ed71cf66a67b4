package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/siteqa"
)

// Ensure LoggingScraper implements siteqa.Scraper.
var _ siteqa.Scraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a Scraper with a summary log line per scrape.
type LoggingScraper struct {
	next   siteqa.Scraper
	logger *slog.Logger
}

// NewLoggingScraper creates a new LoggingScraper.
func NewLoggingScraper(next siteqa.Scraper, logger *slog.Logger) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger}
}

// Scrape delegates to the wrapped scraper and logs what was extracted.
func (s *LoggingScraper) Scrape(ctx context.Context, originURL string) (result *siteqa.ScrapeResult) {
	defer func(begin time.Time) {
		attrs := []any{"url", originURL, "duration", time.Since(begin)}
		if result != nil {
			attrs = append(attrs, "content_bytes", len(result.MainContent))
			if result.Metadata != nil {
				attrs = append(attrs,
					"title", result.Metadata.Title,
					"links", len(result.Metadata.InternalLinks),
				)
			}
		}
		s.logger.Info("scrape", attrs...)
	}(time.Now())
	return s.next.Scrape(ctx, originURL)
}
