package mock

import (
	"context"

	"github.com/fwojciec/siteqa"
)

var _ siteqa.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of siteqa.Scraper.
type Scraper struct {
	ScrapeFn func(ctx context.Context, originURL string) *siteqa.ScrapeResult
}

func (s *Scraper) Scrape(ctx context.Context, originURL string) *siteqa.ScrapeResult {
	return s.ScrapeFn(ctx, originURL)
}
