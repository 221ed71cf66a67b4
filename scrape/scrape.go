// Package scrape combines fetching and extraction into a single
// best-effort scrape of a site's front page.
package scrape

import (
	"context"
	"log/slog"

	"github.com/fwojciec/siteqa"
)

var _ siteqa.Scraper = (*Scraper)(nil)

// Scraper fetches a page once and runs the text and metadata extractors
// over the same HTML. Failures never escape Scrape; they are logged and
// replaced by empty text or default metadata.
type Scraper struct {
	Fetcher  siteqa.Fetcher
	Text     siteqa.TextExtractor
	Metadata siteqa.MetadataExtractor

	// Logger receives soft-failure diagnostics. Nil discards them.
	Logger *slog.Logger
}

// Scrape returns the combined content of originURL.
func (s *Scraper) Scrape(ctx context.Context, originURL string) *siteqa.ScrapeResult {
	result := &siteqa.ScrapeResult{
		URL:      originURL,
		Metadata: siteqa.DefaultMetadata(),
	}

	html, err := s.Fetcher.Fetch(ctx, originURL)
	if err != nil {
		s.logger().Warn("fetch failed", "url", originURL, "err", err)
		return result
	}

	result.MainContent = s.extractText(originURL, html)
	result.Metadata = s.extractMetadata(originURL, html)
	return result
}

func (s *Scraper) extractText(originURL, html string) string {
	text, err := s.Text.ExtractText(html)
	if err != nil {
		s.logger().Warn("text extraction failed", "url", originURL, "err", err)
		return ""
	}
	return text
}

func (s *Scraper) extractMetadata(originURL, html string) *siteqa.Metadata {
	meta, err := s.Metadata.ExtractMetadata(html, originURL)
	if err != nil || meta == nil {
		s.logger().Warn("metadata extraction failed", "url", originURL, "err", err)
		return siteqa.DefaultMetadata()
	}
	return meta
}

func (s *Scraper) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}
