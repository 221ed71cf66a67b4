package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/siteqa"
	"github.com/fwojciec/siteqa/mock"
	locslog "github.com/fwojciec/siteqa/slog"
	"github.com/stretchr/testify/assert"
)

func TestLoggingScraper_Scrape(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	want := &siteqa.ScrapeResult{
		URL:         "https://example.com",
		MainContent: "hello",
		Metadata: &siteqa.Metadata{
			Title:         "Example",
			Description:   "Site",
			InternalLinks: []string{"https://example.com/a", "https://example.com/b"},
		},
	}
	inner := &mock.Scraper{
		ScrapeFn: func(context.Context, string) *siteqa.ScrapeResult {
			return want
		},
	}

	scraper := locslog.NewLoggingScraper(inner, logger)
	got := scraper.Scrape(context.Background(), "https://example.com")

	assert.Same(t, want, got)
	output := buf.String()
	assert.Contains(t, output, "msg=scrape")
	assert.Contains(t, output, "content_bytes=5")
	assert.Contains(t, output, "title=Example")
	assert.Contains(t, output, "links=2")
}
