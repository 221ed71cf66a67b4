package siteqa

import "context"

// Asker answers a natural language question about scraped site content.
type Asker interface {
	// Ask answers a single question using only the given content.
	Ask(ctx context.Context, content *ScrapeResult, question string) (string, error)
}
