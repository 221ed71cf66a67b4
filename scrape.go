package siteqa

import "context"

// Fallback values used when a page has no title or description.
const (
	DefaultTitle       = "No title available"
	DefaultDescription = "No description available"
)

// MaxInternalLinks caps the number of internal links kept per page.
const MaxInternalLinks = 5

// Metadata holds the descriptive facts pulled from a page's markup.
type Metadata struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	InternalLinks []string `json:"internalLinks"`
}

// DefaultMetadata returns the metadata used when extraction fails.
func DefaultMetadata() *Metadata {
	return &Metadata{
		Title:         DefaultTitle,
		Description:   DefaultDescription,
		InternalLinks: []string{},
	}
}

// ScrapeResult is the content record handed to the Asker.
// It is request-scoped and always populated; missing pieces are encoded as
// an empty MainContent or default Metadata.
type ScrapeResult struct {
	URL         string    `json:"url"`
	MainContent string    `json:"mainContent"`
	Metadata    *Metadata `json:"metadata"`
}

// Scraper fetches a site and combines its main text and metadata.
type Scraper interface {
	// Scrape never fails. Fetch and extraction errors degrade to empty
	// content and default metadata.
	Scrape(ctx context.Context, originURL string) *ScrapeResult
}
