package siteqa

// TextExtractor derives the main plain-text content of an HTML page.
type TextExtractor interface {
	// ExtractText parses raw HTML and returns normalized text: one fragment
	// per line, no blank lines, no surrounding whitespace on any line.
	// A page without text yields an empty string, not an error.
	ExtractText(html string) (string, error)
}

// MetadataExtractor derives title, description and internal links from an
// HTML page.
type MetadataExtractor interface {
	// ExtractMetadata parses raw HTML fetched from originURL. Relative links
	// are resolved against originURL and only links under it are kept.
	ExtractMetadata(html string, originURL string) (*Metadata, error)
}
