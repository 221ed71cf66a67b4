package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/siteqa"
)

// Ensure MetadataExtractor implements siteqa.MetadataExtractor at compile time.
var _ siteqa.MetadataExtractor = (*MetadataExtractor)(nil)

// MetadataExtractor pulls the title, meta description and internal links
// from a page.
type MetadataExtractor struct{}

// NewMetadataExtractor creates a new MetadataExtractor.
func NewMetadataExtractor() *MetadataExtractor {
	return &MetadataExtractor{}
}

// ExtractMetadata parses raw HTML fetched from originURL and returns its metadata.
func (e *MetadataExtractor) ExtractMetadata(rawHTML string, originURL string) (*siteqa.Metadata, error) {
	origin, err := url.Parse(originURL)
	if err != nil {
		return nil, siteqa.Errorf(siteqa.EINVALID, "invalid origin URL: %v", err)
	}

	doc, err := parse(rawHTML)
	if err != nil {
		return nil, err
	}

	return Metadata(doc, origin), nil
}

// Metadata reads metadata from doc without modifying it.
func Metadata(doc *goquery.Document, origin *url.URL) *siteqa.Metadata {
	meta := siteqa.DefaultMetadata()

	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		meta.Title = title
	}

	if content, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
		meta.Description = content
	}

	meta.InternalLinks = InternalLinks(doc, origin, siteqa.MaxInternalLinks)
	return meta
}

// InternalLinks returns up to limit absolute link targets that fall under
// origin, in document order. Duplicates are kept.
func InternalLinks(doc *goquery.Document, origin *url.URL, limit int) []string {
	prefix := origin.String()
	links := []string{}
	if limit <= 0 {
		return links
	}

	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, _ := sel.Attr("href")
		ref, err := url.Parse(strings.TrimSpace(href))
		if err != nil {
			return true
		}

		resolved := origin.ResolveReference(ref).String()
		if isUnderPrefix(resolved, prefix) {
			links = append(links, resolved)
		}
		return len(links) < limit
	})

	return links
}

// isUnderPrefix reports whether u starts with prefix on a URL boundary, so
// https://example.com does not claim https://example.com.evil.org.
func isUnderPrefix(u, prefix string) bool {
	if !strings.HasPrefix(u, prefix) {
		return false
	}
	if len(u) == len(prefix) || strings.HasSuffix(prefix, "/") {
		return true
	}
	switch u[len(prefix)] {
	case '/', '?', '#':
		return true
	}
	return false
}
