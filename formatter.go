package siteqa

import "strings"

// FormatContent renders a scrape result as plain text for display or LLM
// context. Metadata comes first, followed by the main content. A nil
// result or nil metadata is rendered with default values.
func FormatContent(r *ScrapeResult) string {
	if r == nil {
		r = &ScrapeResult{}
	}
	meta := r.Metadata
	if meta == nil {
		meta = DefaultMetadata()
	}

	var sb strings.Builder
	if r.URL != "" {
		sb.WriteString("URL: " + r.URL + "\n")
	}
	sb.WriteString("Title: " + meta.Title + "\n")
	sb.WriteString("Description: " + meta.Description + "\n")
	if len(meta.InternalLinks) > 0 {
		sb.WriteString("Internal links:\n")
		for _, link := range meta.InternalLinks {
			sb.WriteString("- " + link + "\n")
		}
	}
	sb.WriteString("\n## Main content\n")
	sb.WriteString(r.MainContent)

	return sb.String()
}
