package mock

import "github.com/fwojciec/siteqa"

var _ siteqa.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of siteqa.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(html string) (string, error)
}

func (e *TextExtractor) ExtractText(html string) (string, error) {
	return e.ExtractTextFn(html)
}

var _ siteqa.MetadataExtractor = (*MetadataExtractor)(nil)

// MetadataExtractor is a mock implementation of siteqa.MetadataExtractor.
type MetadataExtractor struct {
	ExtractMetadataFn func(html string, originURL string) (*siteqa.Metadata, error)
}

func (e *MetadataExtractor) ExtractMetadata(html string, originURL string) (*siteqa.Metadata, error) {
	return e.ExtractMetadataFn(html, originURL)
}
