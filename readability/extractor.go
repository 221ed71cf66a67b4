// Package readability provides a siteqa.TextExtractor backed by go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/siteqa"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements siteqa.TextExtractor at compile time.
var _ siteqa.TextExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main text from HTML.
// It is selected with EXTRACTOR=readability.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText processes raw HTML and returns normalized main text.
func (e *Extractor) ExtractText(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", siteqa.Errorf(siteqa.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return "", err
	}

	return siteqa.NormalizeText(article.TextContent), nil
}
