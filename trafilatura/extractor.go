// Package trafilatura provides a siteqa.TextExtractor backed by go-trafilatura.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/siteqa"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements siteqa.TextExtractor at compile time.
var _ siteqa.TextExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main text from HTML.
// It is selected with EXTRACTOR=trafilatura.
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

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return "", err
	}

	return siteqa.NormalizeText(result.ContentText), nil
}
