package goquery_test

import (
	"net/url"
	"strings"
	"testing"

	gq "github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/siteqa"
	"github.com/fwojciec/siteqa/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure MetadataExtractor implements siteqa.MetadataExtractor at compile time.
var _ siteqa.MetadataExtractor = (*goquery.MetadataExtractor)(nil)

func TestMetadataExtractor_ExtractMetadata(t *testing.T) {
	t.Parallel()

	t.Run("extracts title and description", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title> Example Corp </title>
<meta name="keywords" content="widgets">
<meta name="description" content="We make widgets.">
</head>
<body></body>
</html>`

		meta, err := goquery.NewMetadataExtractor().ExtractMetadata(html, "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, "Example Corp", meta.Title)
		assert.Equal(t, "We make widgets.", meta.Description)
	})

	t.Run("uses defaults when title and description are missing", func(t *testing.T) {
		t.Parallel()

		html := `<html><head></head><body><p>No metadata</p></body></html>`

		meta, err := goquery.NewMetadataExtractor().ExtractMetadata(html, "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, siteqa.DefaultTitle, meta.Title)
		assert.Equal(t, siteqa.DefaultDescription, meta.Description)
		assert.NotNil(t, meta.InternalLinks)
		assert.Empty(t, meta.InternalLinks)
	})

	t.Run("uses default description when content attribute is missing", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><meta name="description"></head><body></body></html>`

		meta, err := goquery.NewMetadataExtractor().ExtractMetadata(html, "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, siteqa.DefaultDescription, meta.Description)
	})

	t.Run("resolves relative links against the origin", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a href="/about">About</a>
<a href="contact">Contact</a>
<a href="https://example.com/blog?page=2">Blog</a>
</body></html>`

		meta, err := goquery.NewMetadataExtractor().ExtractMetadata(html, "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://example.com/about",
			"https://example.com/contact",
			"https://example.com/blog?page=2",
		}, meta.InternalLinks)
	})

	t.Run("excludes other hosts and schemes", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a href="https://other.com/page">Other host</a>
<a href="https://example.com.evil.org/phish">Lookalike host</a>
<a href="http://example.com/insecure">Other scheme</a>
<a href="//cdn.example.com/file">Protocol relative</a>
<a href="mailto:hello@example.com">Mail</a>
<a href="/kept">Kept</a>
<a>No href</a>
</body></html>`

		meta, err := goquery.NewMetadataExtractor().ExtractMetadata(html, "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/kept"}, meta.InternalLinks)
	})

	t.Run("keeps first five in document order including duplicates", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<nav><a href="/one">1</a></nav>
<a href="/two">2</a>
<a href="/two">2 again</a>
<a href="https://other.com/x">skip</a>
<a href="/three">3</a>
<a href="/four">4</a>
<a href="/five">5</a>
<a href="/six">6</a>
</body></html>`

		meta, err := goquery.NewMetadataExtractor().ExtractMetadata(html, "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://example.com/one",
			"https://example.com/two",
			"https://example.com/two",
			"https://example.com/three",
			"https://example.com/four",
		}, meta.InternalLinks)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewMetadataExtractor().ExtractMetadata("", "https://example.com")

		require.Error(t, err)
		assert.Equal(t, siteqa.EINVALID, siteqa.ErrorCode(err))
	})

	t.Run("rejects invalid origin", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewMetadataExtractor().ExtractMetadata("<html></html>", "://bad")

		require.Error(t, err)
		assert.Equal(t, siteqa.EINVALID, siteqa.ErrorCode(err))
	})
}

func TestMetadataExtractor_MixedCaseHost(t *testing.T) {
	t.Parallel()

	origin, err := siteqa.NormalizeOrigin("Example.com/docs")
	require.NoError(t, err)

	html := `<html><body><a href="https://example.com/x">X</a><a href="/y">Y</a></body></html>`

	meta, err := goquery.NewMetadataExtractor().ExtractMetadata(html, origin)

	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.com/x", "https://example.com/y"}, meta.InternalLinks)
}

func TestMetadata_IsRepeatable(t *testing.T) {
	t.Parallel()

	html := `<html><head><title>T</title><meta name="description" content="D"></head>
<body><a href="/a">A</a><a href="/b">B</a></body></html>`

	doc, err := gq.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	origin, err := url.Parse("https://example.com")
	require.NoError(t, err)

	first := goquery.Metadata(doc, origin)
	second := goquery.Metadata(doc, origin)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"https://example.com/a", "https://example.com/b"}, first.InternalLinks)
}

func TestInternalLinks(t *testing.T) {
	t.Parallel()

	t.Run("respects path prefix of origin", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a href="/docs/intro">Intro</a>
<a href="/blog/post">Blog</a>
<a href="/docs">Docs root</a>
<a href="/docsearch">Lookalike path</a>
</body></html>`

		doc, err := gq.NewDocumentFromReader(strings.NewReader(html))
		require.NoError(t, err)
		origin, err := url.Parse("https://example.com/docs")
		require.NoError(t, err)

		links := goquery.InternalLinks(doc, origin, 5)

		assert.Equal(t, []string{"https://example.com/docs/intro", "https://example.com/docs"}, links)
	})

	t.Run("returns empty slice when there are no anchors", func(t *testing.T) {
		t.Parallel()

		doc, err := gq.NewDocumentFromReader(strings.NewReader(`<html><body><p>none</p></body></html>`))
		require.NoError(t, err)
		origin, err := url.Parse("https://example.com")
		require.NoError(t, err)

		links := goquery.InternalLinks(doc, origin, 5)

		assert.NotNil(t, links)
		assert.Empty(t, links)
	})
}
