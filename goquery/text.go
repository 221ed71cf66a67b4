// Package goquery implements siteqa's heuristic extractors on top of
// github.com/PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/siteqa"
	"golang.org/x/net/html"
)

// Ensure TextExtractor implements siteqa.TextExtractor at compile time.
var _ siteqa.TextExtractor = (*TextExtractor)(nil)

// noiseSelector matches elements whose text never belongs to main content.
const noiseSelector = "script, style, header, footer, nav, aside, form"

// ContentCandidate names a selector tried when locating the main content.
type ContentCandidate struct {
	Name     string
	Selector string
}

// ContentCandidates lists main-content containers in priority order.
// The first selector with a match wins. The body candidate matches every
// parsed document; SelectContainer falls back to the whole tree otherwise.
var ContentCandidates = []ContentCandidate{
	{Name: "main", Selector: "main"},
	{Name: "article", Selector: "article"},
	{Name: "content", Selector: ".content"},
	{Name: "body", Selector: "body"},
}

// TextExtractor extracts main-content text by picking the first matching
// container from ContentCandidates after dropping noise elements.
type TextExtractor struct{}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// ExtractText parses raw HTML and returns the normalized main-content text.
func (e *TextExtractor) ExtractText(rawHTML string) (string, error) {
	doc, err := parse(rawHTML)
	if err != nil {
		return "", err
	}
	return MainText(doc), nil
}

// MainText returns the normalized main-content text of doc.
// Noise removal happens on a copy, so doc is left untouched and repeated
// calls return the same text.
func MainText(doc *goquery.Document) string {
	root := doc.Selection.Clone()
	root.Find(noiseSelector).Remove()

	container := SelectContainer(root)
	return siteqa.NormalizeText(linearize(container))
}

// SelectContainer returns the first element in root matching a candidate
// from ContentCandidates, or root itself when nothing matches. Documents
// built by the HTML parser always have a body, so the root fallback only
// applies to selections that lack one, such as fragments or trees edited
// after parsing.
func SelectContainer(root *goquery.Selection) *goquery.Selection {
	for _, c := range ContentCandidates {
		if sel := root.Find(c.Selector).First(); sel.Length() > 0 {
			return sel
		}
	}
	return root
}

// linearize joins every text node under sel with a newline so adjacent
// blocks never run together.
func linearize(sel *goquery.Selection) string {
	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			parts = append(parts, n.Data)
			return
		case html.CommentNode, html.DoctypeNode:
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return strings.Join(parts, "\n")
}

// parse builds a goquery document, rejecting empty input.
func parse(rawHTML string) (*goquery.Document, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, siteqa.Errorf(siteqa.EINVALID, "empty HTML input")
	}

	// Scripting off, so noscript children are parsed as elements rather
	// than one raw text node.
	root, err := html.ParseWithOptions(strings.NewReader(rawHTML), html.ParseOptionEnableScripting(false))
	if err != nil {
		return nil, siteqa.Errorf(siteqa.EINVALID, "failed to parse HTML: %v", err)
	}
	return goquery.NewDocumentFromNode(root), nil
}
