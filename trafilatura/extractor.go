// Package trafilatura extracts the main content of a page with go-trafilatura
// before collecting its paragraph text.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/docqa"
	"github.com/fwojciec/docqa/goquery"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements docqa.Extractor at compile time.
var _ docqa.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
// Pages trafilatura cannot handle fall back to plain paragraph extraction.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content's paragraph text.
func (e *Extractor) Extract(rawHTML string) (*docqa.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return &docqa.ExtractResult{}, nil
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil || result.ContentNode == nil {
		return goquery.NewExtractor().Extract(rawHTML)
	}

	contentHTML, err := renderNode(result.ContentNode)
	if err != nil {
		return nil, docqa.Errorf(docqa.EDECODE, "failed to render content: %v", err)
	}

	text, err := goquery.ParagraphText(contentHTML)
	if err != nil {
		return nil, err
	}

	return &docqa.ExtractResult{Text: text}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
