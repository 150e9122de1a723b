// Package readability extracts the main article of a page with go-readability
// before collecting its paragraph text.
package readability

import (
	"strings"

	"github.com/fwojciec/docqa"
	"github.com/fwojciec/docqa/goquery"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements docqa.Extractor at compile time.
var _ docqa.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to drop navigation, sidebars and footers
// before paragraph extraction. Pages readability cannot handle fall back to
// plain paragraph extraction over the whole document.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the article's paragraph text.
func (e *Extractor) Extract(rawHTML string) (*docqa.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return &docqa.ExtractResult{}, nil
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil || strings.TrimSpace(article.Content) == "" {
		return goquery.NewExtractor().Extract(rawHTML)
	}

	text, err := goquery.ParagraphText(article.Content)
	if err != nil {
		return nil, err
	}

	return &docqa.ExtractResult{Text: text}, nil
}
