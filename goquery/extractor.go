package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docqa"
)

// Ensure Extractor implements docqa.Extractor at compile time.
var _ docqa.Extractor = (*Extractor)(nil)

// Extractor extracts the text of every <p> element of a page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses raw HTML and returns its paragraph text.
func (e *Extractor) Extract(html string) (*docqa.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, docqa.Errorf(docqa.EDECODE, "failed to parse HTML: %v", err)
	}

	return &docqa.ExtractResult{
		Text: strings.Join(Paragraphs(doc), " "),
	}, nil
}
