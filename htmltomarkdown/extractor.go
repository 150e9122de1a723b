// Package htmltomarkdown extracts page text as Markdown, keeping headings,
// lists and tables that paragraph extraction drops.
package htmltomarkdown

import (
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/docqa"
)

// Ensure Extractor implements docqa.Extractor at compile time.
var _ docqa.Extractor = (*Extractor)(nil)

var blankLines = regexp.MustCompile(`\n{3,}`)

// Extractor converts a page to Markdown with html-to-markdown.
type Extractor struct {
	conv *converter.Converter
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Extractor{conv: conv}
}

// Extract returns the Markdown rendition of the page.
func (e *Extractor) Extract(html string) (*docqa.ExtractResult, error) {
	if strings.TrimSpace(html) == "" {
		return &docqa.ExtractResult{}, nil
	}

	md, err := e.conv.ConvertString(html)
	if err != nil {
		return nil, docqa.Errorf(docqa.EDECODE, "failed to convert HTML: %v", err)
	}

	return &docqa.ExtractResult{
		Text: blankLines.ReplaceAllString(strings.TrimSpace(md), "\n\n"),
	}, nil
}
