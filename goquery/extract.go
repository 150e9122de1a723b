// Package goquery implements HTML text extraction on top of
// github.com/PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docqa"
)

// ParagraphSelector selects the body text blocks of a page.
const ParagraphSelector = "p"

// Paragraphs returns the trimmed text of every paragraph in document order.
// Paragraphs that contain only whitespace are skipped.
func Paragraphs(doc *goquery.Document) []string {
	var paras []string
	doc.Find(ParagraphSelector).Each(func(_ int, sel *goquery.Selection) {
		text := normalizeSpace(sel.Text())
		if text == "" {
			return
		}
		paras = append(paras, text)
	})
	return paras
}

// ParagraphText parses html and joins its paragraphs with single spaces.
// A document without paragraphs yields an empty string.
func ParagraphText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", docqa.Errorf(docqa.EDECODE, "failed to parse HTML: %v", err)
	}
	return strings.Join(Paragraphs(doc), " "), nil
}

// normalizeSpace collapses runs of whitespace into single spaces.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
