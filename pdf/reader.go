// Package pdf implements docqa.DocumentReader using github.com/ledongthuc/pdf.
package pdf

import (
	"bytes"
	"strings"

	"github.com/fwojciec/docqa"
	"github.com/ledongthuc/pdf"
)

// Ensure Reader implements docqa.DocumentReader at compile time.
var _ docqa.DocumentReader = (*Reader)(nil)

// Reader extracts plain text from PDF documents page by page.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadPages returns the text of every page in page order. Pages without a
// content stream yield an empty string. A document that cannot be parsed, or
// any page whose text cannot be extracted, returns EDECODE.
func (r *Reader) ReadPages(data []byte) (pages []string, err error) {
	if len(data) == 0 {
		return nil, docqa.Errorf(docqa.EDECODE, "empty PDF document")
	}

	// The parser panics on some malformed inputs.
	defer func() {
		if rec := recover(); rec != nil {
			pages = nil
			err = docqa.Errorf(docqa.EDECODE, "malformed PDF: %v", rec)
		}
	}()

	doc, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, docqa.Errorf(docqa.EDECODE, "failed to open PDF: %v", err)
	}

	n := doc.NumPage()
	pages = make([]string, 0, n)
	for num := 1; num <= n; num++ {
		page := doc.Page(num)
		if page.V.IsNull() || page.V.Key("Contents").Kind() == pdf.Null {
			pages = append(pages, "")
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, docqa.Errorf(docqa.EDECODE, "failed to read page %d: %v", num, err)
		}
		pages = append(pages, strings.TrimSpace(text))
	}

	return pages, nil
}
