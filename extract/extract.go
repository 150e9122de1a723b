// Package extract turns docqa sources into plain text. Web pages are fetched
// and reduced to their paragraph text; PDF documents are read page by page.
package extract

import (
	"context"
	"strings"

	"github.com/fwojciec/docqa"
)

// Ensure Extractor implements docqa.SourceExtractor at compile time.
var _ docqa.SourceExtractor = (*Extractor)(nil)

// Extractor dispatches a source to the collaborator that understands it.
type Extractor struct {
	Fetcher docqa.Fetcher
	HTML    docqa.Extractor
	PDF     docqa.DocumentReader
}

// Extract returns the plain text of src. Fetch failures are reported as
// ENETWORK and unreadable content as EDECODE. No retries are attempted.
func (e *Extractor) Extract(ctx context.Context, src docqa.Source) (string, error) {
	switch src.Kind {
	case docqa.SourceWebURL:
		return e.extractWebURL(ctx, src.URL)
	case docqa.SourcePDF:
		return e.extractPDF(src)
	default:
		return "", docqa.Errorf(docqa.EINVALID, "unknown source kind %d", int(src.Kind))
	}
}

func (e *Extractor) extractWebURL(ctx context.Context, url string) (string, error) {
	html, err := e.Fetcher.Fetch(ctx, url)
	if err != nil {
		return "", withCode(docqa.ENETWORK, err)
	}

	result, err := e.HTML.Extract(html)
	if err != nil {
		return "", withCode(docqa.EDECODE, err)
	}

	return result.Text, nil
}

func (e *Extractor) extractPDF(src docqa.Source) (string, error) {
	pages, err := e.PDF.ReadPages(src.Data)
	if err != nil {
		return "", withCode(docqa.EDECODE, err)
	}
	return strings.Join(pages, " "), nil
}

// withCode keeps application errors as they are and wraps anything else
// under code.
func withCode(code string, err error) error {
	if docqa.ErrorCode(err) != docqa.EINTERNAL {
		return err
	}
	return docqa.Errorf(code, "%v", err)
}
