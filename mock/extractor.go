package mock

import (
	"context"

	"github.com/fwojciec/docqa"
)

var _ docqa.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of docqa.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*docqa.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*docqa.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ docqa.DocumentReader = (*DocumentReader)(nil)

// DocumentReader is a mock implementation of docqa.DocumentReader.
type DocumentReader struct {
	ReadPagesFn func(data []byte) ([]string, error)
}

func (r *DocumentReader) ReadPages(data []byte) ([]string, error) {
	return r.ReadPagesFn(data)
}

var _ docqa.SourceExtractor = (*SourceExtractor)(nil)

// SourceExtractor is a mock implementation of docqa.SourceExtractor.
type SourceExtractor struct {
	ExtractFn func(ctx context.Context, src docqa.Source) (string, error)
}

func (e *SourceExtractor) Extract(ctx context.Context, src docqa.Source) (string, error) {
	return e.ExtractFn(ctx, src)
}
