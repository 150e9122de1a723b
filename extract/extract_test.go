package extract_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/docqa"
	"github.com/fwojciec/docqa/extract"
	"github.com/fwojciec/docqa/goquery"
	"github.com/fwojciec/docqa/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract_WebURL(t *testing.T) {
	t.Parallel()

	t.Run("fetches page and returns paragraph text", func(t *testing.T) {
		t.Parallel()

		var fetched string
		ext := &extract.Extractor{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					fetched = url
					return `<html><body><p>Alpha</p><p>Beta</p></body></html>`, nil
				},
			},
			HTML: goquery.NewExtractor(),
		}

		text, err := ext.Extract(context.Background(), docqa.WebURL("https://example.com/a"))

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/a", fetched)
		assert.Equal(t, "Alpha Beta", text)
	})

	t.Run("page without paragraphs yields empty text", func(t *testing.T) {
		t.Parallel()

		ext := &extract.Extractor{
			Fetcher: &mock.Fetcher{
				FetchFn: func(context.Context, string) (string, error) {
					return `<html><body><div>no paragraphs</div></body></html>`, nil
				},
			},
			HTML: goquery.NewExtractor(),
		}

		text, err := ext.Extract(context.Background(), docqa.WebURL("https://example.com"))

		require.NoError(t, err)
		assert.Empty(t, text)
	})

	t.Run("wraps plain fetch errors as network errors", func(t *testing.T) {
		t.Parallel()

		ext := &extract.Extractor{
			Fetcher: &mock.Fetcher{
				FetchFn: func(context.Context, string) (string, error) {
					return "", errors.New("connection refused")
				},
			},
			HTML: &mock.Extractor{
				ExtractFn: func(string) (*docqa.ExtractResult, error) {
					t.Fatal("extractor must not run after a failed fetch")
					return nil, nil
				},
			},
		}

		_, err := ext.Extract(context.Background(), docqa.WebURL("https://example.com"))

		require.Error(t, err)
		assert.Equal(t, docqa.ENETWORK, docqa.ErrorCode(err))
		assert.Contains(t, docqa.ErrorMessage(err), "connection refused")
	})

	t.Run("keeps coded fetch errors", func(t *testing.T) {
		t.Parallel()

		ext := &extract.Extractor{
			Fetcher: &mock.Fetcher{
				FetchFn: func(context.Context, string) (string, error) {
					return "", docqa.Errorf(docqa.ENETWORK, "HTTP 503 for https://example.com")
				},
			},
		}

		_, err := ext.Extract(context.Background(), docqa.WebURL("https://example.com"))

		assert.Equal(t, docqa.ENETWORK, docqa.ErrorCode(err))
		assert.Equal(t, "HTTP 503 for https://example.com", docqa.ErrorMessage(err))
	})

	t.Run("reports extractor failures as decode errors", func(t *testing.T) {
		t.Parallel()

		ext := &extract.Extractor{
			Fetcher: &mock.Fetcher{
				FetchFn: func(context.Context, string) (string, error) {
					return "<html>", nil
				},
			},
			HTML: &mock.Extractor{
				ExtractFn: func(string) (*docqa.ExtractResult, error) {
					return nil, errors.New("bad markup")
				},
			},
		}

		_, err := ext.Extract(context.Background(), docqa.WebURL("https://example.com"))

		assert.Equal(t, docqa.EDECODE, docqa.ErrorCode(err))
	})
}

func TestExtractor_Extract_PDF(t *testing.T) {
	t.Parallel()

	t.Run("joins page text with spaces in page order", func(t *testing.T) {
		t.Parallel()

		ext := &extract.Extractor{
			PDF: &mock.DocumentReader{
				ReadPagesFn: func([]byte) ([]string, error) {
					return []string{"Page 1 content", "Page 2 content", "Page 3 content"}, nil
				},
			},
		}

		text, err := ext.Extract(context.Background(), docqa.PDFDocument("report.pdf", []byte("%PDF")))

		require.NoError(t, err)
		assert.Equal(t, "Page 1 content Page 2 content Page 3 content", text)
	})

	t.Run("reports reader failures as decode errors", func(t *testing.T) {
		t.Parallel()

		ext := &extract.Extractor{
			PDF: &mock.DocumentReader{
				ReadPagesFn: func([]byte) ([]string, error) {
					return nil, errors.New("xref table corrupt")
				},
			},
		}

		_, err := ext.Extract(context.Background(), docqa.PDFDocument("bad.pdf", []byte("junk")))

		require.Error(t, err)
		assert.Equal(t, docqa.EDECODE, docqa.ErrorCode(err))
	})
}

func TestExtractor_Extract_UnknownKind(t *testing.T) {
	t.Parallel()

	_, err := (&extract.Extractor{}).Extract(context.Background(), docqa.Source{})

	require.Error(t, err)
	assert.Equal(t, docqa.EINVALID, docqa.ErrorCode(err))
}
