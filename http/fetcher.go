// Package http provides net/http based implementations: a docqa.Fetcher for
// web sources and the HTTP surface serving docqa.Asker.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/docqa"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultMaxBodySize is the largest response body accepted by default.
const DefaultMaxBodySize = 10 << 20

// DefaultUserAgent is sent with every request unless overridden.
const DefaultUserAgent = "docqa/1.0 (+https://github.com/fwojciec/docqa)"

// Ensure Fetcher implements docqa.Fetcher at compile time.
var _ docqa.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain HTTP requests.
// It does not execute JavaScript and never retries.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	maxBytes  int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxBodySize sets the largest response body accepted. Larger bodies
// fail with ENETWORK. Zero means no cap.
func WithMaxBodySize(n int64) Option {
	return func(f *Fetcher) {
		f.maxBytes = n
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
		maxBytes:  DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
// All failures are returned as ENETWORK errors.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", docqa.Errorf(docqa.ENETWORK, "build request for %s: %v", url, err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", docqa.Errorf(docqa.ENETWORK, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", docqa.Errorf(docqa.ENETWORK, "HTTP %d for %s", resp.StatusCode, url)
	}

	if f.maxBytes > 0 && resp.ContentLength > f.maxBytes {
		return "", docqa.Errorf(docqa.ENETWORK, "body of %s exceeds %d bytes", url, f.maxBytes)
	}

	var body io.Reader = resp.Body
	if f.maxBytes > 0 {
		body = io.LimitReader(resp.Body, f.maxBytes+1)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return "", docqa.Errorf(docqa.ENETWORK, "read body of %s: %v", url, err)
	}
	if f.maxBytes > 0 && int64(len(data)) > f.maxBytes {
		return "", docqa.Errorf(docqa.ENETWORK, "body of %s exceeds %d bytes", url, f.maxBytes)
	}

	return string(data), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
