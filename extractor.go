package docqa

import "context"

// ExtractResult holds the text extracted from an HTML page.
type ExtractResult struct {
	// Text is the page body text. Pages without body text yield an empty
	// Text rather than an error.
	Text string
}

// Extractor extracts body text from HTML pages.
type Extractor interface {
	// Extract processes raw HTML and returns its body text.
	// Returns EDECODE if the markup cannot be processed.
	Extract(html string) (*ExtractResult, error)
}

// DocumentReader extracts text from page-structured documents such as PDFs.
type DocumentReader interface {
	// ReadPages returns the text of every page in page order.
	// Returns EDECODE if the document is corrupt or unreadable.
	ReadPages(data []byte) ([]string, error)
}

// SourceExtractor turns one Source into plain text.
type SourceExtractor interface {
	// Extract returns the plain text of the source.
	// Fetch failures return ENETWORK, unreadable content returns EDECODE.
	Extract(ctx context.Context, src Source) (string, error)
}
