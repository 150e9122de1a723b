package docqa

import (
	"net/url"
	"strings"
)

// SourceKind identifies where a Source's text comes from.
type SourceKind int

const (
	// SourceWebURL is a web page fetched over HTTP(S).
	SourceWebURL SourceKind = iota + 1
	// SourcePDF is an uploaded PDF document.
	SourcePDF
)

// String returns a short name for the kind.
func (k SourceKind) String() string {
	switch k {
	case SourceWebURL:
		return "url"
	case SourcePDF:
		return "pdf"
	default:
		return "unknown"
	}
}

// Source is one user-supplied origin of text.
// Sources are treated as immutable once handed to a session.
type Source struct {
	Kind SourceKind

	// URL is the page address for SourceWebURL.
	URL string

	// Name is an optional display name for SourcePDF (usually the file name).
	Name string

	// Data holds the raw document bytes for SourcePDF.
	Data []byte
}

// WebURL returns a Source for a web page.
func WebURL(address string) Source {
	return Source{Kind: SourceWebURL, URL: strings.TrimSpace(address)}
}

// PDFDocument returns a Source for an uploaded PDF.
func PDFDocument(name string, data []byte) Source {
	return Source{Kind: SourcePDF, Name: name, Data: data}
}

// String identifies the source in logs and warnings.
func (s Source) String() string {
	switch s.Kind {
	case SourceWebURL:
		return s.URL
	case SourcePDF:
		if s.Name != "" {
			return s.Name
		}
		return "pdf document"
	default:
		return "unknown source"
	}
}

// Validate returns an error if the source contains invalid fields.
func (s Source) Validate() error {
	switch s.Kind {
	case SourceWebURL:
		if s.URL == "" {
			return Errorf(EINVALID, "source URL required")
		}
		u, err := url.Parse(s.URL)
		if err != nil {
			return Errorf(EINVALID, "invalid source URL %q: %v", s.URL, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return Errorf(EINVALID, "unsupported URL scheme %q in %q", u.Scheme, s.URL)
		}
		if u.Host == "" {
			return Errorf(EINVALID, "source URL %q has no host", s.URL)
		}
	case SourcePDF:
		if len(s.Data) == 0 {
			return Errorf(EINVALID, "pdf document %q is empty", s.Name)
		}
	default:
		return Errorf(EINVALID, "unknown source kind %d", int(s.Kind))
	}
	return nil
}
