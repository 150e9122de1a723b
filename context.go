package docqa

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Extraction is the outcome of extracting a single Source.
// Exactly one of Text or Err is meaningful.
type Extraction struct {
	Source Source
	Text   string
	Err    error
}

// Failed reports whether the extraction produced an error.
func (e Extraction) Failed() bool {
	return e.Err != nil
}

// BuildContext concatenates the text of every successful extraction, in the
// order given, each followed by a single space. Failed extractions contribute
// nothing. When every extraction failed the result is the empty string.
func BuildContext(extractions []Extraction) string {
	var sb strings.Builder
	for _, e := range extractions {
		if e.Failed() {
			continue
		}
		sb.WriteString(e.Text)
		sb.WriteByte(' ')
	}
	return sb.String()
}

// Digest returns a short hex fingerprint of s.
func Digest(s string) string {
	return strconv.FormatUint(xxhash.Sum64String(s), 16)
}
