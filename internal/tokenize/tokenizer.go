// Package tokenize segments raw document bytes into accepted stems and
// feeds them to an indexing sink, tying together textutil normalization,
// the junk filter, and the stemmer.
package tokenize

import (
	"github.com/KochevDmitry/mai-ir/internal/stem"
	"github.com/KochevDmitry/mai-ir/internal/textutil"
)

// defaultMaxTokenBytes is used when New is given a non-positive cap.
const defaultMaxTokenBytes = 50

// isDelimiter reports whether b is one of the fixed tokenizer delimiters.
func isDelimiter(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n',
		',', '.', '!', '?', ';', ':',
		'(', ')', '[', ']', '"', '\'',
		'-', '_', '/', '\\':
		return true
	}
	return false
}

// Sink receives one accepted (stemmed, normalized) token occurrence at a
// time, tagged with the document it came from. The stem slice aliases the
// tokenizer's internal scratch buffer and must be copied if retained past
// the call.
type Sink func(docID uint32, stemmed []byte)

// Tokenizer segments byte buffers into accepted stems, owning the scratch
// buffer used for per-token normalization and stemming.
type Tokenizer struct {
	stemmer       *stem.Stemmer
	scratch       []byte
	maxTokenBytes int
}

// New creates a Tokenizer. maxTokenBytes caps a raw token's byte length;
// tokens at or above this length are silently discarded before
// normalization. A non-positive value falls back to defaultMaxTokenBytes.
func New(maxTokenBytes int) *Tokenizer {
	if maxTokenBytes <= 0 {
		maxTokenBytes = defaultMaxTokenBytes
	}
	return &Tokenizer{
		stemmer:       stem.New(),
		scratch:       make([]byte, 0, maxTokenBytes),
		maxTokenBytes: maxTokenBytes,
	}
}

// Tokenize scans buf for delimiter-separated runs, normalizes, junk-filters
// and stems each accepted raw token, and feeds the result to sink tagged
// with docID. Runs of zero length or at least maxTokenBytes long are
// rejected before normalization, matching the source's hard cap.
func (t *Tokenizer) Tokenize(buf []byte, docID uint32, sink Sink) {
	i := 0
	n := len(buf)
	for i < n {
		for i < n && isDelimiter(buf[i]) {
			i++
		}
		if i >= n {
			break
		}
		start := i
		for i < n && !isDelimiter(buf[i]) {
			i++
		}
		raw := buf[start:i]
		if len(raw) == 0 || len(raw) >= t.maxTokenBytes {
			continue
		}

		t.scratch = append(t.scratch[:0], raw...)
		normalized := textutil.Normalize(t.scratch)
		if textutil.IsJunk(normalized) {
			continue
		}

		stemmed := t.stemmer.Stem(normalized)
		sink(docID, stemmed)
	}
}
