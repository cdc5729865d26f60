// Package stem implements the fixed suffix-stripping stemmer used by both
// the indexing tokenizer and the query lexer, so that stems written to the
// persistent index equal stems produced at query time.
package stem

// ending is one entry of the fixed, priority-ordered suffix table: the
// byte-exact suffix, matched against already-normalized (lowercased)
// tokens. Longer, more specific endings are listed first.
type ending struct {
	suffix string
}

// endings lists the suffix table in the required priority order: Cyrillic
// instrumental/genitive/locative plural, dative singular, adjective,
// reflexive/present/past verb endings, then bare vowel endings, then a
// small Latin list. The first matching entry wins; only one suffix is
// stripped per call.
var endings = []ending{
	{"ами"}, {"ями"},
	{"ов"}, {"ев"},
	{"ах"}, {"ях"},
	{"ом"}, {"ем"},
	{"ой"}, {"ей"}, {"ый"}, {"ий"},
	{"ая"}, {"яя"},
	{"ое"}, {"ее"},
	{"ые"}, {"ие"},
	{"ть"},
	{"ет"}, {"ит"}, {"ют"}, {"ят"},
	{"ал"}, {"ел"}, {"ил"},
	{"у"}, {"ю"}, {"а"}, {"я"}, {"ы"}, {"и"}, {"о"}, {"е"},
	{"ing"}, {"ed"}, {"ly"}, {"er"}, {"s"},
}

// minStemLength is the shortest remaining stem a suffix strip may leave
// behind; a match that would leave fewer bytes is not applied.
const minStemLength = 3

// minWordLength is the shortest input that is eligible for stemming at
// all; shorter tokens are returned unchanged.
const minWordLength = 4

// Stemmer strips at most one suffix per call into an owned scratch buffer.
// Callers must copy the returned bytes before the next call to Stem, as
// the returned slice aliases the scratch buffer and is overwritten by it.
type Stemmer struct {
	scratch [256]byte
}

// New creates a Stemmer with its own scratch buffer.
func New() *Stemmer {
	return &Stemmer{}
}

// Stem returns the stem of word, written into the Stemmer's scratch
// buffer. word must already be normalized (lowercased). Tokens shorter
// than 4 bytes are returned unchanged (copied into the scratch buffer so
// the aliasing contract still holds).
func (s *Stemmer) Stem(word []byte) []byte {
	n := copy(s.scratch[:], word)
	buf := s.scratch[:n]

	if n < minWordLength {
		return buf
	}

	for _, e := range endings {
		suf := e.suffix
		if len(buf) < len(suf) {
			continue
		}
		if string(buf[len(buf)-len(suf):]) != suf {
			continue
		}
		if len(buf)-len(suf) < minStemLength {
			continue
		}
		return s.scratch[:len(buf)-len(suf)]
	}

	return buf
}
