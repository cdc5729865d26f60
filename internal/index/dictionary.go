package index

// Term holds one dictionary entry: the stem bytes, the accumulated posting
// list, and the running occurrence count (kept separately from posting
// cardinality since a term may occur many times within one document but
// only contributes one posting entry for it).
type Term struct {
	Stem       []byte
	Postings   *PostingList
	Occurrence int64 // total accepted occurrences anywhere, repeats included
}

// TermStats is the read-only enumeration view of a dictionary entry,
// exposed for diagnostic consumers (term counts, Zipf-law style reports)
// that sit outside the indexing/retrieval core.
type TermStats struct {
	Stem         []byte
	DocFrequency int
	Occurrence   int64
	Postings     []uint32
}

// Dictionary maps stem bytes to term records. Lookup never mutates;
// insertion during build accumulates frequency and posting entries.
// Keys are unique; enumeration order is unspecified until the caller
// sorts the result.
type Dictionary struct {
	terms map[string]*Term
}

// NewDictionary creates an empty term dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{terms: make(map[string]*Term)}
}

// Add records one occurrence of stem in docID: on first occurrence
// anywhere it creates the term record; on every occurrence it increments
// frequency and offers docID to the term's posting list (which dedups
// per document on its own).
func (d *Dictionary) Add(stem []byte, docID uint32) {
	key := string(stem)
	t, ok := d.terms[key]
	if !ok {
		t = &Term{
			Stem:     append([]byte(nil), stem...),
			Postings: NewPostingList(),
		}
		d.terms[key] = t
	}
	t.Postings.AddDocument(docID)
	t.Occurrence++
}

// Lookup returns the term record for stem, or nil if the stem was never
// indexed. Lookup never mutates the dictionary.
func (d *Dictionary) Lookup(stem []byte) *Term {
	return d.terms[string(stem)]
}

// Len returns the number of unique terms.
func (d *Dictionary) Len() int {
	return len(d.terms)
}

// Finalize sorts every term's posting list ascending. Call once after all
// documents have been indexed and before persisting.
func (d *Dictionary) Finalize() {
	for _, t := range d.terms {
		t.Postings.Finalize()
	}
}

// Terms enumerates all dictionary entries in arbitrary order.
func (d *Dictionary) Terms() []TermStats {
	out := make([]TermStats, 0, len(d.terms))
	for _, t := range d.terms {
		out = append(out, TermStats{
			Stem:         t.Stem,
			DocFrequency: t.Postings.Size(),
			Occurrence:   t.Occurrence,
			Postings:     t.Postings.IDs(),
		})
	}
	return out
}
