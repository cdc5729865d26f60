package index

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"sort"

	lcierrors "github.com/KochevDmitry/mai-ir/internal/errors"
)

// magic identifies a valid binary index file: ASCII "SIDX".
var magic = [4]byte{'S', 'I', 'D', 'X'}

// formatVersion is the only binary format version this package writes and
// accepts.
const formatVersion = 1

// headerSize is the fixed 32-byte header length; the inverted section
// always begins immediately after it.
const headerSize = 32

// Index is the in-memory representation built during indexing and handed
// to Write, or produced by Load from a persisted file.
type Index struct {
	Dict *Dictionary
	Fwd  *Forward
}

// New creates an empty Index ready for indexing. maxURLBytes caps the
// length of a document's persisted URL; see NewForward.
func New(maxURLBytes int) *Index {
	return &Index{Dict: NewDictionary(), Fwd: NewForward(maxURLBytes)}
}

// Finalize sorts every term's posting list. Call once after all documents
// have been indexed, before Write.
func (ix *Index) Finalize() {
	ix.Dict.Finalize()
}

// sortedTerm is one dictionary entry ready for writing, in final
// lexicographic order.
type sortedTerm struct {
	stem     []byte
	postings []uint32
}

// sortTerms returns every dictionary term sorted byte-wise ascending by
// stem, shorter strings ordered before a longer one sharing their prefix
// (Go's default []byte/string less-than comparison already has this
// property).
func sortTerms(d *Dictionary) []sortedTerm {
	stats := d.Terms()
	out := make([]sortedTerm, len(stats))
	for i, s := range stats {
		out[i] = sortedTerm{stem: s.Stem, postings: s.Postings}
	}
	sort.Slice(out, func(i, j int) bool {
		return string(out[i].stem) < string(out[j].stem)
	})
	return out
}

// Write persists ix to path in the binary index format: a 32-byte header,
// the inverted section in sorted term order, then the forward section.
// The forward-section offset field is patched in after both sections are
// known to exist on disk.
func (ix *Index) Write(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return lcierrors.NewIndexError("create", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	terms := sortTerms(ix.Dict)
	docs := ix.Fwd.All()

	if err := writeHeader(w, uint32(len(terms)), uint32(len(docs)), 0); err != nil {
		return lcierrors.NewIndexError("write-header", path, err)
	}
	for _, t := range terms {
		if err := writeTermRecord(w, t); err != nil {
			return lcierrors.NewIndexError("write-term", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return lcierrors.NewIndexError("flush", path, err)
	}

	forwardOffset, err := f.Seek(0, io.SeekCurrent)
	if err != nil {
		return lcierrors.NewIndexError("seek", path, err)
	}

	w = bufio.NewWriter(f)
	for _, doc := range docs {
		if err := writeDocRecord(w, doc); err != nil {
			return lcierrors.NewIndexError("write-doc", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return lcierrors.NewIndexError("flush", path, err)
	}

	if _, err := f.Seek(24, io.SeekStart); err != nil {
		return lcierrors.NewIndexError("seek", path, err)
	}
	var offBuf [8]byte
	binary.LittleEndian.PutUint64(offBuf[:], uint64(forwardOffset))
	if _, err := f.Write(offBuf[:]); err != nil {
		return lcierrors.NewIndexError("patch-offset", path, err)
	}

	return nil
}

func writeHeader(w io.Writer, termCount, docCount uint32, forwardOffset uint64) error {
	var buf [headerSize]byte
	copy(buf[0:4], magic[:])
	binary.LittleEndian.PutUint32(buf[4:8], formatVersion)
	binary.LittleEndian.PutUint32(buf[8:12], termCount)
	binary.LittleEndian.PutUint32(buf[12:16], docCount)
	binary.LittleEndian.PutUint64(buf[16:24], headerSize)
	binary.LittleEndian.PutUint64(buf[24:32], forwardOffset)
	_, err := w.Write(buf[:])
	return err
}

func writeTermRecord(w io.Writer, t sortedTerm) error {
	if len(t.stem) > 0xFFFF {
		return fmt.Errorf("term %q exceeds maximum persisted length", t.stem)
	}
	var lenBuf [2]byte
	binary.LittleEndian.PutUint16(lenBuf[:], uint16(len(t.stem)))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return err
	}
	if _, err := w.Write(t.stem); err != nil {
		return err
	}
	var countBuf [4]byte
	binary.LittleEndian.PutUint32(countBuf[:], uint32(len(t.postings)))
	if _, err := w.Write(countBuf[:]); err != nil {
		return err
	}
	for _, id := range t.postings {
		var idBuf [4]byte
		binary.LittleEndian.PutUint32(idBuf[:], id)
		if _, err := w.Write(idBuf[:]); err != nil {
			return err
		}
	}
	return nil
}

func writeDocRecord(w io.Writer, doc Document) error {
	var idBuf [4]byte
	binary.LittleEndian.PutUint32(idBuf[:], doc.ID)
	if _, err := w.Write(idBuf[:]); err != nil {
		return err
	}
	urlBytes := []byte(doc.URL)
	if len(urlBytes) > 0xFFFF {
		urlBytes = urlBytes[:0xFFFF]
	}
	var lenBuf [2]byte
	binary.LittleEndian.PutUint16(lenBuf[:], uint16(len(urlBytes)))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return err
	}
	if _, err := w.Write(urlBytes); err != nil {
		return err
	}
	var countBuf [4]byte
	binary.LittleEndian.PutUint32(countBuf[:], doc.TermCount)
	if _, err := w.Write(countBuf[:]); err != nil {
		return err
	}
	var hashBuf [8]byte
	binary.LittleEndian.PutUint64(hashBuf[:], doc.ContentHash)
	if _, err := w.Write(hashBuf[:]); err != nil {
		return err
	}
	return nil
}
