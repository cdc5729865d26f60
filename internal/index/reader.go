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

// LoadedTerm is one in-memory term record after loading, kept in sorted
// order for binary search by Stem.
type LoadedTerm struct {
	Stem     []byte
	Postings []uint32
}

// Reader holds the fully-materialized, immutable caches of a loaded
// binary index: the sorted term array and the forward document table.
// Queries read but never mutate these; evaluation produces owned result
// slices independent of the cached posting lists.
type Reader struct {
	terms []LoadedTerm
	fwd   *Forward
}

// DocumentCount returns N, the forward-index size at load time - the
// closed universe 1..=N used by query negation.
func (r *Reader) DocumentCount() uint32 {
	return uint32(r.fwd.Len())
}

// Document returns the forward-index record for id.
func (r *Reader) Document(id uint32) (Document, bool) {
	return r.fwd.Get(id)
}

// Documents returns every forward-index record, in on-disk (insertion)
// order.
func (r *Reader) Documents() []Document {
	return r.fwd.All()
}

// Lookup binary-searches the sorted term array for stem, returning its
// posting list or (nil, false) if the stem is unknown - not an error, per
// the query-evaluation contract.
func (r *Reader) Lookup(stem []byte) ([]uint32, bool) {
	key := string(stem)
	i := sort.Search(len(r.terms), func(i int) bool {
		return string(r.terms[i].Stem) >= key
	})
	if i < len(r.terms) && string(r.terms[i].Stem) == key {
		return r.terms[i].Postings, true
	}
	return nil, false
}

// Terms returns every loaded term record in sorted order, for diagnostic
// enumeration.
func (r *Reader) Terms() []LoadedTerm {
	return r.terms
}

// Load opens path, validates the header, and streams both sections fully
// into memory. A magic mismatch or truncated record fails the load with a
// diagnostic; there is no partial-recovery path.
func Load(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, lcierrors.NewIndexError("open", path, err)
	}
	defer f.Close()

	br := bufio.NewReader(f)

	var header [headerSize]byte
	if _, err := io.ReadFull(br, header[:]); err != nil {
		return nil, lcierrors.NewIndexError("read-header", path, err)
	}
	if header[0] != magic[0] || header[1] != magic[1] || header[2] != magic[2] || header[3] != magic[3] {
		return nil, lcierrors.NewIndexError("validate-magic", path,
			fmt.Errorf("bad magic %x, expected SIDX", header[0:4]))
	}
	version := binary.LittleEndian.Uint32(header[4:8])
	if version != formatVersion {
		return nil, lcierrors.NewIndexError("validate-version", path,
			fmt.Errorf("unsupported version %d, expected %d", version, formatVersion))
	}
	termCount := binary.LittleEndian.Uint32(header[8:12])
	docCount := binary.LittleEndian.Uint32(header[12:16])
	invertedOffset := binary.LittleEndian.Uint64(header[16:24])
	if invertedOffset != headerSize {
		return nil, lcierrors.NewIndexError("validate-header", path,
			fmt.Errorf("inverted-section offset %d, expected %d", invertedOffset, headerSize))
	}

	terms := make([]LoadedTerm, termCount)
	for i := range terms {
		t, err := readTermRecord(br)
		if err != nil {
			return nil, lcierrors.NewIndexError("read-term", path, err)
		}
		terms[i] = t
	}

	// URLs were already capped when written; accept any length the u16
	// record field can hold so loaded records match the written ones.
	fwd := NewForward(0xFFFF)
	for i := uint32(0); i < docCount; i++ {
		id, url, termCount, contentHash, err := readDocRecord(br)
		if err != nil {
			return nil, lcierrors.NewIndexError("read-doc", path, err)
		}
		fwd.Add(id, url, termCount, contentHash)
	}

	return &Reader{terms: terms, fwd: fwd}, nil
}

func readTermRecord(r io.Reader) (LoadedTerm, error) {
	var lenBuf [2]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return LoadedTerm{}, err
	}
	termLen := binary.LittleEndian.Uint16(lenBuf[:])
	stem := make([]byte, termLen)
	if _, err := io.ReadFull(r, stem); err != nil {
		return LoadedTerm{}, err
	}

	var countBuf [4]byte
	if _, err := io.ReadFull(r, countBuf[:]); err != nil {
		return LoadedTerm{}, err
	}
	docCount := binary.LittleEndian.Uint32(countBuf[:])
	postings := make([]uint32, docCount)
	for i := range postings {
		var idBuf [4]byte
		if _, err := io.ReadFull(r, idBuf[:]); err != nil {
			return LoadedTerm{}, err
		}
		postings[i] = binary.LittleEndian.Uint32(idBuf[:])
	}

	return LoadedTerm{Stem: stem, Postings: postings}, nil
}

func readDocRecord(r io.Reader) (id uint32, url string, termCount uint32, contentHash uint64, err error) {
	var idBuf [4]byte
	if _, err = io.ReadFull(r, idBuf[:]); err != nil {
		return
	}
	id = binary.LittleEndian.Uint32(idBuf[:])

	var lenBuf [2]byte
	if _, err = io.ReadFull(r, lenBuf[:]); err != nil {
		return
	}
	urlLen := binary.LittleEndian.Uint16(lenBuf[:])
	urlBytes := make([]byte, urlLen)
	if _, err = io.ReadFull(r, urlBytes); err != nil {
		return
	}
	url = string(urlBytes)

	var countBuf [4]byte
	if _, err = io.ReadFull(r, countBuf[:]); err != nil {
		return
	}
	termCount = binary.LittleEndian.Uint32(countBuf[:])

	var hashBuf [8]byte
	if _, err = io.ReadFull(r, hashBuf[:]); err != nil {
		return
	}
	contentHash = binary.LittleEndian.Uint64(hashBuf[:])
	return
}
