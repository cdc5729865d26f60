package query

import (
	"github.com/KochevDmitry/mai-ir/internal/index"
	"github.com/KochevDmitry/mai-ir/internal/setalg"
	"github.com/KochevDmitry/mai-ir/internal/stem"
	"github.com/KochevDmitry/mai-ir/internal/textutil"
)

// Evaluator walks a parsed expression tree and resolves it to a sorted,
// duplicate-free document identifier slice by applying setalg operations
// over posting lists fetched from an index.Reader. Each WORD leaf is
// normalized and stemmed exactly as at build time, so lookups hit the same
// dictionary keys the indexer wrote.
type Evaluator struct {
	reader  *index.Reader
	stemmer *stem.Stemmer
	scratch []byte
}

// NewEvaluator creates an Evaluator bound to reader.
func NewEvaluator(reader *index.Reader) *Evaluator {
	return &Evaluator{
		reader:  reader,
		stemmer: stem.New(),
		scratch: make([]byte, 0, 64),
	}
}

// Run parses and evaluates query against the bound index, returning the
// matching document identifiers in ascending order. A malformed query -
// empty, unbalanced, or dangling an operator - is never an error: it
// resolves to whatever partial expression the parser could recover, down
// to the empty set.
func (e *Evaluator) Run(query string) []uint32 {
	return e.eval(NewParser(query).Parse())
}

func (e *Evaluator) eval(n Node) []uint32 {
	switch v := n.(type) {
	case *WordNode:
		return e.evalWord(v.Text)
	case *NotNode:
		return setalg.Negate(e.eval(v.Operand), e.reader.DocumentCount())
	case *AndNode:
		return setalg.Intersect(e.eval(v.Left), e.eval(v.Right))
	case *OrNode:
		return setalg.Union(e.eval(v.Left), e.eval(v.Right))
	default:
		return nil
	}
}

// evalWord normalizes and stems raw into the term actually stored by the
// indexer, then looks it up. A term rejected by the junk filter, or one
// that was never indexed, resolves to the empty set, not an error.
func (e *Evaluator) evalWord(raw []byte) []uint32 {
	e.scratch = append(e.scratch[:0], raw...)
	normalized := textutil.Normalize(e.scratch)
	if textutil.IsJunk(normalized) {
		return nil
	}
	stemmed := e.stemmer.Stem(normalized)
	ids, ok := e.reader.Lookup(stemmed)
	if !ok {
		return nil
	}
	// Copy so the result never aliases the reader's cached posting list.
	return append([]uint32(nil), ids...)
}
