package query

import (
	"path/filepath"
	"testing"

	"github.com/KochevDmitry/mai-ir/internal/index"
)

// buildReader constructs the two-document corpus from the concrete query
// scenarios: doc 1 "Hello hello world" at u1, doc 2 "world peace" at u2.
func buildReader(t *testing.T) *index.Reader {
	t.Helper()
	ix := index.New(511)
	ix.Dict.Add([]byte("hello"), 1)
	ix.Dict.Add([]byte("hello"), 1)
	ix.Dict.Add([]byte("world"), 1)
	ix.Dict.Add([]byte("world"), 2)
	ix.Dict.Add([]byte("peace"), 2)
	ix.Fwd.Add(1, "u1", 3, 0)
	ix.Fwd.Add(2, "u2", 2, 0)
	ix.Finalize()

	path := filepath.Join(t.TempDir(), "index.bin")
	if err := ix.Write(path); err != nil {
		t.Fatalf("write: %v", err)
	}
	r, err := index.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return r
}

func evalIDs(t *testing.T, r *index.Reader, query string) []uint32 {
	t.Helper()
	return NewEvaluator(r).Run(query)
}

func TestEvalIntersection(t *testing.T) {
	r := buildReader(t)
	got := evalIDs(t, r, "hello && world")
	assertIDs(t, got, []uint32{1})
}

func TestEvalUnion(t *testing.T) {
	r := buildReader(t)
	got := evalIDs(t, r, "hello || peace")
	assertIDs(t, got, []uint32{1, 2})
}

func TestEvalNegation(t *testing.T) {
	r := buildReader(t)
	got := evalIDs(t, r, "!hello")
	assertIDs(t, got, []uint32{2})
}

func TestEvalImplicitAndWithParens(t *testing.T) {
	r := buildReader(t)
	got := evalIDs(t, r, "world (hello || peace)")
	assertIDs(t, got, []uint32{1, 2})
}

func TestEvalUnknownTerm(t *testing.T) {
	r := buildReader(t)
	got := evalIDs(t, r, "xyzzy && world")
	assertIDs(t, got, nil)
}

func TestEvalEmptyQueryReturnsEmptyResult(t *testing.T) {
	r := buildReader(t)
	got := NewEvaluator(r).Run("")
	assertIDs(t, got, nil)
}

func TestEvalUnmatchedParenReturnsPartialResult(t *testing.T) {
	r := buildReader(t)
	got := NewEvaluator(r).Run("(hello")
	assertIDs(t, got, []uint32{1})
}

func assertIDs(t *testing.T, got, want []uint32) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
