package index

import "testing"

func TestDictionaryAddAndLookup(t *testing.T) {
	d := NewDictionary()
	d.Add([]byte("hello"), 1)
	d.Add([]byte("hello"), 1)
	d.Add([]byte("world"), 2)

	term := d.Lookup([]byte("hello"))
	if term == nil {
		t.Fatal("expected hello to be in the dictionary")
	}
	if term.Occurrence != 2 {
		t.Errorf("expected 2 occurrences, got %d", term.Occurrence)
	}

	if d.Lookup([]byte("missing")) != nil {
		t.Error("expected missing term lookup to return nil")
	}
}

func TestDictionaryFinalizeSortsPostings(t *testing.T) {
	d := NewDictionary()
	d.Add([]byte("world"), 3)
	d.Add([]byte("world"), 1)
	d.Add([]byte("world"), 2)
	d.Finalize()

	term := d.Lookup([]byte("world"))
	ids := term.Postings.IDs()
	for i := 1; i < len(ids); i++ {
		if ids[i-1] > ids[i] {
			t.Fatalf("postings not sorted after finalize: %v", ids)
		}
	}
}

func TestDictionaryLen(t *testing.T) {
	d := NewDictionary()
	if d.Len() != 0 {
		t.Error("expected empty dictionary to have length 0")
	}
	d.Add([]byte("a"), 1)
	d.Add([]byte("b"), 1)
	d.Add([]byte("a"), 2)
	if d.Len() != 2 {
		t.Errorf("expected 2 unique terms, got %d", d.Len())
	}
}
