package index

import (
	"reflect"
	"testing"
)

func TestPostingListDedup(t *testing.T) {
	p := NewPostingList()
	p.AddDocument(1)
	p.AddDocument(1)
	p.AddDocument(2)
	p.AddDocument(1)
	if p.Size() != 2 {
		t.Fatalf("expected 2 unique documents, got %d", p.Size())
	}
}

func TestPostingListFinalizeSorts(t *testing.T) {
	p := NewPostingList()
	for _, id := range []uint32{5, 1, 3, 2, 4} {
		p.AddDocument(id)
	}
	p.Finalize()
	want := []uint32{1, 2, 3, 4, 5}
	if !reflect.DeepEqual(p.IDs(), want) {
		t.Errorf("got %v, want %v", p.IDs(), want)
	}
}

func TestPostingListContains(t *testing.T) {
	p := NewPostingList()
	p.AddDocument(7)
	if !p.Contains(7) {
		t.Error("expected Contains(7) to be true")
	}
	if p.Contains(8) {
		t.Error("expected Contains(8) to be false")
	}
}
