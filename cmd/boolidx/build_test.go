package main

import (
	"path/filepath"
	"testing"

	"github.com/KochevDmitry/mai-ir/internal/index"
)

func TestLoadPreviousContentHashesMissingFile(t *testing.T) {
	hashes := loadPreviousContentHashes(filepath.Join(t.TempDir(), "absent.bin"))
	if hashes != nil {
		t.Fatalf("expected nil map for a missing prior index, got %v", hashes)
	}
}

func TestLoadPreviousContentHashesReadsExistingIndex(t *testing.T) {
	ix := index.New(511)
	ix.Dict.Add([]byte("hello"), 1)
	ix.Fwd.Add(1, "u1", 1, 0xCAFE)
	ix.Fwd.Add(2, "u2", 1, 0xBEEF)
	ix.Finalize()

	path := filepath.Join(t.TempDir(), "index.bin")
	if err := ix.Write(path); err != nil {
		t.Fatalf("write: %v", err)
	}

	hashes := loadPreviousContentHashes(path)
	if hashes["u1"] != 0xCAFE || hashes["u2"] != 0xBEEF {
		t.Fatalf("unexpected hashes: %v", hashes)
	}
}
