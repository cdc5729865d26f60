package config

import "testing"

func TestValidateAndSetDefaultsFillsZeroValues(t *testing.T) {
	cfg := &Config{
		Project: Project{Root: "/test/root"},
	}

	if err := NewValidator().ValidateAndSetDefaults(cfg); err != nil {
		t.Fatalf("ValidateAndSetDefaults failed: %v", err)
	}

	if cfg.Index.BucketCount != 4096 {
		t.Errorf("expected default bucket count 4096, got %d", cfg.Index.BucketCount)
	}
	if cfg.Index.MaxTokenBytes != 50 {
		t.Errorf("expected default max token bytes 50, got %d", cfg.Index.MaxTokenBytes)
	}
	if cfg.Index.MaxURLBytes != 511 {
		t.Errorf("expected default max URL bytes 511, got %d", cfg.Index.MaxURLBytes)
	}
	if cfg.Query.MaxREPLResults != 50 {
		t.Errorf("expected default max REPL results 50, got %d", cfg.Query.MaxREPLResults)
	}
	if cfg.Query.MaxBatchResults != 100 {
		t.Errorf("expected default max batch results 100, got %d", cfg.Query.MaxBatchResults)
	}
}

func TestValidateRejectsEmptyRoot(t *testing.T) {
	cfg := &Config{Project: Project{Root: ""}}
	if err := NewValidator().ValidateAndSetDefaults(cfg); err == nil {
		t.Fatal("expected error for empty project root")
	}
}

func TestValidateRejectsNegativeQueryLimits(t *testing.T) {
	cfg := &Config{
		Project: Project{Root: "/test/root"},
		Query:   Query{MaxREPLResults: -1},
	}
	if err := NewValidator().ValidateAndSetDefaults(cfg); err == nil {
		t.Fatal("expected error for negative MaxREPLResults")
	}
}

func TestValidateRejectsOversizeURLCap(t *testing.T) {
	cfg := &Config{
		Project: Project{Root: "/test/root"},
		Index: Index{
			BucketCount:      4096,
			MaxTokenBytes:    50,
			MaxURLBytes:      0x10000,
			MaxFileSizeBytes: 1024,
		},
	}
	if err := NewValidator().ValidateAndSetDefaults(cfg); err == nil {
		t.Fatal("expected error for MaxURLBytes exceeding uint16 range")
	}
}

func TestValidateRejectsNonPositiveFileSize(t *testing.T) {
	cfg := &Config{
		Project: Project{Root: "/test/root"},
		Index: Index{
			BucketCount:      4096,
			MaxTokenBytes:    50,
			MaxURLBytes:      511,
			MaxFileSizeBytes: 0,
		},
	}
	if err := NewValidator().ValidateAndSetDefaults(cfg); err == nil {
		t.Fatal("expected error for zero MaxFileSizeBytes")
	}
}

func TestValidateConfigConvenienceFunction(t *testing.T) {
	cfg := &Config{Project: Project{Root: "/test/root"}}
	if err := ValidateConfig(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
