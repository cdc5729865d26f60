package config

import (
	"errors"
	"fmt"

	lcierrors "github.com/KochevDmitry/mai-ir/internal/errors"
)

// Validator validates a resolved Config and fills in defaults left zero
// by a partial .boolidx.kdl.
type Validator struct{}

// NewValidator creates a Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateAndSetDefaults applies smart defaults for unset (zero) fields
// and then checks cfg for invalid values. It returns an error on the first
// section that fails validation. Index.MaxFileSizeBytes has no default: a
// zero value is rejected.
func (v *Validator) ValidateAndSetDefaults(cfg *Config) error {
	v.setSmartDefaults(cfg)

	if err := v.validateProject(&cfg.Project); err != nil {
		return lcierrors.NewConfigError("project", "", err)
	}
	if err := v.validateIndex(&cfg.Index); err != nil {
		return lcierrors.NewConfigError("index", "", err)
	}
	if err := v.validateQuery(&cfg.Query); err != nil {
		return lcierrors.NewConfigError("query", "", err)
	}

	return nil
}

func (v *Validator) validateProject(p *Project) error {
	if p.Root == "" {
		return errors.New("project root cannot be empty")
	}
	return nil
}

func (v *Validator) validateIndex(idx *Index) error {
	if idx.BucketCount <= 0 {
		return fmt.Errorf("bucket count must be positive, got %d", idx.BucketCount)
	}
	if idx.MaxTokenBytes <= 0 {
		return fmt.Errorf("max token bytes must be positive, got %d", idx.MaxTokenBytes)
	}
	if idx.MaxURLBytes <= 0 {
		return fmt.Errorf("max URL bytes must be positive, got %d", idx.MaxURLBytes)
	}
	if idx.MaxURLBytes > 0xFFFF {
		return fmt.Errorf("max URL bytes cannot exceed %d, got %d", 0xFFFF, idx.MaxURLBytes)
	}
	if idx.MaxFileSizeBytes <= 0 {
		return fmt.Errorf("max file size must be positive, got %d", idx.MaxFileSizeBytes)
	}
	return nil
}

func (v *Validator) validateQuery(q *Query) error {
	if q.MaxREPLResults < 0 {
		return fmt.Errorf("max REPL results cannot be negative, got %d", q.MaxREPLResults)
	}
	if q.MaxBatchResults < 0 {
		return fmt.Errorf("max batch results cannot be negative, got %d", q.MaxBatchResults)
	}
	return nil
}

func (v *Validator) setSmartDefaults(cfg *Config) {
	if cfg.Index.BucketCount == 0 {
		cfg.Index.BucketCount = 4096
	}
	if cfg.Index.MaxTokenBytes == 0 {
		cfg.Index.MaxTokenBytes = 50
	}
	if cfg.Index.MaxURLBytes == 0 {
		cfg.Index.MaxURLBytes = 511
	}
	if cfg.Query.MaxREPLResults == 0 {
		cfg.Query.MaxREPLResults = 50
	}
	if cfg.Query.MaxBatchResults == 0 {
		cfg.Query.MaxBatchResults = 100
	}
}

// ValidateConfig is a convenience wrapper around NewValidator for callers
// that only need one-shot validation.
func ValidateConfig(cfg *Config) error {
	return NewValidator().ValidateAndSetDefaults(cfg)
}
