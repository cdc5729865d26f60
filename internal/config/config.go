package config

import (
	"os"
)

// Config is the resolved configuration for one boolidx project: which
// source files feed the indexer, how the index is built, and the result
// limits applied by the REPL and batch query modes.
type Config struct {
	Version int
	Project Project
	Source  Source
	Index   Index
	Query   Query
}

// Project identifies the working directory a config file was resolved
// from and an optional human-readable name for diagnostics.
type Project struct {
	Root string
	Name string
}

// Source controls which files under Project.Root are read as article
// text during a build.
type Source struct {
	Include          []string // doublestar glob patterns; empty means every file
	Exclude          []string // doublestar glob patterns, applied after Include
	RespectGitignore bool     // also exclude paths matched by .gitignore
}

// Index controls sizing and limits applied while building the persistent
// index.
type Index struct {
	BucketCount      int   // bucket count used for the post-build chain-length diagnostic
	MaxTokenBytes    int   // raw tokens at or above this length are discarded
	MaxURLBytes      int   // forward-index URL records are truncated beyond this
	MaxFileSizeBytes int64 // source files above this size are skipped
}

// Query controls result caps applied by the interactive and batch query
// drivers.
type Query struct {
	MaxREPLResults  int // hits shown per query in serve mode
	MaxBatchResults int // doc IDs emitted per query in batch mode
}

// Load resolves configuration for rootDir: project-local .boolidx.kdl,
// falling back to the compiled-in defaults if no file is present.
func Load(rootDir string) (*Config, error) {
	searchDir := rootDir
	if searchDir == "" {
		searchDir = "."
	}

	if kdlCfg, err := LoadKDL(searchDir); err != nil {
		return nil, err
	} else if kdlCfg != nil {
		return kdlCfg, nil
	}

	return defaultConfig(searchDir), nil
}

func defaultConfig(root string) *Config {
	absRoot := root
	if cwd, err := os.Getwd(); err == nil && root == "." {
		absRoot = cwd
	}

	return &Config{
		Version: 1,
		Project: Project{Root: absRoot},
		Source: Source{
			Include:          []string{},
			Exclude:          defaultExclusions(),
			RespectGitignore: true,
		},
		Index: Index{
			BucketCount:      4096,
			MaxTokenBytes:    50,
			MaxURLBytes:      511,
			MaxFileSizeBytes: 64 * 1024 * 1024,
		},
		Query: Query{
			MaxREPLResults:  50,
			MaxBatchResults: 100,
		},
	}
}

// defaultExclusions lists patterns that never carry indexable article
// text: version-control metadata, editor and OS housekeeping files, and
// the binary index artifact itself.
func defaultExclusions() []string {
	return []string{
		"**/.git/**",
		"**/.*/**",
		"**/*.swp",
		"**/*.swo",
		"**/*~",
		"**/.DS_Store",
		"**/Thumbs.db",
		"**/*.bin",
	}
}
