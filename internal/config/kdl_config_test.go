package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKDL_Defaults(t *testing.T) {
	cfg, err := parseKDL("")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 4096, cfg.Index.BucketCount)
	assert.Equal(t, 50, cfg.Index.MaxTokenBytes)
	assert.Equal(t, 511, cfg.Index.MaxURLBytes)
	assert.True(t, cfg.Source.RespectGitignore)
}

func TestParseKDL_FullConfig(t *testing.T) {
	kdlContent := `
project {
    root "."
    name "news-corpus"
}

source {
    include "articles/**/*.xml"
    exclude "articles/drafts/**"
    respect_gitignore false
}

index {
    bucket_count 8192
    max_token_bytes 40
    max_url_bytes 1023
    max_file_size "10MB"
}

query {
    max_repl_results 25
    max_batch_results 200
}
`
	cfg, err := parseKDL(kdlContent)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "news-corpus", cfg.Project.Name)
	assert.Equal(t, []string{"articles/**/*.xml"}, cfg.Source.Include)
	assert.Equal(t, []string{"articles/drafts/**"}, cfg.Source.Exclude)
	assert.False(t, cfg.Source.RespectGitignore)
	assert.Equal(t, 8192, cfg.Index.BucketCount)
	assert.Equal(t, 40, cfg.Index.MaxTokenBytes)
	assert.Equal(t, 1023, cfg.Index.MaxURLBytes)
	assert.Equal(t, int64(10*1024*1024), cfg.Index.MaxFileSizeBytes)
	assert.Equal(t, 25, cfg.Query.MaxREPLResults)
	assert.Equal(t, 200, cfg.Query.MaxBatchResults)
}

func TestParseKDL_PartialIndexConfig(t *testing.T) {
	kdlContent := `
index {
    bucket_count 2048
}
`
	cfg, err := parseKDL(kdlContent)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 2048, cfg.Index.BucketCount)
	// Untouched fields keep their defaults.
	assert.Equal(t, 50, cfg.Index.MaxTokenBytes)
}

func TestLoadKDL_MissingFileReturnsNil(t *testing.T) {
	cfg, err := LoadKDL(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestParseSize(t *testing.T) {
	cases := map[string]int64{
		"100":   100,
		"10B":   10,
		"2KB":   2 * 1024,
		"5MB":   5 * 1024 * 1024,
		"1GB":   1024 * 1024 * 1024,
		"10 MB": 10 * 1024 * 1024,
	}
	for in, want := range cases {
		got, err := parseSize(in)
		require.NoErrorf(t, err, "parsing %q", in)
		assert.Equalf(t, want, got, "parsing %q", in)
	}
}
