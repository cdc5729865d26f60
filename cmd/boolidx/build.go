package main

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/KochevDmitry/mai-ir/internal/config"
	"github.com/KochevDmitry/mai-ir/internal/index"
	"github.com/KochevDmitry/mai-ir/internal/tokenize"
)

var buildCommand = &cli.Command{
	Name:      "build",
	Usage:     "tokenize a source corpus and write a persistent index.bin",
	ArgsUsage: " ",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "root", Value: ".", Usage: "project root (resolves .boolidx.kdl)"},
		&cli.StringFlag{Name: "source", Usage: "doublestar glob selecting files directly, overriding the project's configured source rules"},
		&cli.StringFlag{Name: "out", Value: "index.bin", Usage: "output path for the persisted index"},
	},
	Action: runBuild,
}

func runBuild(c *cli.Context) error {
	start := time.Now()

	cfg, err := config.Load(c.String("root"))
	if err != nil {
		return err
	}
	if err := config.NewValidator().ValidateAndSetDefaults(cfg); err != nil {
		return err
	}

	files, err := discoverFiles(cfg.Project.Root, cfg, c.String("source"))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no source files matched under %s", cfg.Project.Root)
	}
	logger.Info().Int("files", len(files)).Msg("discovered source files")

	previousHashes := loadPreviousContentHashes(c.String("out"))

	ix := index.New(cfg.Index.MaxURLBytes)
	tok := tokenize.New(cfg.Index.MaxTokenBytes)

	var docID uint32
	var unchanged int
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		if int64(len(data)) > cfg.Index.MaxFileSizeBytes {
			logger.Warn().Str("path", path).Int("bytes", len(data)).Msg("skipping oversized source file")
			continue
		}

		docID++
		text, url := extractText(path, cfg.Project.Root, data)
		contentHash := index.ContentFingerprint(text)
		if prev, ok := previousHashes[url]; ok {
			if prev == contentHash {
				unchanged++
			} else {
				logger.Debug().Str("path", path).Str("url", url).Msg("content changed since previous build")
			}
		}

		var termCount uint32
		tok.Tokenize(text, docID, func(id uint32, stemmed []byte) {
			ix.Dict.Add(stemmed, id)
			termCount++
		})
		ix.Fwd.Add(docID, url, termCount, contentHash)

		logger.Debug().Str("path", path).Uint32("doc_id", docID).Uint32("terms", termCount).Msg("indexed document")
	}
	if unchanged > 0 {
		logger.Info().Int("unchanged", unchanged).Msg("documents byte-identical to previous build")
	}

	ix.Finalize()

	maxChain, usedBuckets := index.BucketHistogram(ix.Dict.Terms(), cfg.Index.BucketCount)
	logger.Debug().
		Int("bucket_count", cfg.Index.BucketCount).
		Int("used_buckets", usedBuckets).
		Int("max_chain", maxChain).
		Msg("dictionary bucket distribution")

	if err := ix.Write(c.String("out")); err != nil {
		return err
	}

	logger.Info().
		Int("terms", ix.Dict.Len()).
		Int("documents", ix.Fwd.Len()).
		Dur("elapsed", time.Since(start)).
		Str("out", c.String("out")).
		Msg("build complete")

	return nil
}

// loadPreviousContentHashes reads the content fingerprint of every document
// in an existing index at path, keyed by URL, so a rebuild can tell which
// documents changed since the last run. A missing or unreadable prior index
// (the common case: the very first build) simply yields an empty map.
func loadPreviousContentHashes(path string) map[string]uint64 {
	reader, err := index.Load(path)
	if err != nil {
		return nil
	}
	hashes := make(map[string]uint64, reader.DocumentCount())
	for _, doc := range reader.Documents() {
		hashes[doc.URL] = doc.ContentHash
	}
	return hashes
}
