package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/KochevDmitry/mai-ir/internal/config"
	"github.com/KochevDmitry/mai-ir/internal/tokenize"
)

// utf8BOM prefixes tokens.csv per the documented intermediate stream
// format.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var tokensCommand = &cli.Command{
	Name:      "tokens",
	Usage:     "dump the intermediate (doc_id, token) stream as tokens.csv",
	ArgsUsage: " ",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "root", Value: ".", Usage: "project root (resolves .boolidx.kdl)"},
		&cli.StringFlag{Name: "source", Usage: "doublestar glob selecting files directly, overriding the project's configured source rules"},
		&cli.StringFlag{Name: "out", Value: "tokens.csv", Usage: "output path for the token stream"},
	},
	Action: runTokens,
}

func runTokens(c *cli.Context) error {
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

	out, err := os.Create(c.String("out"))
	if err != nil {
		return err
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	if _, err := w.Write(utf8BOM); err != nil {
		return err
	}
	if _, err := w.WriteString("doc_id,token\n"); err != nil {
		return err
	}

	tok := tokenize.New(cfg.Index.MaxTokenBytes)
	var docID uint32
	var emitted int

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
		text, _ := extractText(path, cfg.Project.Root, data)
		tok.Tokenize(text, docID, func(id uint32, stemmed []byte) {
			fmt.Fprintf(w, "%d,%s\n", id, stemmed)
			emitted++
		})
	}

	if err := w.Flush(); err != nil {
		return err
	}

	logger.Info().Int("tokens", emitted).Int("documents", int(docID)).Str("out", c.String("out")).Msg("token stream written")
	return nil
}
