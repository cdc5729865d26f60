package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v2"

	"github.com/KochevDmitry/mai-ir/internal/config"
	"github.com/KochevDmitry/mai-ir/internal/index"
	"github.com/KochevDmitry/mai-ir/internal/query"
)

var queryCommand = &cli.Command{
	Name:      "query",
	Usage:     "batch-evaluate one query per line of an input file",
	ArgsUsage: "<input_file> <output_file>",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "root", Value: ".", Usage: "project root (resolves .boolidx.kdl)"},
		&cli.StringFlag{Name: "index", Value: "index.bin", Usage: "path to the persisted index to load"},
		&cli.StringFlag{Name: "format", Value: "text", Usage: "output format: text or toml"},
	},
	Action: runQuery,
}

// batchRecord is one query's result block, shared between the plain-text
// and TOML renderings of batch mode.
type batchRecord struct {
	Query     string   `toml:"query"`
	Hits      int      `toml:"hits"`
	ElapsedMS float64  `toml:"elapsed_ms"`
	DocIDs    []uint32 `toml:"doc_ids"`
}

func runQuery(c *cli.Context) error {
	if c.NArg() != 2 {
		return fmt.Errorf("query requires <input_file> <output_file>")
	}
	inputPath, outputPath := c.Args().Get(0), c.Args().Get(1)

	cfg, err := config.Load(c.String("root"))
	if err != nil {
		return err
	}
	if err := config.NewValidator().ValidateAndSetDefaults(cfg); err != nil {
		return err
	}

	reader, err := index.Load(c.String("index"))
	if err != nil {
		return err
	}
	evaluator := query.NewEvaluator(reader)

	lines, err := readNonEmptyLines(inputPath)
	if err != nil {
		return err
	}

	records := make([]batchRecord, 0, len(lines))
	for _, line := range lines {
		start := time.Now()
		ids := evaluator.Run(line)
		elapsed := time.Since(start)

		hits := len(ids)
		limit := cfg.Query.MaxBatchResults
		if limit > 0 && len(ids) > limit {
			ids = ids[:limit]
		}
		records = append(records, batchRecord{
			Query:     line,
			Hits:      hits,
			ElapsedMS: msElapsed(elapsed),
			DocIDs:    ids,
		})
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer out.Close()

	switch c.String("format") {
	case "toml":
		err = writeTOMLBatch(out, records)
	default:
		err = writeTextBatch(out, records)
	}
	if err != nil {
		return err
	}

	logger.Info().Int("queries", len(records)).Str("out", outputPath).Msg("batch query complete")
	return nil
}

func readNonEmptyLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}

func writeTextBatch(w *os.File, records []batchRecord) error {
	buf := bufio.NewWriter(w)
	for _, r := range records {
		fmt.Fprintf(buf, "query: %s\n", r.Query)
		fmt.Fprintf(buf, "hits: %d\n", r.Hits)
		fmt.Fprintf(buf, "elapsed_ms: %.3f\n", r.ElapsedMS)
		fmt.Fprint(buf, "doc_ids:")
		for _, id := range r.DocIDs {
			fmt.Fprintf(buf, " %d", id)
		}
		fmt.Fprint(buf, "\n\n")
	}
	return buf.Flush()
}

func writeTOMLBatch(w *os.File, records []batchRecord) error {
	doc := struct {
		Result []batchRecord `toml:"result"`
	}{Result: records}
	return toml.NewEncoder(w).Encode(doc)
}
