package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/KochevDmitry/mai-ir/internal/config"
	"github.com/KochevDmitry/mai-ir/internal/index"
	"github.com/KochevDmitry/mai-ir/internal/query"
)

var serveCommand = &cli.Command{
	Name:      "serve",
	Usage:     "interactive REPL evaluating one boolean query per line",
	ArgsUsage: " ",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "root", Value: ".", Usage: "project root (resolves .boolidx.kdl)"},
		&cli.StringFlag{Name: "index", Value: "index.bin", Usage: "path to the persisted index to load"},
	},
	Action: runServe,
}

func runServe(c *cli.Context) error {
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
	logger.Info().Uint32("documents", reader.DocumentCount()).Msg("index loaded")

	evaluator := query.NewEvaluator(reader)
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" {
			return nil
		}

		start := time.Now()
		ids := evaluator.Run(line)
		elapsed := time.Since(start)

		fmt.Printf("%d hits (%.3fms)\n", len(ids), msElapsed(elapsed))
		printHits(reader, ids, cfg.Query.MaxREPLResults)
	}
}

func printHits(reader *index.Reader, ids []uint32, limit int) {
	if len(ids) == 0 {
		return
	}
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}

	tbl := table.New("Rank", "Doc ID", "URL")
	for i, id := range ids {
		url := ""
		if doc, ok := reader.Document(id); ok {
			url = doc.URL
		}
		tbl.AddRow(i+1, id, url)
	}
	tbl.Print()
}

func msElapsed(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000.0
}
