package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/KochevDmitry/mai-ir/internal/version"
)

// logger is shared by every subcommand; Before configures its verbosity
// from the global --quiet/--verbose flags before any command body runs.
var logger zerolog.Logger

func main() {
	app := &cli.App{
		Name:    "boolidx",
		Usage:   "boolean term-matching index builder and query server",
		Version: version.Version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "suppress progress logging",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "include debug-level progress logging",
			},
		},
		Before: func(c *cli.Context) error {
			level := zerolog.InfoLevel
			switch {
			case c.Bool("quiet"):
				level = zerolog.WarnLevel
			case c.Bool("verbose"):
				level = zerolog.DebugLevel
			}
			logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
				Level(level).
				With().
				Timestamp().
				Logger()
			return nil
		},
		Commands: []*cli.Command{
			buildCommand,
			tokensCommand,
			serveCommand,
			queryCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "boolidx:", err)
		os.Exit(1)
	}
}
