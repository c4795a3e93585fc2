// Command manabench generates minimum-source tables for a deck size.
//
// Example:
//
//	manabench -deck-size 60 -patterns C,CC,2CC -max-turn 6 -iterations 100000 -seed 1
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/lmittmann/tint"

	"github.com/mtglab/manabench"
)

func main() {
	deckSize := flag.Int("deck-size", 60, "deck size (40, 60 or 99 for standard land counts)")
	lands := flag.Int("lands", 0, "total lands (0 uses the standard count for the deck size)")
	patterns := flag.String("patterns", "C,CC,CCC", "comma-separated cost patterns to sweep")
	maxTurn := flag.Int("max-turn", 7, "last turn column")
	iterations := flag.Int("iterations", manabench.DefaultIterations, "trials per candidate source count")
	target := flag.Float64("target", manabench.DefaultTargetProbability, "target probability")
	seed := flag.Uint64("seed", 0, "random seed (0 picks one per run)")
	workers := flag.Int("workers", 0, "worker goroutines (0 uses all CPUs)")
	onDraw := flag.Bool("on-draw", false, "simulate on the draw instead of on the play")
	validate := flag.Bool("validate", false, "compare against the published 2013 table when one exists")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
	}))
	slog.SetDefault(logger)

	spec := manabench.DefaultTableSpec(*deckSize)
	spec.TotalLands = *lands
	spec.MaxTurn = *maxTurn
	spec.Iterations = *iterations
	spec.Target = *target
	spec.Seed = *seed
	spec.Workers = *workers
	spec.OnPlay = !*onDraw
	spec.Logger = logger

	spec.Patterns = spec.Patterns[:0]
	for _, raw := range strings.Split(*patterns, ",") {
		pattern, err := manabench.ParsePattern(strings.TrimSpace(raw))
		if err != nil {
			logger.Error("bad pattern", "error", err)
			os.Exit(2)
		}
		spec.Patterns = append(spec.Patterns, pattern)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("generating table",
		"deck_size", spec.DeckSize,
		"patterns", *patterns,
		"max_turn", spec.MaxTurn,
		"iterations", spec.Iterations,
		"target", spec.Target,
	)

	start := time.Now()
	table, err := manabench.GenerateTable(ctx, spec, manabench.ClassicMulligan{})
	if err != nil {
		logger.Error("generation failed", "error", err)
		os.Exit(1)
	}
	logger.Info("table complete", "elapsed", time.Since(start).Round(time.Second))

	if err := manabench.WriteTable(os.Stdout, table); err != nil {
		logger.Error("write failed", "error", err)
		os.Exit(1)
	}

	if *validate {
		published := manabench.ReferenceTableFor(table.DeckSize)
		if published == nil {
			logger.Warn("no published table for this deck size", "deck_size", table.DeckSize)
			return
		}

		diffs := manabench.CompareToReference(table, published)
		if len(diffs) == 0 {
			fmt.Println("\nAll cells match the published 2013 results.")
			return
		}
		fmt.Printf("\n%d cells differ from the published 2013 results:\n", len(diffs))
		for _, d := range diffs {
			fmt.Printf("  %s\n", d)
		}
	}
}
