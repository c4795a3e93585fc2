package manabench

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// TableSpec describes one report: a deck size swept over a set of cost
// patterns and target turns.
type TableSpec struct {
	// DeckSize is the deck to analyze.
	DeckSize int

	// TotalLands overrides the standard land count for DeckSize. Zero keeps
	// the standard table.
	TotalLands int

	// Patterns are the spell costs to sweep.
	Patterns []CostPattern

	// MaxTurn is the last turn column.
	MaxTurn int

	// Iterations, Target, OnPlay, Seed and Workers carry through to every
	// underlying Config.
	Iterations int
	Target     float64
	OnPlay     bool
	Seed       uint64
	Workers    int

	// Logger receives per-cell progress. Nil uses slog.Default().
	Logger *slog.Logger
}

// DefaultTableSpec returns the sweep the reference tables use: C, CC and CCC
// over turns one through seven, on the play.
func DefaultTableSpec(deckSize int) TableSpec {
	return TableSpec{
		DeckSize: deckSize,
		Patterns: []CostPattern{
			{Pips: 1},
			{Pips: 2},
			{Pips: 3},
		},
		MaxTurn:    7,
		Iterations: DefaultIterations,
		Target:     DefaultTargetProbability,
		OnPlay:     true,
	}
}

// Table is a completed report: minimum source counts per pattern and turn.
type Table struct {
	DeckSize   int
	TotalLands int
	MaxTurn    int

	// Patterns preserves sweep order for rendering.
	Patterns []CostPattern

	// Sources maps pattern label to turn to minimum sources. Turns on which
	// the pattern is not castable at all (turn < CMC) are absent.
	Sources map[string]map[int]int
}

// Lookup returns the minimum sources for a pattern label and turn. ok is
// false when the combination was not applicable or not part of the sweep.
func (t *Table) Lookup(pattern string, turn int) (sources int, ok bool) {
	row, ok := t.Sources[pattern]
	if !ok {
		return 0, false
	}
	sources, ok = row[turn]
	return sources, ok
}

// GenerateTable runs the threshold search for every pattern and turn in the
// spec. Turns before a pattern's converted mana cost are recorded as not
// applicable rather than simulated.
func GenerateTable(ctx context.Context, spec TableSpec, policy MulliganPolicy) (*Table, error) {
	logger := spec.Logger
	if logger == nil {
		logger = slog.Default()
	}

	lands := spec.TotalLands
	if lands == 0 {
		var ok bool
		lands, ok = standardLandCounts[spec.DeckSize]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnknownDeckSize, spec.DeckSize)
		}
	}

	iterations := spec.Iterations
	if iterations == 0 {
		iterations = DefaultIterations
	}

	table := &Table{
		DeckSize:   spec.DeckSize,
		TotalLands: lands,
		MaxTurn:    spec.MaxTurn,
		Patterns:   spec.Patterns,
		Sources:    make(map[string]map[int]int, len(spec.Patterns)),
	}

	for _, pattern := range spec.Patterns {
		label := pattern.String()
		table.Sources[label] = make(map[int]int)

		for turn := 1; turn <= spec.MaxTurn; turn++ {
			if !pattern.Castable(turn) {
				logger.Debug("turn not applicable", "pattern", label, "turn", turn, "cmc", pattern.CMC())
				continue
			}

			cfg := Config{
				DeckSize:        spec.DeckSize,
				TotalLands:      lands,
				GoodLandsNeeded: pattern.Pips,
				TurnAllowed:     turn,
				Iterations:      iterations,
				OnPlay:          spec.OnPlay,
				Seed:            spec.Seed,
				Workers:         spec.Workers,
			}

			start := time.Now()
			sources, err := FindMinimumSources(ctx, cfg, spec.Target, policy)
			if err != nil {
				return nil, fmt.Errorf("pattern %s turn %d: %w", label, turn, err)
			}

			table.Sources[label][turn] = sources
			logger.Info("cell complete",
				"pattern", label,
				"turn", turn,
				"sources", sources,
				"elapsed", time.Since(start).Round(time.Millisecond),
			)
		}
	}

	return table, nil
}

// WriteTable renders the table as text. The format round-trips through
// ParseTable.
func WriteTable(w io.Writer, table *Table) error {
	rule := strings.Repeat("=", 70)

	if _, err := fmt.Fprintf(w, "%s\nRESULTS FOR %d-CARD DECK WITH %d LANDS\n%s\n",
		rule, table.DeckSize, table.TotalLands, rule); err != nil {
		return err
	}

	for _, pattern := range table.Patterns {
		label := pattern.String()

		if _, err := fmt.Fprintf(w, "\nPattern %s:\n", label); err != nil {
			return err
		}

		header := "Turn |"
		row := "Srcs |"
		for turn := 1; turn <= table.MaxTurn; turn++ {
			header += fmt.Sprintf(" %3d |", turn)
			if sources, ok := table.Lookup(label, turn); ok {
				row += fmt.Sprintf(" %3d |", sources)
			} else {
				row += "   - |"
			}
		}

		if _, err := fmt.Fprintf(w, "%s\n%s\n", header, row); err != nil {
			return err
		}
	}

	return nil
}

// ParseTable reads a rendered table back into structured form. It tolerates
// surrounding noise (log lines, blank lines) and extracts the header plus
// every pattern row, so reports captured from a terminal still parse.
func ParseTable(r io.Reader) (*Table, error) {
	table := &Table{Sources: make(map[string]map[int]int)}
	scanner := bufio.NewScanner(r)

	currentPattern := ""
	var turns []int
	headerSeen := false

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch {
		case strings.HasPrefix(line, "RESULTS FOR "):
			var deckSize, lands int
			if _, err := fmt.Sscanf(line, "RESULTS FOR %d-CARD DECK WITH %d LANDS", &deckSize, &lands); err != nil {
				return nil, fmt.Errorf("bad header %q: %w", line, err)
			}
			table.DeckSize = deckSize
			table.TotalLands = lands
			headerSeen = true

		case strings.HasPrefix(line, "Pattern ") && strings.HasSuffix(line, ":"):
			label := strings.TrimSuffix(strings.TrimPrefix(line, "Pattern "), ":")
			pattern, err := ParsePattern(label)
			if err != nil {
				return nil, err
			}
			currentPattern = pattern.String()
			table.Patterns = append(table.Patterns, pattern)
			table.Sources[currentPattern] = make(map[int]int)

		case strings.HasPrefix(line, "Turn |"):
			turns = turns[:0]
			for _, cell := range splitCells(line) {
				turn, err := strconv.Atoi(cell)
				if err != nil {
					return nil, fmt.Errorf("bad turn cell %q: %w", cell, err)
				}
				turns = append(turns, turn)
				if turn > table.MaxTurn {
					table.MaxTurn = turn
				}
			}

		case strings.HasPrefix(line, "Srcs |"):
			if currentPattern == "" {
				return nil, fmt.Errorf("source row before any pattern")
			}
			cells := splitCells(line)
			if len(cells) != len(turns) {
				return nil, fmt.Errorf("pattern %s: %d source cells for %d turns",
					currentPattern, len(cells), len(turns))
			}
			for i, cell := range cells {
				if cell == "-" {
					continue
				}
				sources, err := strconv.Atoi(cell)
				if err != nil {
					return nil, fmt.Errorf("bad source cell %q: %w", cell, err)
				}
				table.Sources[currentPattern][turns[i]] = sources
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if !headerSeen {
		return nil, fmt.Errorf("no table header found")
	}

	return table, nil
}

// splitCells breaks a "Name | a | b | c |" row into its trimmed cell values.
func splitCells(line string) []string {
	parts := strings.Split(line, "|")

	// parts[0] is the row name; a trailing separator leaves an empty tail.
	cells := make([]string, 0, len(parts))
	for _, part := range parts[1:] {
		part = strings.TrimSpace(part)
		if part != "" {
			cells = append(cells, part)
		}
	}
	return cells
}
