package manabench

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrUnknownDeckSize is returned by ConfigForDeckSize for deck sizes outside
// the standard table.
var ErrUnknownDeckSize = errors.New("unknown deck size")

// standardLandCounts maps a standard deck size to its conventional land count:
// limited (40), constructed (60), Commander (99).
var standardLandCounts = map[int]int{
	40: 17,
	60: 24,
	99: 40,
}

// Config describes one scenario to evaluate: can a deck of DeckSize cards with
// TotalLands lands produce GoodLandsNeeded colored sources by TurnAllowed.
//
// A Config is a plain value; build it once and pass it by value. Zero Seed and
// Workers pick automatic defaults at run time.
type Config struct {
	// DeckSize is the total number of cards in the deck.
	DeckSize int

	// TotalLands is the total number of lands in the deck.
	TotalLands int

	// GoodLandsNeeded is the number of colored sources the spell requires
	// (1 for C, 2 for CC, 3 for CCC).
	GoodLandsNeeded int

	// TurnAllowed is the turn by which the spell must be castable.
	TurnAllowed int

	// Iterations is the number of independent trials per candidate source
	// count.
	Iterations int

	// OnPlay is true when going first; the player on the draw sees one extra
	// card by any given turn.
	OnPlay bool

	// Seed fixes the random streams so runs are reproducible. Zero means a
	// run-dependent seed.
	Seed uint64

	// Workers is the number of goroutines trials are partitioned across.
	// Zero means runtime.NumCPU().
	Workers int
}

// DefaultIterations is the trial count per candidate when none is given.
const DefaultIterations = 1_000_000

// ConfigForDeckSize builds a Config using the standard land count for the
// deck size (17/40, 24/60, 40/99). Deck sizes outside the table fail with
// ErrUnknownDeckSize; use a Config literal to test a non-standard deck.
func ConfigForDeckSize(deckSize, goodLandsNeeded, turnAllowed int) (Config, error) {
	lands, ok := standardLandCounts[deckSize]
	if !ok {
		return Config{}, fmt.Errorf("%w: %d (supported: 40, 60, 99)", ErrUnknownDeckSize, deckSize)
	}

	return Config{
		DeckSize:        deckSize,
		TotalLands:      lands,
		GoodLandsNeeded: goodLandsNeeded,
		TurnAllowed:     turnAllowed,
		Iterations:      DefaultIterations,
		OnPlay:          true,
	}, nil
}

// Validate reports whether the configuration describes a playable scenario.
func (c Config) Validate() error {
	if c.DeckSize <= 0 {
		return fmt.Errorf("deck size must be positive, got %d", c.DeckSize)
	}
	if c.TotalLands < 0 || c.TotalLands > c.DeckSize {
		return fmt.Errorf("total lands %d outside [0, %d]", c.TotalLands, c.DeckSize)
	}
	if c.GoodLandsNeeded < 1 {
		return fmt.Errorf("good lands needed must be at least 1, got %d", c.GoodLandsNeeded)
	}
	if c.TurnAllowed < 1 {
		return fmt.Errorf("turn must be at least 1, got %d", c.TurnAllowed)
	}
	if c.Iterations <= 0 {
		return fmt.Errorf("iterations must be positive, got %d", c.Iterations)
	}
	if c.DeckSize < c.maxDraws() {
		return fmt.Errorf("deck of %d cards cannot cover %d draws by turn %d",
			c.DeckSize, c.maxDraws(), c.TurnAllowed)
	}
	return nil
}

// maxDraws is the largest number of cards a single trial can see: a full
// opening hand plus one draw per turn after the first, plus the extra card on
// the draw.
func (c Config) maxDraws() int {
	draws := 7 + c.TurnAllowed - 1
	if !c.OnPlay {
		draws++
	}
	return draws
}

// workers resolves the worker count, defaulting to the CPU count.
func (c Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.NumCPU()
}
