package manabench

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// CardType classifies a single drawn card.
type CardType uint8

const (
	// GoodLand produces the color the spell under test needs.
	GoodLand CardType = iota + 1
	// OtherLand is a land that produces the wrong color.
	OtherLand
	// Spell is any non-land card.
	Spell
)

func (c CardType) String() string {
	switch c {
	case GoodLand:
		return "good land"
	case OtherLand:
		return "other land"
	case Spell:
		return "spell"
	default:
		return fmt.Sprintf("CardType(%d)", uint8(c))
	}
}

// ErrEmptyDeck is returned when drawing from a deck with no cards remaining.
// Given a valid configuration this never happens; hitting it indicates the
// caller requested more draws than the deck holds.
var ErrEmptyDeck = errors.New("draw from empty deck")

// Deck tracks the remaining, unseen portion of a shuffled deck.
//
// Only three counters matter for manabase analysis: cards remaining, lands
// remaining, and lands remaining that produce the needed color. Drawing picks
// a uniform position among the remaining cards and classifies it by threshold,
// which is exact sampling without replacement and needs no shuffled slice.
//
// Invariant after every operation: 0 ≤ goodLands ≤ totalLands ≤ size.
//
// A Deck is owned by a single trial. It is not safe for concurrent use.
type Deck struct {
	totalLands int
	goodLands  int
	size       int
	rng        *rand.Rand
}

// NewDeck creates a deck with the given initial counters.
//
// rng is the deck's private random source. Injecting it (rather than reading
// ambient global randomness) is what makes trials reproducible under a fixed
// seed and safe to run on parallel workers.
func NewDeck(totalLands, goodLands, deckSize int, rng *rand.Rand) *Deck {
	return &Deck{
		totalLands: totalLands,
		goodLands:  goodLands,
		size:       deckSize,
		rng:        rng,
	}
}

// Reset overwrites all three counters, modelling a fresh shuffle and re-draw.
// The mulligan loop uses this between hand-size attempts; rejected hands go
// back into the deck, they are not carried over.
func (d *Deck) Reset(totalLands, goodLands, deckSize int) {
	d.totalLands = totalLands
	d.goodLands = goodLands
	d.size = deckSize
}

// Draw removes one uniformly random card from the remaining deck and reports
// its type.
//
// Position r ∈ [1, size]: r ≤ goodLands is a good land, r ≤ totalLands is some
// other land, anything beyond is a spell. Each draw decrements the matching
// counters, so successive draws are hypergeometric.
func (d *Deck) Draw() (CardType, error) {
	if d.size == 0 {
		return 0, ErrEmptyDeck
	}

	r := d.rng.IntN(d.size) + 1

	switch {
	case r <= d.goodLands:
		d.goodLands--
		d.totalLands--
		d.size--
		return GoodLand, nil
	case r <= d.totalLands:
		d.totalLands--
		d.size--
		return OtherLand, nil
	default:
		d.size--
		return Spell, nil
	}
}

// Size returns the number of cards remaining.
func (d *Deck) Size() int { return d.size }

// Lands returns the number of lands remaining.
func (d *Deck) Lands() int { return d.totalLands }

// GoodLands returns the number of color-producing lands remaining.
func (d *Deck) GoodLands() int { return d.goodLands }
