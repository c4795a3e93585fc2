package manabench

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedPattern is returned when a cost pattern does not match the
// digits-then-pips grammar.
var ErrMalformedPattern = errors.New("malformed cost pattern")

// CostPattern is a parsed spell cost in the table mini-language: an optional
// generic portion followed by one or more colored pips of a single color.
//
//	"C"   one pip, no generic
//	"1C"  one pip, one generic
//	"2CC" two pips, two generic
type CostPattern struct {
	// Generic is the colorless portion of the cost.
	Generic int

	// Pips is the number of colored mana symbols.
	Pips int
}

// ParsePattern parses a cost pattern string. The grammar is decimal digits
// (optional) followed by one or more literal 'C' characters; anything else
// fails with ErrMalformedPattern naming the input.
func ParsePattern(s string) (CostPattern, error) {
	digits := 0
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		digits++
	}

	pips := len(s) - digits
	if pips == 0 || strings.Count(s[digits:], "C") != pips {
		return CostPattern{}, fmt.Errorf("%w: %q", ErrMalformedPattern, s)
	}

	generic := 0
	if digits > 0 {
		var err error
		generic, err = strconv.Atoi(s[:digits])
		if err != nil {
			return CostPattern{}, fmt.Errorf("%w: %q", ErrMalformedPattern, s)
		}
	}

	return CostPattern{Generic: generic, Pips: pips}, nil
}

// CMC returns the converted mana cost: generic plus pips.
func (p CostPattern) CMC() int { return p.Generic + p.Pips }

// Castable reports whether the spell can be cast on the given turn at all:
// a spell needs at least CMC lands, so any turn before that is infeasible
// regardless of the manabase.
func (p CostPattern) Castable(turn int) bool { return turn >= p.CMC() }

// String renders the pattern back in the mini-language, e.g. "2CC".
func (p CostPattern) String() string {
	label := strings.Repeat("C", p.Pips)
	if p.Generic > 0 {
		label = strconv.Itoa(p.Generic) + label
	}
	return label
}
