package manabench

import "fmt"

// Published minimum-source tables from the original 2013 study, used as a
// regression baseline. Keyed by colored pip count, then turn. Turns where the
// spell is not castable are absent.
//
// Individual cells can wobble by one source between runs at finite iteration
// counts; CompareToReference reports the differences and leaves the tolerance
// judgement to the caller.
var (
	// ReferenceTable40 covers a 40-card deck with 17 lands.
	ReferenceTable40 = map[int]map[int]int{
		1: {1: 10, 2: 9, 3: 8, 4: 7, 5: 7, 6: 6, 7: 6},
		2: {2: 14, 3: 13, 4: 12, 5: 11, 6: 10, 7: 10},
		3: {3: 16, 4: 15, 5: 14, 6: 14, 7: 13},
	}

	// ReferenceTable99 covers a 99-card deck with 40 lands.
	ReferenceTable99 = map[int]map[int]int{
		1: {1: 23, 2: 21, 3: 20, 4: 18, 5: 17, 6: 16, 7: 15},
		2: {2: 33, 3: 31, 4: 29, 5: 27, 6: 26, 7: 24},
		3: {3: 37, 4: 36, 5: 34, 6: 33, 7: 32},
	}
)

// ReferenceTableFor returns the published table for a deck size, or nil when
// none was published.
func ReferenceTableFor(deckSize int) map[int]map[int]int {
	switch deckSize {
	case 40:
		return ReferenceTable40
	case 99:
		return ReferenceTable99
	default:
		return nil
	}
}

// Difference records one cell where a generated table disagrees with the
// published baseline.
type Difference struct {
	Pattern string
	Turn    int
	Got     int
	Want    int
}

func (d Difference) String() string {
	return fmt.Sprintf("%s turn %d: got %d sources, published %d", d.Pattern, d.Turn, d.Got, d.Want)
}

// CompareToReference checks every published cell against the generated table
// and returns the cells that differ. Cells missing from the generated table
// (pattern or turn outside the sweep) are skipped.
func CompareToReference(table *Table, published map[int]map[int]int) []Difference {
	var diffs []Difference

	for pips, row := range published {
		label := CostPattern{Pips: pips}.String()
		for turn, want := range row {
			got, ok := table.Lookup(label, turn)
			if !ok {
				continue
			}
			if got != want {
				diffs = append(diffs, Difference{Pattern: label, Turn: turn, Got: got, Want: want})
			}
		}
	}

	return diffs
}
