// Package tiles holds the double-six domino set and the stock that tiles
// are dealt and drawn from.
package tiles

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

const (
	// MaxPip is the highest pip value on a double-six tile.
	MaxPip = 6
	// NumPips is the number of distinct pip values, 0 through MaxPip.
	NumPips = MaxPip + 1
	// NumTiles is the size of the full double-six set.
	NumTiles = NumPips * (NumPips + 1) / 2
	// MaxPipOccurrences is how many tile halves carry any one pip value
	// across the full set: six non-double tiles plus both halves of the
	// double.
	MaxPipOccurrences = NumPips + 1
)

// Tile is a domino. A and B are the left and right pips once the tile is
// placed; before that the order carries no meaning.
type Tile struct {
	A int
	B int
}

func New(a, b int) Tile {
	return Tile{A: a, B: b}
}

// Double returns the double tile for pip.
func Double(pip int) Tile {
	return Tile{A: pip, B: pip}
}

func (t Tile) IsDouble() bool {
	return t.A == t.B
}

// Has reports whether either half of the tile shows pip.
func (t Tile) Has(pip int) bool {
	return t.A == pip || t.B == pip
}

// Count returns how many halves of the tile show pip (0, 1 or 2).
func (t Tile) Count(pip int) int {
	n := 0
	if t.A == pip {
		n++
	}
	if t.B == pip {
		n++
	}
	return n
}

// Flip returns the same tile with its halves swapped. The receiver is not
// modified.
func (t Tile) Flip() Tile {
	return Tile{A: t.B, B: t.A}
}

// Equal compares tiles ignoring orientation.
func (t Tile) Equal(o Tile) bool {
	return t == o || t == o.Flip()
}

// Canonical returns the tile with its smaller pip first.
func (t Tile) Canonical() Tile {
	if t.A > t.B {
		return t.Flip()
	}
	return t
}

func (t Tile) Valid() bool {
	return t.A >= 0 && t.A <= MaxPip && t.B >= 0 && t.B <= MaxPip
}

func (t Tile) String() string {
	return fmt.Sprintf("[%d, %d]", t.A, t.B)
}

// FullSet returns all 28 tiles of the double-six set in generation order.
func FullSet() []Tile {
	set := make([]Tile, 0, NumTiles)
	for i := 0; i <= MaxPip; i++ {
		for j := i; j <= MaxPip; j++ {
			set = append(set, Tile{A: i, B: j})
		}
	}
	return set
}

// Join renders ts back to back, e.g. "[1, 2][2, 5]".
func Join(ts []Tile) string {
	return strings.Join(lo.Map(ts, func(t Tile, _ int) string { return t.String() }), "")
}

// IndexOf returns the position of t (in either orientation) in ts, or -1.
func IndexOf(ts []Tile, t Tile) int {
	for i := range ts {
		if ts[i].Equal(t) {
			return i
		}
	}
	return -1
}

// PipCounts tallies how many tile halves show each pip value.
func PipCounts(sets ...[]Tile) [NumPips]int {
	var counts [NumPips]int
	for _, ts := range sets {
		for _, t := range ts {
			counts[t.A]++
			counts[t.B]++
		}
	}
	return counts
}
