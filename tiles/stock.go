package tiles

import (
	"crypto/sha256"

	"lukechampine.com/frand"
)

// Shuffler randomizes the order of n elements through swap. *frand.RNG
// satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// DefaultShuffler draws from a fresh, entropy-seeded generator.
func DefaultShuffler() Shuffler {
	return frand.New()
}

// SeededShuffler returns a reproducible shuffler. The same seed always
// produces the same sequence of shuffles.
func SeededShuffler(seed string) Shuffler {
	key := sha256.Sum256([]byte(seed))
	return frand.NewCustom(key[:], 1024, 12)
}

// Stock is the pile of undealt tiles. Tiles leave it from the end, either
// when hands are dealt or when a player draws.
type Stock struct {
	tiles []Tile
}

// NewStock returns a full set shuffled by s.
func NewStock(s Shuffler) *Stock {
	st := &Stock{tiles: FullSet()}
	st.Shuffle(s)
	return st
}

// StockFrom builds a stock holding exactly ts, in order. The last tile is
// the next one drawn.
func StockFrom(ts []Tile) *Stock {
	st := &Stock{tiles: make([]Tile, len(ts))}
	copy(st.tiles, ts)
	return st
}

func (st *Stock) Shuffle(s Shuffler) {
	s.Shuffle(len(st.tiles), func(i, j int) {
		st.tiles[i], st.tiles[j] = st.tiles[j], st.tiles[i]
	})
}

// Pop removes and returns the last tile. Popping an empty stock is a
// programming error.
func (st *Stock) Pop() Tile {
	n := len(st.tiles)
	if n == 0 {
		panic("tiles: pop from empty stock")
	}
	t := st.tiles[n-1]
	st.tiles = st.tiles[:n-1]
	return t
}

// Deal pops n tiles, in pop order.
func (st *Stock) Deal(n int) []Tile {
	hand := make([]Tile, 0, n)
	for i := 0; i < n; i++ {
		hand = append(hand, st.Pop())
	}
	return hand
}

func (st *Stock) Size() int {
	return len(st.tiles)
}

func (st *Stock) Empty() bool {
	return len(st.tiles) == 0
}

func (st *Stock) Tiles() []Tile {
	ts := make([]Tile, len(st.tiles))
	copy(ts, st.tiles)
	return ts
}
