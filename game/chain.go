package game

import (
	"fmt"

	"github.com/domino14/dominoes/tiles"
)

// Chain is the line of tiles played so far (the "snake"). Adjacent tiles
// always share the pip at their join: tiles[i].B == tiles[i+1].A.
type Chain struct {
	tiles []tiles.Tile
}

// NewChain builds a chain from already oriented tiles.
func NewChain(ts ...tiles.Tile) *Chain {
	c := &Chain{tiles: make([]tiles.Tile, len(ts))}
	copy(c.tiles, ts)
	return c
}

func (c *Chain) Len() int {
	return len(c.tiles)
}

func (c *Chain) Empty() bool {
	return len(c.tiles) == 0
}

func (c *Chain) Tiles() []tiles.Tile {
	ts := make([]tiles.Tile, len(c.tiles))
	copy(ts, c.tiles)
	return ts
}

func (c *Chain) First() tiles.Tile {
	return c.tiles[0]
}

func (c *Chain) Last() tiles.Tile {
	return c.tiles[len(c.tiles)-1]
}

// Left is the open pip on the left end.
func (c *Chain) Left() int {
	return c.First().A
}

// Right is the open pip on the right end.
func (c *Chain) Right() int {
	return c.Last().B
}

// EndPip returns the open pip at the given end.
func (c *Chain) EndPip(end End) int {
	if end == LeftEnd {
		return c.Left()
	}
	return c.Right()
}

// Append attaches t to the right end. t must already be oriented so that
// t.A matches the right pip.
func (c *Chain) Append(t tiles.Tile) {
	if !c.Empty() && t.A != c.Right() {
		panic(fmt.Sprintf("game: %v does not join right end %d", t, c.Right()))
	}
	c.tiles = append(c.tiles, t)
}

// Prepend attaches t to the left end. t must already be oriented so that
// t.B matches the left pip.
func (c *Chain) Prepend(t tiles.Tile) {
	if !c.Empty() && t.B != c.Left() {
		panic(fmt.Sprintf("game: %v does not join left end %d", t, c.Left()))
	}
	c.tiles = append([]tiles.Tile{t}, c.tiles...)
}

// Count returns how many tile halves in the chain show pip.
func (c *Chain) Count(pip int) int {
	n := 0
	for _, t := range c.tiles {
		n += t.Count(pip)
	}
	return n
}

// Connected reports whether every join matches.
func (c *Chain) Connected() bool {
	for i := 1; i < len(c.tiles); i++ {
		if c.tiles[i-1].B != c.tiles[i].A {
			return false
		}
	}
	return true
}

// String renders the whole chain with no separators, e.g. [3, 5][5, 5].
func (c *Chain) String() string {
	return tiles.Join(c.tiles)
}
