package game

import (
	"github.com/domino14/dominoes/tiles"
)

// Fits reports whether t can attach to the given end of c.
func Fits(t tiles.Tile, c *Chain, end End) bool {
	if c.Empty() || end == NoEnd {
		return false
	}
	return t.Has(c.EndPip(end))
}

// Orient returns t turned so that the half touching the chain shows endPip:
// on the right end that is t.A, on the left end t.B. The far half becomes
// the new open end. t itself is left alone.
func Orient(t tiles.Tile, end End, endPip int) tiles.Tile {
	switch end {
	case RightEnd:
		if t.A != endPip {
			return t.Flip()
		}
	case LeftEnd:
		if t.B != endPip {
			return t.Flip()
		}
	}
	return t
}

// CanPlay is the silent form of Legal, used when trying candidate moves.
func CanPlay(hand []tiles.Tile, c *Chain, m Move) bool {
	if m.IsDrawOrPass() {
		return true
	}
	idx := m.HandIndex()
	if idx >= len(hand) {
		return false
	}
	return Fits(hand[idx], c, m.End())
}

// HasLegalPlay reports whether any tile in hand attaches to either end.
func HasLegalPlay(hand []tiles.Tile, c *Chain) bool {
	for _, t := range hand {
		if Fits(t, c, LeftEnd) || Fits(t, c, RightEnd) {
			return true
		}
	}
	return false
}

// Legal checks m for side against the current chain. DrawOrPass is always
// legal. An index past the hand is ErrMalformedInput; a tile that does not
// match the chosen end is ErrIllegalMove.
func (g *Game) Legal(side Side, m Move) error {
	if m.IsDrawOrPass() {
		return nil
	}
	hand := g.players[side].hand
	if m.HandIndex() >= len(hand) {
		return ErrMalformedInput
	}
	if !CanPlay(hand, g.chain, m) {
		return ErrIllegalMove
	}
	return nil
}
