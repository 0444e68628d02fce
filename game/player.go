package game

import (
	"fmt"

	"github.com/domino14/dominoes/tiles"
)

// Side identifies one of the two hands at the table.
type Side int

const (
	PlayerSide Side = iota
	ComputerSide
)

func (s Side) Other() Side {
	return 1 - s
}

func (s Side) String() string {
	switch s {
	case PlayerSide:
		return "player"
	case ComputerSide:
		return "computer"
	}
	return fmt.Sprintf("side(%d)", int(s))
}

type playerState struct {
	nickname string
	hand     []tiles.Tile
}

func newPlayerState(nickname string, hand []tiles.Tile) *playerState {
	p := &playerState{nickname: nickname}
	p.setHand(hand)
	return p
}

func (p *playerState) setHand(hand []tiles.Tile) {
	p.hand = make([]tiles.Tile, len(hand))
	copy(p.hand, hand)
}

// take removes the tile at idx, keeping the order of the rest so the
// 1-based indices shown to the human stay stable.
func (p *playerState) take(idx int) tiles.Tile {
	t := p.hand[idx]
	p.hand = append(p.hand[:idx], p.hand[idx+1:]...)
	return t
}

func (p *playerState) add(t tiles.Tile) {
	p.hand = append(p.hand, t)
}

func (p *playerState) remove(t tiles.Tile) bool {
	idx := tiles.IndexOf(p.hand, t)
	if idx == -1 {
		return false
	}
	p.take(idx)
	return true
}

func (p *playerState) handCopy() []tiles.Tile {
	hand := make([]tiles.Tile, len(p.hand))
	copy(hand, p.hand)
	return hand
}

func (p *playerState) handString() string {
	return tiles.Join(p.hand)
}
