package game

import (
	"github.com/domino14/dominoes/tiles"
)

// arrangingShuffler rearranges the freshly generated full set into each of
// its orders in turn, one per shuffle. It relies on NewStock starting from
// tiles.FullSet() order.
type arrangingShuffler struct {
	orders [][]tiles.Tile
	calls  int
}

func (s *arrangingShuffler) Shuffle(n int, swap func(i, j int)) {
	want := s.orders[s.calls%len(s.orders)]
	s.calls++
	cur := tiles.FullSet()
	for i := range want {
		j := i + tiles.IndexOf(cur[i:], want[i])
		if j != i {
			swap(i, j)
			cur[i], cur[j] = cur[j], cur[i]
		}
	}
}

// stackedOrder returns a stock order that deals exactly player and then
// computer (7 tiles each, in the given order) and leaves the rest in the
// stock.
func stackedOrder(player, computer []tiles.Tile) []tiles.Tile {
	dealt := append(append([]tiles.Tile{}, player...), computer...)
	order := []tiles.Tile{}
	for _, t := range tiles.FullSet() {
		if tiles.IndexOf(dealt, t) == -1 {
			order = append(order, t)
		}
	}
	// Deal pops from the end, so dealt tiles go in reverse.
	for i := len(dealt) - 1; i >= 0; i-- {
		order = append(order, dealt[i])
	}
	return order
}

func tl(pairs ...[2]int) []tiles.Tile {
	ts := make([]tiles.Tile, len(pairs))
	for i, p := range pairs {
		ts[i] = tiles.New(p[0], p[1])
	}
	return ts
}

// firstLegal picks the first playable tile, right end before left, or
// DrawOrPass.
func firstLegal(g *Game, side Side) Move {
	hand := g.Hand(side)
	for i := range hand {
		if CanPlay(hand, g.chain, PlayRight(i)) {
			return PlayRight(i)
		}
		if CanPlay(hand, g.chain, PlayLeft(i)) {
			return PlayLeft(i)
		}
	}
	return DrawOrPass
}
