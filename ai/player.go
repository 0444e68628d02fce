// Package ai holds the computer opponent.
package ai

import (
	"sort"

	"github.com/samber/lo"

	"github.com/domino14/dominoes/game"
	"github.com/domino14/dominoes/tiles"
)

// Player picks a move for a hand given the visible chain. Implementations
// must only return legal moves; DrawOrPass is always legal.
type Player interface {
	ChooseMove(hand []tiles.Tile, chain *game.Chain) game.Move
	Name() string
}

// Candidate is a hand tile with its heuristic score.
type Candidate struct {
	Index int
	Tile  tiles.Tile
	Score int
}

// PipFrequencyPlayer plays the tile whose pips are most common among the
// tiles it can see: its own hand plus the chain. Hidden tiles (stock and
// the opponent's hand) are never looked at.
type PipFrequencyPlayer struct{}

func NewPipFrequencyPlayer() *PipFrequencyPlayer {
	return &PipFrequencyPlayer{}
}

func (p *PipFrequencyPlayer) Name() string {
	return "pip-frequency"
}

// Rank scores every tile in hand and returns them best first. Ties keep
// hand order.
func (p *PipFrequencyPlayer) Rank(hand []tiles.Tile, chain *game.Chain) []Candidate {
	counts := tiles.PipCounts(hand, chain.Tiles())
	cands := lo.Map(hand, func(t tiles.Tile, i int) Candidate {
		return Candidate{
			Index: i,
			Tile:  t,
			Score: lo.SumBy([]int{t.A, t.B}, func(pip int) int { return counts[pip] }),
		}
	})
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].Score > cands[j].Score
	})
	return cands
}

// ChooseMove tries the ranked tiles in order, right end before left, and
// falls back to drawing or passing.
func (p *PipFrequencyPlayer) ChooseMove(hand []tiles.Tile, chain *game.Chain) game.Move {
	for _, c := range p.Rank(hand, chain) {
		for _, m := range []game.Move{game.PlayRight(c.Index), game.PlayLeft(c.Index)} {
			if game.CanPlay(hand, chain, m) {
				return m
			}
		}
	}
	return game.DrawOrPass
}
