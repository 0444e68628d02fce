package game

import (
	"github.com/rs/zerolog/log"

	"github.com/domino14/dominoes/tiles"
)

// PlayMove applies m for side and hands the turn to the other side. An
// error leaves the game untouched: ErrGameOver, ErrNotYourTurn, or the
// error from Legal.
func (g *Game) PlayMove(side Side, m Move) error {
	if g.playing.IsOver() {
		return ErrGameOver
	}
	if onturn, _ := g.playing.OnTurn(); onturn != side {
		return ErrNotYourTurn
	}
	if err := g.Legal(side, m); err != nil {
		return err
	}

	evt := g.apply(side, m)
	g.turnnum++
	evt.Turn = g.turnnum
	g.history = append(g.history, evt)
	g.playing = toMove(side.Other())
	g.checkGameStatus(evt)

	log.Debug().
		Int("turn", g.turnnum).
		Str("side", side.String()).
		Str("move", m.String()).
		Str("chain", g.chain.String()).
		Str("hand", g.players[side].handString()).
		Int("stock", g.stock.Size()).
		Str("playing", g.playing.String()).
		Msg("played-move")
	return nil
}

func (g *Game) apply(side Side, m Move) Event {
	p := g.players[side]
	evt := Event{Side: side, Nickname: p.nickname, Move: m}
	if m.IsDrawOrPass() {
		if g.stock.Empty() {
			evt.Passed = true
			return evt
		}
		evt.Tile = g.stock.Pop()
		evt.Drew = true
		p.add(evt.Tile)
		return evt
	}

	end := m.End()
	placed := Orient(p.take(m.HandIndex()), end, g.chain.EndPip(end))
	if end == RightEnd {
		g.chain.Append(placed)
	} else {
		g.chain.Prepend(placed)
	}
	evt.Tile = placed
	return evt
}

// checkGameStatus decides whether the last move ended the game. An empty
// hand wins. Otherwise, when both open ends show the same pip and all
// eight halves carrying it are already in the chain, nothing can ever be
// played again and the game is a draw. A pass with an empty stock when
// neither side has a play left is also a draw; with the full set this is
// already covered by the ends check, so it only fires for positions built
// from a partial set.
func (g *Game) checkGameStatus(last Event) {
	for _, side := range []Side{PlayerSide, ComputerSide} {
		if len(g.players[side].hand) == 0 {
			g.playing = wonBy(side)
			return
		}
	}

	if g.chain.Left() == g.chain.Right() {
		if g.chain.Count(g.chain.Left()) == tiles.MaxPipOccurrences {
			log.Debug().Int("pip", g.chain.Left()).Msg("ends-locked")
			g.playing = Draw
			return
		}
	}

	if last.Passed && g.stock.Empty() &&
		!HasLegalPlay(g.players[last.Side].hand, g.chain) &&
		!HasLegalPlay(g.players[last.Side.Other()].hand, g.chain) {
		log.Debug().Msg("no-side-can-move")
		g.playing = Draw
	}
}
