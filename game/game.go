// Package game holds the state engine for a two-handed game of double-six
// dominoes between a human and the computer: dealing, choosing the opener,
// checking and orienting moves, and deciding when the game is over.
// A Game doesn't care how it is played; the shell and the autoplayer drive
// it from outside.
package game

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/domino14/dominoes/tiles"
)

const (
	// HandSize is the number of tiles dealt to each side.
	HandSize = 7
	// ChainDisplayKeep is how many tiles from each end of the chain the
	// display shows once the chain gets long.
	ChainDisplayKeep = 3

	DefaultPlayerName   = "You"
	DefaultComputerName = "Computer"
)

// Options configure a new game. The zero value is usable.
type Options struct {
	Shuffler     tiles.Shuffler
	PlayerName   string
	ComputerName string
}

func (o *Options) setDefaults() {
	if o.Shuffler == nil {
		o.Shuffler = tiles.DefaultShuffler()
	}
	if o.PlayerName == "" {
		o.PlayerName = DefaultPlayerName
	}
	if o.ComputerName == "" {
		o.ComputerName = DefaultComputerName
	}
}

// Game is the state of one game. Every Game owns its stock, hands and
// chain; nothing is shared between instances.
type Game struct {
	stock   *tiles.Stock
	chain   *Chain
	players [2]*playerState
	playing PlayState

	turnnum      int
	dealAttempts int
	history      []Event
}

// NewGame shuffles a full set, deals both hands and places the opening
// double. If neither hand holds a double the whole deal is redone.
func NewGame(opts Options) *Game {
	opts.setDefaults()
	g := &Game{}
	for {
		g.dealAttempts++
		g.stock = tiles.NewStock(opts.Shuffler)
		g.chain = NewChain()
		g.players[PlayerSide] = newPlayerState(opts.PlayerName, g.stock.Deal(HandSize))
		g.players[ComputerSide] = newPlayerState(opts.ComputerName, g.stock.Deal(HandSize))
		if g.placeOpener() {
			break
		}
		log.Debug().Int("attempt", g.dealAttempts).Msg("no-double-dealt-redealing")
	}
	log.Debug().
		Int("attempts", g.dealAttempts).
		Str("opener", g.chain.String()).
		Str("onturn", g.playing.String()).
		Msg("new-game")
	return g
}

// placeOpener looks for the highest double in either hand. Its holder puts
// it down as the only chain tile and the other side moves next.
func (g *Game) placeOpener() bool {
	for pip := tiles.MaxPip; pip >= 0; pip-- {
		double := tiles.Double(pip)
		for _, side := range []Side{PlayerSide, ComputerSide} {
			if g.players[side].remove(double) {
				g.chain.Append(double)
				g.playing = toMove(side.Other())
				return true
			}
		}
	}
	return false
}

// Position is an explicit game state, used to set up a game mid-play.
type Position struct {
	Stock        []tiles.Tile
	PlayerHand   []tiles.Tile
	ComputerHand []tiles.Tile
	Chain        []tiles.Tile
	Playing      PlayState
	PlayerName   string
	ComputerName string
}

// NewFromPosition builds a game from pos. It checks that no tile appears
// twice, that every tile is a double-six tile and that the chain is
// connected; it does not require all 28 tiles to be present.
func NewFromPosition(pos Position) (*Game, error) {
	opts := Options{PlayerName: pos.PlayerName, ComputerName: pos.ComputerName}
	opts.setDefaults()
	seen := map[tiles.Tile]bool{}
	for _, ts := range [][]tiles.Tile{pos.Stock, pos.PlayerHand, pos.ComputerHand, pos.Chain} {
		for _, t := range ts {
			if !t.Valid() {
				return nil, fmt.Errorf("invalid tile %v", t)
			}
			if seen[t.Canonical()] {
				return nil, fmt.Errorf("duplicate tile %v", t)
			}
			seen[t.Canonical()] = true
		}
	}
	if len(pos.Chain) == 0 {
		return nil, errors.New("position needs at least one tile in the chain")
	}
	g := &Game{
		stock:        tiles.StockFrom(pos.Stock),
		chain:        NewChain(pos.Chain...),
		playing:      pos.Playing,
		dealAttempts: 1,
	}
	if !g.chain.Connected() {
		return nil, fmt.Errorf("chain %v is not connected", g.chain)
	}
	g.players[PlayerSide] = newPlayerState(opts.PlayerName, pos.PlayerHand)
	g.players[ComputerSide] = newPlayerState(opts.ComputerName, pos.ComputerHand)
	return g, nil
}

// Validate checks that the stock, both hands and the chain together hold
// exactly the full set, and that the chain is connected.
func (g *Game) Validate() error {
	counts := map[tiles.Tile]int{}
	total := 0
	for _, ts := range [][]tiles.Tile{g.stock.Tiles(), g.players[0].hand, g.players[1].hand, g.chain.tiles} {
		for _, t := range ts {
			counts[t.Canonical()]++
			total++
		}
	}
	if total != tiles.NumTiles {
		return fmt.Errorf("game holds %d tiles, want %d", total, tiles.NumTiles)
	}
	for _, t := range tiles.FullSet() {
		if counts[t] != 1 {
			return fmt.Errorf("tile %v appears %d times", t, counts[t])
		}
	}
	if !g.chain.Connected() {
		return fmt.Errorf("chain %v is not connected", g.chain)
	}
	return nil
}

func (g *Game) Playing() PlayState {
	return g.playing
}

// SideOnTurn returns the side to move; ok is false when the game is over.
func (g *Game) SideOnTurn() (Side, bool) {
	return g.playing.OnTurn()
}

func (g *Game) Chain() *Chain {
	return NewChain(g.chain.tiles...)
}

// Hand returns a copy of side's tiles in display order.
func (g *Game) Hand(side Side) []tiles.Tile {
	return g.players[side].handCopy()
}

func (g *Game) HandSize(side Side) int {
	return len(g.players[side].hand)
}

func (g *Game) Nickname(side Side) string {
	return g.players[side].nickname
}

func (g *Game) StockSize() int {
	return g.stock.Size()
}

// Turn is the number of moves applied so far, not counting the opener.
func (g *Game) Turn() int {
	return g.turnnum
}

// DealAttempts is how many deals it took to find an opening double.
func (g *Game) DealAttempts() int {
	return g.dealAttempts
}
