// Package runner pairs a game with its computer opponent and performs the
// per-turn operations for either side.
package runner

import (
	"github.com/rs/zerolog/log"

	"github.com/domino14/dominoes/ai"
	"github.com/domino14/dominoes/config"
	"github.com/domino14/dominoes/game"
	"github.com/domino14/dominoes/tiles"
)

type GameRunner struct {
	*game.Game

	computer ai.Player
	shuffler tiles.Shuffler
	opts     GameOptions
}

// NewGameRunner deals a new game.
func NewGameRunner(cfg *config.Config, opts *GameOptions) *GameRunner {
	opts.SetDefaults(cfg)
	g := &GameRunner{computer: opts.Computer, shuffler: opts.shuffler(), opts: *opts}
	g.Rematch()
	return g
}

// NewGameRunnerFromPosition sets up a game mid-play.
func NewGameRunnerFromPosition(cfg *config.Config, opts *GameOptions, pos game.Position) (*GameRunner, error) {
	opts.SetDefaults(cfg)
	if pos.PlayerName == "" {
		pos.PlayerName = opts.PlayerName
	}
	if pos.ComputerName == "" {
		pos.ComputerName = opts.ComputerName
	}
	g, err := game.NewFromPosition(pos)
	if err != nil {
		return nil, err
	}
	return &GameRunner{Game: g, computer: opts.Computer, shuffler: opts.shuffler(), opts: *opts}, nil
}

// Rematch deals a fresh game with the same options. A seeded runner
// continues its random stream rather than repeating the first deal.
func (g *GameRunner) Rematch() {
	g.Game = game.NewGame(game.Options{
		Shuffler:     g.shuffler,
		PlayerName:   g.opts.PlayerName,
		ComputerName: g.opts.ComputerName,
	})
}

// HumanMove parses a line of input and plays it for the human. Any error
// leaves the game unchanged.
func (g *GameRunner) HumanMove(input string) (game.Event, error) {
	m, err := g.ParseMove(input)
	if err != nil {
		return game.Event{}, err
	}
	if err := g.PlayMove(game.PlayerSide, m); err != nil {
		return game.Event{}, err
	}
	evt, _ := g.LastEvent()
	return evt, nil
}

// ComputerMove lets the computer choose and play its move.
func (g *GameRunner) ComputerMove() (game.Event, error) {
	m := g.computer.ChooseMove(g.Hand(game.ComputerSide), g.Chain())
	log.Debug().Str("move", m.String()).Str("bot", g.computer.Name()).Msg("computer-chose")
	if err := g.PlayMove(game.ComputerSide, m); err != nil {
		return game.Event{}, err
	}
	evt, _ := g.LastEvent()
	return evt, nil
}

// Hint is the move the computer's heuristic would choose for the human's
// hand. It only looks at what the human can see.
func (g *GameRunner) Hint() game.Move {
	return g.computer.ChooseMove(g.Hand(game.PlayerSide), g.Chain())
}

func (g *GameRunner) Computer() ai.Player {
	return g.computer
}

func (g *GameRunner) IsPlaying() bool {
	return !g.Playing().IsOver()
}
