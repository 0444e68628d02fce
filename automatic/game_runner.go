// Package automatic plays the computer against itself, many games at a
// time, and summarizes the results.
package automatic

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/domino14/dominoes/ai"
	"github.com/domino14/dominoes/game"
	"github.com/domino14/dominoes/tiles"
)

const (
	Player1Name = "p1"
	Player2Name = "p2"
)

// LogHeader names the columns of the per-turn log.
var LogHeader = []string{
	"gameID", "seed", "turn", "nick", "hand", "move", "tile",
	"left", "right", "stock", "playing",
}

// Result is the outcome of one game.
type Result struct {
	GameID       int
	Seed         string
	Outcome      game.PlayState
	Turns        int
	FirstToMove  game.Side
	DealAttempts int
}

// GameRunner plays whole games between two ai.Players. p1 sits on the
// game's player side and p2 on its computer side.
type GameRunner struct {
	game    *game.Game
	players [2]ai.Player
	logchan chan<- []string
}

// NewGameRunner makes a runner. logchan may be nil.
func NewGameRunner(logchan chan<- []string, p1, p2 ai.Player) *GameRunner {
	return &GameRunner{players: [2]ai.Player{p1, p2}, logchan: logchan}
}

// PlayGame deals a game from seed and plays it out. The full-set
// invariant is checked after every move.
func (r *GameRunner) PlayGame(gameID int, seed string) (Result, error) {
	r.game = game.NewGame(game.Options{
		Shuffler:     tiles.SeededShuffler(seed),
		PlayerName:   Player1Name,
		ComputerName: Player2Name,
	})
	first, _ := r.game.SideOnTurn()
	res := Result{GameID: gameID, Seed: seed, FirstToMove: first, DealAttempts: r.game.DealAttempts()}

	for !r.game.Playing().IsOver() {
		side, _ := r.game.SideOnTurn()
		if err := r.playTurn(gameID, seed, side); err != nil {
			return res, err
		}
	}
	res.Outcome = r.game.Playing()
	res.Turns = r.game.Turn()
	log.Debug().Int("game", gameID).Str("outcome", res.Outcome.String()).Int("turns", res.Turns).Msg("game-over")
	return res, nil
}

func (r *GameRunner) playTurn(gameID int, seed string, side game.Side) error {
	hand := r.game.Hand(side)
	m := r.players[side].ChooseMove(hand, r.game.Chain())
	if err := r.game.PlayMove(side, m); err != nil {
		return fmt.Errorf("game %d turn %d: %v chose %v: %w", gameID, r.game.Turn()+1, r.game.Nickname(side), m, err)
	}
	if err := r.game.Validate(); err != nil {
		return fmt.Errorf("game %d turn %d: %w", gameID, r.game.Turn(), err)
	}
	if r.logchan == nil {
		return nil
	}

	evt, _ := r.game.LastEvent()
	tile := ""
	if evt.Played() {
		tile = evt.Tile.String()
	}
	c := r.game.Chain()
	r.logchan <- []string{
		strconv.Itoa(gameID),
		seed,
		strconv.Itoa(evt.Turn),
		evt.Nickname,
		tiles.Join(hand),
		m.String(),
		tile,
		strconv.Itoa(c.Left()),
		strconv.Itoa(c.Right()),
		strconv.Itoa(r.game.StockSize()),
		r.game.Playing().String(),
	}
	return nil
}
