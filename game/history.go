package game

import (
	"fmt"

	"github.com/domino14/dominoes/tiles"
)

// Event records one applied move.
type Event struct {
	Turn     int
	Side     Side
	Nickname string
	Move     Move
	// Tile is the tile as placed (oriented) for plays, or the tile drawn.
	Tile   tiles.Tile
	Drew   bool
	Passed bool
}

func (e Event) Played() bool {
	return !e.Drew && !e.Passed
}

// Summary is a one-line, human readable description of the event. Drawn
// tiles are not named since they may be hidden information.
func (e Event) Summary() string {
	switch {
	case e.Drew:
		return fmt.Sprintf("%s drew a tile from the stock.", e.Nickname)
	case e.Passed:
		return fmt.Sprintf("%s passed.", e.Nickname)
	}
	return fmt.Sprintf("%s played %v on the %v end.", e.Nickname, e.Tile, e.Move.End())
}

// History returns a copy of all events so far, oldest first.
func (g *Game) History() []Event {
	h := make([]Event, len(g.history))
	copy(h, g.history)
	return h
}

// LastEvent returns the most recent event, if any.
func (g *Game) LastEvent() (Event, bool) {
	if len(g.history) == 0 {
		return Event{}, false
	}
	return g.history[len(g.history)-1], true
}
