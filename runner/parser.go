package runner

import (
	"github.com/domino14/dominoes/game"
)

// ParseMove reads a move for the human from one line of input, checked
// against the human's current hand size.
func (g *GameRunner) ParseMove(input string) (game.Move, error) {
	return game.ParseMove(input, g.HandSize(game.PlayerSide))
}
