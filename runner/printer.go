package runner

import (
	"fmt"

	"github.com/domino14/dominoes/game"
)

// ShowMove describes m for the human's hand, e.g. "2 (play [5, 1] on the
// right end)".
func (g *GameRunner) ShowMove(m game.Move) string {
	if m.IsDrawOrPass() {
		if g.StockSize() > 0 {
			return "0 (draw a tile from the stock)"
		}
		return "0 (pass)"
	}
	hand := g.Hand(game.PlayerSide)
	idx := m.HandIndex()
	if idx >= len(hand) {
		return m.String()
	}
	return fmt.Sprintf("%v (play %v on the %v end)", m, hand[idx], m.End())
}
