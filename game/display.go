package game

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/domino14/dominoes/tiles"
)

const ruleWidth = 70

var (
	doubleColor = color.New(color.FgHiYellow).SprintFunc()
	indexColor  = color.New(color.FgHiCyan).SprintFunc()
	statusColor = map[PlayState]func(a ...interface{}) string{
		PlayerToMove:   color.New(color.FgHiGreen).SprintFunc(),
		ComputerToMove: color.New(color.FgHiCyan).SprintFunc(),
		PlayerWon:      color.New(color.FgHiGreen, color.Bold).SprintFunc(),
		ComputerWon:    color.New(color.FgHiRed, color.Bold).SprintFunc(),
		Draw:           color.New(color.FgHiYellow, color.Bold).SprintFunc(),
	}
)

func paintTile(t tiles.Tile) string {
	if t.IsDouble() {
		return doubleColor(t.String())
	}
	return t.String()
}

func paintTiles(ts []tiles.Tile) string {
	var sb strings.Builder
	for _, t := range ts {
		sb.WriteString(paintTile(t))
	}
	return sb.String()
}

func (g *Game) chainDisplay() string {
	ts := g.chain.tiles
	if len(ts) <= 2*ChainDisplayKeep {
		return paintTiles(ts)
	}
	return paintTiles(ts[:ChainDisplayKeep]) + "..." + paintTiles(ts[len(ts)-ChainDisplayKeep:])
}

// ToDisplayText renders what the human is allowed to see: stock size, the
// computer's tile count (not its tiles), the chain, the human's hand with
// 1-based indices, and a status line.
func (g *Game) ToDisplayText() string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat("=", ruleWidth) + "\n")
	fmt.Fprintf(&sb, "Stock size: %d\n", g.stock.Size())
	fmt.Fprintf(&sb, "Computer pieces: %d\n\n", len(g.players[ComputerSide].hand))
	sb.WriteString(g.chainDisplay() + "\n\n")

	sb.WriteString("Your pieces:\n")
	for i, t := range g.players[PlayerSide].hand {
		fmt.Fprintf(&sb, "%s:%s\n", indexColor(i+1), paintTile(t))
	}
	sb.WriteString("\n")

	paint, ok := statusColor[g.playing]
	if !ok {
		paint = fmt.Sprint
	}
	sb.WriteString("Status: " + paint(g.playing.StatusMessage()))
	return sb.String()
}
