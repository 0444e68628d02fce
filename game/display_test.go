package game

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func init() {
	color.NoColor = true
}

func TestDisplayText(t *testing.T) {
	g, err := NewFromPosition(Position{
		Stock:        tl([2]int{0, 0}, [2]int{1, 2}),
		PlayerHand:   tl([2]int{5, 1}, [2]int{2, 4}),
		ComputerHand: tl([2]int{0, 2}, [2]int{0, 3}, [2]int{4, 4}),
		Chain:        tl([2]int{3, 5}),
		Playing:      PlayerToMove,
	})
	assert.NoError(t, err)

	expected := strings.Repeat("=", 70) + "\n" +
		"Stock size: 2\n" +
		"Computer pieces: 3\n" +
		"\n" +
		"[3, 5]\n" +
		"\n" +
		"Your pieces:\n" +
		"1:[5, 1]\n" +
		"2:[2, 4]\n" +
		"\n" +
		"Status: It's your turn to make a move. Enter your command."
	assert.Equal(t, expected, g.ToDisplayText())
}

func TestDisplayAbbreviatesLongChains(t *testing.T) {
	g, err := NewFromPosition(Position{
		PlayerHand:   tl([2]int{0, 2}),
		ComputerHand: tl([2]int{1, 3}),
		Chain:        almostLocked,
		Playing:      ComputerToMove,
	})
	assert.NoError(t, err)
	out := g.ToDisplayText()
	assert.Contains(t, out, "\n[6, 0][0, 1][1, 6]...[3, 6][6, 4][4, 5]\n")
	assert.Contains(t, out, "Computer is about to make a move. Press Enter to continue...")
	assert.NotContains(t, out, "[1, 3]")
}

func TestDisplayAbbreviatesSevenTiles(t *testing.T) {
	g, err := NewFromPosition(Position{
		PlayerHand:   tl([2]int{0, 2}),
		ComputerHand: tl([2]int{1, 3}),
		Chain:        almostLocked[:7],
		Playing:      PlayerToMove,
	})
	assert.NoError(t, err)
	out := g.ToDisplayText()
	assert.Contains(t, out, "\n[6, 0][0, 1][1, 6]...[6, 2][2, 3][3, 6]\n")
	assert.NotContains(t, out, "[6, 6]")
}

func TestDisplayShowsSixTilesInFull(t *testing.T) {
	g, err := NewFromPosition(Position{
		PlayerHand:   tl([2]int{0, 2}),
		ComputerHand: tl([2]int{1, 3}),
		Chain:        almostLocked[:6],
		Playing:      Draw,
	})
	assert.NoError(t, err)
	out := g.ToDisplayText()
	assert.Contains(t, out, "\n[6, 0][0, 1][1, 6][6, 6][6, 2][2, 3]\n")
	assert.True(t, strings.HasSuffix(out, "Status: The game is over. It's a draw!"))
}

func TestStatusMessages(t *testing.T) {
	assert.Equal(t, "The game is over. You won!", PlayerWon.StatusMessage())
	assert.Equal(t, "The game is over. The computer won!", ComputerWon.StatusMessage())
	assert.Equal(t, "player_won", PlayerWon.String())
	assert.True(t, Draw.IsOver())
	assert.False(t, ComputerToMove.IsOver())
	side, ok := ComputerToMove.OnTurn()
	assert.True(t, ok)
	assert.Equal(t, ComputerSide, side)
}
