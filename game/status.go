package game

import "fmt"

// PlayState says whose action is expected next, or why the game ended.
type PlayState int

const (
	PlayerToMove PlayState = iota
	ComputerToMove
	PlayerWon
	ComputerWon
	Draw
)

func (s PlayState) String() string {
	switch s {
	case PlayerToMove:
		return "player"
	case ComputerToMove:
		return "computer"
	case PlayerWon:
		return "player_won"
	case ComputerWon:
		return "computer_won"
	case Draw:
		return "draw"
	}
	return fmt.Sprintf("playstate(%d)", int(s))
}

// IsOver reports whether s is terminal.
func (s PlayState) IsOver() bool {
	return s == PlayerWon || s == ComputerWon || s == Draw
}

// OnTurn returns the side expected to move. ok is false once the game is
// over.
func (s PlayState) OnTurn() (side Side, ok bool) {
	switch s {
	case PlayerToMove:
		return PlayerSide, true
	case ComputerToMove:
		return ComputerSide, true
	}
	return 0, false
}

func toMove(side Side) PlayState {
	if side == PlayerSide {
		return PlayerToMove
	}
	return ComputerToMove
}

func wonBy(side Side) PlayState {
	if side == PlayerSide {
		return PlayerWon
	}
	return ComputerWon
}

// StatusMessage is the line shown to the human for each state.
func (s PlayState) StatusMessage() string {
	switch s {
	case PlayerToMove:
		return "It's your turn to make a move. Enter your command."
	case ComputerToMove:
		return "Computer is about to make a move. Press Enter to continue..."
	case PlayerWon:
		return "The game is over. You won!"
	case ComputerWon:
		return "The game is over. The computer won!"
	case Draw:
		return "The game is over. It's a draw!"
	}
	return ""
}
