package game

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrMalformedInput means the text was not a move token at all, or
	// named a tile past the end of the hand.
	ErrMalformedInput = errors.New("malformed input")
	// ErrIllegalMove means the tile cannot attach to the chosen end.
	ErrIllegalMove = errors.New("illegal move")
	ErrNotYourTurn = errors.New("not this side's turn")
	ErrGameOver    = errors.New("game is over")
)

// End is one of the two open ends of the chain.
type End int

const (
	NoEnd End = iota
	LeftEnd
	RightEnd
)

func (e End) String() string {
	switch e {
	case LeftEnd:
		return "left"
	case RightEnd:
		return "right"
	}
	return "none"
}

// Move is a signed 1-based index into the mover's hand. A positive k plays
// tile k on the right end, -k plays it on the left end, and 0 means the
// mover cannot play: draw from the stock, or pass once it is empty.
type Move int

const DrawOrPass Move = 0

// PlayRight returns the move placing hand[idx] on the right end.
func PlayRight(idx int) Move {
	return Move(idx + 1)
}

// PlayLeft returns the move placing hand[idx] on the left end.
func PlayLeft(idx int) Move {
	return Move(-(idx + 1))
}

func (m Move) IsDrawOrPass() bool {
	return m == DrawOrPass
}

func (m Move) End() End {
	switch {
	case m > 0:
		return RightEnd
	case m < 0:
		return LeftEnd
	}
	return NoEnd
}

// HandIndex is the 0-based hand position the move refers to, or -1 for
// DrawOrPass.
func (m Move) HandIndex() int {
	switch {
	case m > 0:
		return int(m) - 1
	case m < 0:
		return int(-m) - 1
	}
	return -1
}

func (m Move) String() string {
	return strconv.Itoa(int(m))
}

// ParseMove reads the human's move. Accepted forms are a single digit, or a
// hyphen followed by a single digit, whose magnitude does not exceed
// handSize. "0" asks to draw or pass.
func ParseMove(input string, handSize int) (Move, error) {
	input = strings.TrimSpace(input)
	var digit byte
	neg := false
	switch {
	case len(input) == 1:
		digit = input[0]
	case len(input) == 2 && input[0] == '-':
		digit = input[1]
		neg = true
	default:
		return 0, ErrMalformedInput
	}
	if digit < '0' || digit > '9' {
		return 0, ErrMalformedInput
	}
	v := int(digit - '0')
	if v > handSize {
		return 0, ErrMalformedInput
	}
	if neg {
		v = -v
	}
	return Move(v), nil
}
