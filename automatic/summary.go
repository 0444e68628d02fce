package automatic

import (
	"fmt"
	"strings"

	"github.com/aybabtme/uniplot/histogram"

	"github.com/domino14/dominoes/game"
	"github.com/domino14/dominoes/stats"
)

const (
	confidence     = 95.0
	histogramBins  = 10
	histogramWidth = 40
)

// Summary aggregates finished games.
type Summary struct {
	Games int
	// Wins is indexed by game.Side: p1 is the player side, p2 the
	// computer side.
	Wins  [2]int
	Draws int
	// FirstMoverWins counts games won by the side that moved right after
	// the opening double; draws count one half.
	FirstMoverWins float64
	Length         stats.Statistic

	lengths []float64
}

func (s *Summary) Add(r Result) {
	s.Games++
	switch r.Outcome {
	case game.PlayerWon, game.ComputerWon:
		winner := game.PlayerSide
		if r.Outcome == game.ComputerWon {
			winner = game.ComputerSide
		}
		s.Wins[winner]++
		if winner == r.FirstToMove {
			s.FirstMoverWins++
		}
	case game.Draw:
		s.Draws++
		s.FirstMoverWins += 0.5
	}
	s.Length.Push(float64(r.Turns))
	s.lengths = append(s.lengths, float64(r.Turns))
}

func (s *Summary) winLine(name string, wins int) string {
	p := stats.Proportion{Successes: float64(wins), Trials: s.Games}
	return fmt.Sprintf("%v wins: %d (%.3f%% ± %.3f%% at %.0f%% confidence)\n",
		name, wins, 100*p.Value(), 100*p.Interval(confidence), confidence)
}

func (s *Summary) ToDisplayText() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Games played: %d\n", s.Games)
	if s.Games == 0 {
		return sb.String()
	}
	sb.WriteString(s.winLine(Player1Name, s.Wins[game.PlayerSide]))
	sb.WriteString(s.winLine(Player2Name, s.Wins[game.ComputerSide]))
	fmt.Fprintf(&sb, "Draws: %d (%.3f%%)\n", s.Draws, 100*float64(s.Draws)/float64(s.Games))
	fmt.Fprintf(&sb, "Side that moved first wins: %.1f (%.3f%%)\n",
		s.FirstMoverWins, 100*s.FirstMoverWins/float64(s.Games))
	fmt.Fprintf(&sb, "Game length in turns: mean %.3f ± %.3f  stdev %.3f  min %.0f  max %.0f\n",
		s.Length.Mean(), s.Length.StandardError(), s.Length.Stdev(), s.Length.Min(), s.Length.Max())

	h := histogram.Hist(histogramBins, s.lengths)
	if err := histogram.Fprint(&sb, h, histogram.Linear(histogramWidth)); err != nil {
		fmt.Fprintf(&sb, "(could not draw histogram: %v)\n", err)
	}
	return sb.String()
}
