package automatic

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/domino14/dominoes/game"
)

var outcomes = map[string]game.PlayState{
	game.PlayerWon.String():   game.PlayerWon,
	game.ComputerWon.String(): game.ComputerWon,
	game.Draw.String():        game.Draw,
}

// AnalyzeLogFile rebuilds the summary of a batch from its turn log. Rows
// of different games may be interleaved; games whose last logged turn is
// not a finished game are skipped.
func AnalyzeLogFile(f io.Reader) (*Summary, error) {
	r := csv.NewReader(f)
	r.FieldsPerRecord = len(LogHeader)

	games := map[int]*Result{}
	finished := map[int]bool{}
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if record[0] == LogHeader[0] {
			continue
		}
		id, err := strconv.Atoi(record[0])
		if err != nil {
			return nil, fmt.Errorf("bad game id %q: %w", record[0], err)
		}
		turn, err := strconv.Atoi(record[2])
		if err != nil {
			return nil, fmt.Errorf("bad turn %q: %w", record[2], err)
		}
		res, ok := games[id]
		if !ok {
			res = &Result{GameID: id, Seed: record[1]}
			games[id] = res
		}
		if turn == 1 {
			res.FirstToMove = game.PlayerSide
			if record[3] == Player2Name {
				res.FirstToMove = game.ComputerSide
			}
		}
		if turn >= res.Turns {
			res.Turns = turn
			res.Outcome, finished[id] = outcomes[record[10]]
		}
	}

	ids := make([]int, 0, len(games))
	for id := range games {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	summary := &Summary{}
	for _, id := range ids {
		if finished[id] {
			summary.Add(*games[id])
		}
	}
	return summary, nil
}
