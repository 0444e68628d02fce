package automatic

// Data collection for automatic games: the computer playing itself.

import (
	"context"
	"encoding/csv"
	"errors"
	"expvar"
	"io"
	"runtime"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/dominoes/ai"
	"github.com/domino14/dominoes/config"
)

var (
	CVCCounter = expvar.NewInt("cvcCounter")
	IsPlaying  = expvar.NewInt("isPlaying")
)

// StartCompVComp plays numGames games of the computer against itself on
// threads workers and blocks until they finish or ctx is cancelled. Every
// turn is written as a CSV row to logfile. A cancelled run returns the
// summary of the games that did finish.
func StartCompVComp(ctx context.Context, cfg *config.Config, numGames, threads int,
	logfile io.Writer) (*Summary, error) {

	if IsPlaying.Value() > 0 {
		return nil, errors.New("games are already being played, please wait till complete")
	}
	IsPlaying.Add(1)
	defer IsPlaying.Add(-1)

	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	base := cfg.GetString(config.ConfigSeed)
	if base == "" {
		base = NewBaseSeed()
	}
	logger := zerolog.Ctx(ctx)
	logger.Info().Int("games", numGames).Int("threads", threads).Str("seed", base).Msg("starting-autoplay")
	CVCCounter.Set(0)

	jobs := make(chan int, 100)
	logChan := make(chan []string, 100)
	results := make(chan Result, 100)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(jobs)
		for i := 1; i <= numGames; i++ {
			select {
			case jobs <- i:
			case <-gctx.Done():
				logger.Info().Msg("Got stop signal, exiting soon...")
				return nil
			}
		}
		return nil
	})

	var wg sync.WaitGroup
	for t := 0; t < threads; t++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			r := NewGameRunner(logChan, ai.NewPipFrequencyPlayer(), ai.NewPipFrequencyPlayer())
			for id := range jobs {
				res, err := r.PlayGame(id, GameSeed(base, id))
				if err != nil {
					return err
				}
				CVCCounter.Add(1)
				results <- res
			}
			return nil
		})
	}
	go func() {
		wg.Wait()
		close(logChan)
		close(results)
	}()

	logDone := make(chan error, 1)
	go func() {
		w := csv.NewWriter(logfile)
		w.Write(LogHeader)
		for row := range logChan {
			w.Write(row)
		}
		w.Flush()
		logDone <- w.Error()
	}()

	summary := &Summary{}
	for res := range results {
		summary.Add(res)
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := <-logDone; err != nil {
		return nil, err
	}
	logger.Info().Int("games", summary.Games).Msg("autoplay-finished")
	return summary, nil
}
