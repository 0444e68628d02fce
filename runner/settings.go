package runner

import (
	"github.com/rs/zerolog/log"

	"github.com/domino14/dominoes/ai"
	"github.com/domino14/dominoes/config"
	"github.com/domino14/dominoes/game"
	"github.com/domino14/dominoes/tiles"
)

type GameOptions struct {
	// Seed makes the deal reproducible. Empty means a random deal.
	Seed         string
	PlayerName   string
	ComputerName string
	Computer     ai.Player
}

func (opts *GameOptions) SetDefaults(cfg *config.Config) {
	if opts.Seed == "" {
		opts.Seed = cfg.GetString(config.ConfigSeed)
		if opts.Seed != "" {
			log.Info().Msgf("using seed %q", opts.Seed)
		}
	}
	if opts.PlayerName == "" {
		opts.PlayerName = cfg.GetString(config.ConfigPlayerName)
	}
	if opts.ComputerName == "" {
		opts.ComputerName = game.DefaultComputerName
	}
	if opts.Computer == nil {
		opts.Computer = ai.NewPipFrequencyPlayer()
		log.Debug().Msgf("using default computer player %v", opts.Computer.Name())
	}
}

func (opts *GameOptions) shuffler() tiles.Shuffler {
	if opts.Seed == "" {
		return tiles.DefaultShuffler()
	}
	return tiles.SeededShuffler(opts.Seed)
}
