package main

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/dominoes/automatic"
	"github.com/domino14/dominoes/config"
	"github.com/domino14/dominoes/shell"
)

var (
	GitVersion string
)

//go:embed dominoes.txt
var dominoesbanner string

func main() {
	cfg := config.DefaultConfig()
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	output.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("%s", i)
	}
	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("%s:", i)
	}

	var logger zerolog.Logger
	if cfg.GetBool(config.ConfigDebug) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logger = zerolog.New(output).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		logger = zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	}
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger
	logger.Debug().Msg("Debug logging is on")

	if cfg.GetBool(config.ConfigNoColor) {
		color.NoColor = true
	}

	if n := cfg.GetInt(config.ConfigAutoplay); n > 0 {
		if err := autoplay(cfg, n); err != nil {
			log.Error().Err(err).Msg("autoplay-failed")
			os.Exit(1)
		}
		return
	}

	fmt.Println(dominoesbanner)
	if GitVersion != "" {
		fmt.Println(GitVersion)
	}

	idleConnsClosed := make(chan struct{})
	sig := make(chan os.Signal, 1)
	go func() {
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Debug().Msg("got quit signal...")
		close(idleConnsClosed)
	}()

	sc := shell.NewShellController(cfg)
	go sc.Loop(sig)

	<-idleConnsClosed
}

func autoplay(cfg *config.Config, numGames int) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	path := cfg.GetString(config.ConfigAutoplayLog)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	summary, err := automatic.StartCompVComp(ctx, cfg, numGames, cfg.GetInt(config.ConfigThreads), f)
	if err != nil {
		return err
	}
	fmt.Print(summary.ToDisplayText())
	log.Info().Str("path", path).Msg("wrote turn log")
	return nil
}
