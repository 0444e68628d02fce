package config

import (
	"errors"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDebug       = "debug"
	ConfigSeed        = "seed"
	ConfigNoColor     = "no-color"
	ConfigHistoryFile = "history-file"
	ConfigPlayerName  = "player-name"
	ConfigAutoplay    = "autoplay"
	ConfigThreads     = "threads"
	ConfigAutoplayLog = "autoplay-log"
)

// Config is a viper instance with the dominoes keys registered. Values
// come from flags, then DOMINOES_* environment variables, then defaults.
type Config struct {
	*viper.Viper
}

func DefaultConfig() *Config {
	c := &Config{viper.New()}
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	c.SetDefault(ConfigDebug, false)
	c.SetDefault(ConfigSeed, "")
	c.SetDefault(ConfigNoColor, false)
	c.SetDefault(ConfigHistoryFile, "/tmp/dominoes_readline.tmp")
	c.SetDefault(ConfigPlayerName, "You")
	c.SetDefault(ConfigAutoplay, 0)
	c.SetDefault(ConfigThreads, 0)
	c.SetDefault(ConfigAutoplayLog, "/tmp/dominoes_autoplay.txt")
}

// Load parses command-line args and binds the environment.
func (c *Config) Load(args []string) error {
	c.setDefaults()
	fs := pflag.NewFlagSet("dominoes", pflag.ContinueOnError)
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.String(ConfigSeed, "", "seed for the tile shuffler; empty means random")
	fs.Bool(ConfigNoColor, false, "disable colored output")
	fs.String(ConfigHistoryFile, c.GetString(ConfigHistoryFile), "readline history file")
	fs.String(ConfigPlayerName, c.GetString(ConfigPlayerName), "the human player's name")
	fs.Int(ConfigAutoplay, 0, "play this many computer-vs-computer games and exit")
	fs.Int(ConfigThreads, 0, "autoplay worker count; 0 means one per CPU")
	fs.String(ConfigAutoplayLog, c.GetString(ConfigAutoplayLog), "file for the per-turn autoplay log")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return errors.New("unexpected arguments: " + strings.Join(fs.Args(), " "))
	}
	if err := c.BindPFlags(fs); err != nil {
		return err
	}
	c.SetEnvPrefix("dominoes")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	if c.GetInt(ConfigAutoplay) < 0 {
		return errors.New("autoplay must not be negative")
	}
	if c.GetInt(ConfigThreads) < 0 {
		return errors.New("threads must not be negative")
	}
	return nil
}
