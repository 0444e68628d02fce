// Package shell is the console front end: it shows the game after every
// move, reads the human's moves and steps the computer through its turns.
package shell

import (
	"errors"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/domino14/dominoes/config"
	"github.com/domino14/dominoes/game"
	"github.com/domino14/dominoes/runner"
)

var (
	errNoData            = errors.New("no data in this line")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
	errExit              = errors.New("exit")
)

const prompt = "\033[31mdominoes>\033[0m "

// lineReader is the part of *readline.Instance the shell uses.
type lineReader interface {
	Readline() (string, error)
	Close() error
}

type ShellController struct {
	l      lineReader
	out    io.Writer
	config *config.Config

	options *runner.GameOptions
	game    *runner.GameRunner
}

type shellcmd struct {
	cmd     string
	args    []string
	options CmdOptions
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func writeln(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func (sc *ShellController) showMessage(msg string) {
	writeln(msg, sc.out)
}

func NewShellController(cfg *config.Config) *ShellController {
	sc := &ShellController{config: cfg}
	l, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     cfg.GetString(config.ConfigHistoryFile),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",
		AutoComplete:    NewShellCompleter(sc),

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	sc.l = l
	sc.out = l.Stdout()
	sc.options = &runner.GameOptions{}
	sc.game = runner.NewGameRunner(cfg, sc.options)
	return sc
}

func newShellControllerWith(cfg *config.Config, l lineReader, out io.Writer, g *runner.GameRunner) *ShellController {
	return &ShellController{l: l, out: out, config: cfg, options: &runner.GameOptions{}, game: g}
}

func (sc *ShellController) IsPlaying() bool {
	return sc.game != nil && sc.game.IsPlaying()
}

// extractFields splits a line the way a shell would. Fields that start
// with a hyphen followed by a letter are options and take the next field
// as their value; "-2" is an ordinary argument.
func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := &shellcmd{cmd: fields[0], options: CmdOptions{}}
	for i := 1; i < len(fields); i++ {
		f := fields[i]
		if isOption(f) {
			if i == len(fields)-1 {
				return nil, errWrongOptionSyntax
			}
			key := f[1:]
			cmd.options[key] = append(cmd.options[key], fields[i+1])
			i++
			continue
		}
		cmd.args = append(cmd.args, f)
	}
	return cmd, nil
}

func isOption(f string) bool {
	if len(f) < 2 || f[0] != '-' {
		return false
	}
	c := f[1]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// Loop runs until the game ends, the human exits, or input closes. It
// then signals sig so the process can shut down.
func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	sc.showMessage(sc.game.ToDisplayText())
	for sc.IsPlaying() {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err != nil {
			if err != io.EOF {
				log.Error().Err(err).Msg("readline")
			}
			break
		}

		resp, err := sc.handle(line)
		if errors.Is(err, errExit) {
			break
		}
		if err != nil {
			sc.showMessage(errorMessage(err))
			continue
		}
		if resp != nil {
			sc.showMessage(resp.message)
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
	sig <- syscall.SIGINT
}

// handle runs a shell command if the line names one. Anything else is a
// move for the human, or a keypress that lets the computer move.
func (sc *ShellController) handle(line string) (*Response, error) {
	line = strings.TrimSpace(line)
	if cmd, err := extractFields(line); err == nil {
		if fn, ok := sc.commands()[cmd.cmd]; ok {
			return fn(cmd)
		}
	}
	if onturn, ok := sc.game.SideOnTurn(); ok && onturn == game.ComputerSide {
		return sc.computerMove()
	}
	return sc.humanMove(line)
}
