package shell

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/dominoes/automatic"
	"github.com/domino14/dominoes/config"
	"github.com/domino14/dominoes/game"
)

const (
	invalidInputMsg = "Invalid input. Please try again."
	illegalMoveMsg  = "Illegal move. Please try again."
)

type Response struct {
	message string
}

type CmdOptions map[string][]string

func (c CmdOptions) String(key string) string {
	v := c[key]
	if len(v) > 0 {
		return v[0]
	}
	return ""
}

func (c CmdOptions) IntDefault(key string, defaultI int) (int, error) {
	v := c[key]
	if len(v) == 0 {
		return defaultI, nil
	}
	return strconv.Atoi(v[0])
}

func msg(message string) *Response {
	return &Response{message: message}
}

func errorMessage(err error) string {
	switch {
	case errors.Is(err, game.ErrMalformedInput):
		return invalidInputMsg
	case errors.Is(err, game.ErrIllegalMove):
		return illegalMoveMsg
	}
	return "Error: " + err.Error()
}

func (sc *ShellController) commands() map[string]func(*shellcmd) (*Response, error) {
	return map[string]func(*shellcmd) (*Response, error){
		"help":     sc.help,
		"hint":     sc.hint,
		"history":  sc.history,
		"show":     sc.show,
		"new":      sc.newGame,
		"autoplay": sc.autoplay,
		"analyze":  sc.analyze,
		"exit":     sc.exit,
		"quit":     sc.exit,
	}
}

func (sc *ShellController) humanMove(line string) (*Response, error) {
	evt, err := sc.game.HumanMove(line)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("event", evt.Summary()).Msg("human-moved")
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) computerMove() (*Response, error) {
	evt, err := sc.game.ComputerMove()
	if err != nil {
		return nil, err
	}
	return msg(evt.Summary() + "\n" + sc.game.ToDisplayText()), nil
}

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return msg(usage()), nil
	}
	return msg(usageTopic(cmd.args[0])), nil
}

func (sc *ShellController) hint(cmd *shellcmd) (*Response, error) {
	if onturn, ok := sc.game.SideOnTurn(); !ok || onturn != game.PlayerSide {
		return nil, errors.New("hints are only given on your turn")
	}
	return msg("Suggested move: " + sc.game.ShowMove(sc.game.Hint())), nil
}

func (sc *ShellController) history(cmd *shellcmd) (*Response, error) {
	last, err := cmd.options.IntDefault("last", 0)
	if err != nil {
		return nil, err
	}
	evts := sc.game.History()
	if len(evts) == 0 {
		return msg("No moves yet."), nil
	}
	if last > 0 && last < len(evts) {
		evts = evts[len(evts)-last:]
	}
	var sb strings.Builder
	for _, evt := range evts {
		fmt.Fprintf(&sb, "%3d. %s\n", evt.Turn, evt.Summary())
	}
	return msg(strings.TrimRight(sb.String(), "\n")), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) newGame(cmd *shellcmd) (*Response, error) {
	sc.game.Rematch()
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) exit(cmd *shellcmd) (*Response, error) {
	return nil, errExit
}

// autoplay plays computer-vs-computer games and reports the results. The
// game in progress is not touched.
func (sc *ShellController) autoplay(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: autoplay <games> [-threads n] [-logfile path]")
	}
	n, err := strconv.Atoi(cmd.args[0])
	if err != nil || n <= 0 {
		return nil, errors.New("number of games must be a positive integer")
	}
	threads, err := cmd.options.IntDefault("threads", sc.config.GetInt(config.ConfigThreads))
	if err != nil {
		return nil, err
	}
	logfile := cmd.options.String("logfile")
	if logfile == "" {
		logfile = sc.config.GetString(config.ConfigAutoplayLog)
	}
	f, err := os.Create(logfile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	summary, err := automatic.StartCompVComp(context.Background(), sc.config, n, threads, f)
	if err != nil {
		return nil, err
	}
	return msg(summary.ToDisplayText() + "Turn log written to " + logfile), nil
}

// analyze summarizes an autoplay turn log.
func (sc *ShellController) analyze(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: analyze <logfile>")
	}
	f, err := os.Open(cmd.args[0])
	if err != nil {
		return nil, err
	}
	defer f.Close()
	summary, err := automatic.AnalyzeLogFile(f)
	if err != nil {
		return nil, err
	}
	return msg(strings.TrimRight(summary.ToDisplayText(), "\n")), nil
}
