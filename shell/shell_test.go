package shell

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/kballard/go-shellquote"
	"github.com/matryer/is"

	"github.com/domino14/dominoes/config"
	"github.com/domino14/dominoes/game"
	"github.com/domino14/dominoes/runner"
	"github.com/domino14/dominoes/tiles"
)

func init() {
	color.NoColor = true
}

type scriptedReader struct {
	lines  []string
	closed bool
}

func (r *scriptedReader) Readline() (string, error) {
	if len(r.lines) == 0 {
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

func (r *scriptedReader) Close() error {
	r.closed = true
	return nil
}

func tl(pairs ...[2]int) []tiles.Tile {
	ts := make([]tiles.Tile, len(pairs))
	for i, p := range pairs {
		ts[i] = tiles.New(p[0], p[1])
	}
	return ts
}

func testShell(t *testing.T, lines ...string) (*ShellController, *scriptedReader, *bytes.Buffer) {
	cfg := config.DefaultConfig()
	g, err := runner.NewGameRunnerFromPosition(cfg, &runner.GameOptions{}, game.Position{
		PlayerHand:   tl([2]int{5, 1}, [2]int{0, 2}),
		ComputerHand: tl([2]int{1, 4}, [2]int{3, 3}),
		Chain:        tl([2]int{3, 5}),
		Playing:      game.PlayerToMove,
	})
	if err != nil {
		t.Fatal(err)
	}
	r := &scriptedReader{lines: lines}
	out := &bytes.Buffer{}
	return newShellControllerWith(cfg, r, out, g), r, out
}

func TestExtractFields(t *testing.T) {
	is := is.New(t)
	type testdata struct {
		line   string
		expCmd *shellcmd
		expErr error
	}
	cases := []testdata{
		{"", nil, errNoData},
		{"history -last 3",
			&shellcmd{"history", nil, CmdOptions{"last": {"3"}}},
			nil},
		{"help rules",
			&shellcmd{"help", []string{"rules"}, CmdOptions{}},
			nil},
		{"-2", &shellcmd{"-2", nil, CmdOptions{}}, nil},
		{"autoplay 10 -logfile 'my log.txt' ",
			&shellcmd{"autoplay", []string{"10"}, CmdOptions{"logfile": {"my log.txt"}}},
			nil},
		{"autoplay 10 -threads",
			nil, errWrongOptionSyntax},
	}
	for _, tc := range cases {
		cmd, err := extractFields(tc.line)
		is.Equal(cmd, tc.expCmd)
		is.Equal(err, tc.expErr)
	}
}

func TestLoopPlaysToTheEnd(t *testing.T) {
	is := is.New(t)
	sc, r, out := testShell(t, "x", "-1", "1", "", "0", "")
	sig := make(chan os.Signal, 1)
	sc.Loop(sig)

	<-sig
	is.True(r.closed)
	is.Equal(len(r.lines), 0)
	is.Equal(sc.game.Playing(), game.ComputerWon)

	text := out.String()
	is.True(strings.Contains(text, "Invalid input. Please try again."))
	is.True(strings.Contains(text, "Illegal move. Please try again."))
	is.True(strings.Contains(text, "Computer played [3, 3] on the left end."))
	is.True(strings.Contains(text, "Computer played [1, 4] on the right end."))
	is.True(strings.HasSuffix(text, "Status: The game is over. The computer won!\n"))
	is.Equal(sc.game.Chain().Tiles(), tl([2]int{3, 3}, [2]int{3, 5}, [2]int{5, 1}, [2]int{1, 4}))
}

func TestExitLeavesTheGameAlone(t *testing.T) {
	is := is.New(t)
	sc, _, _ := testShell(t, "quit", "1")
	sig := make(chan os.Signal, 1)
	sc.Loop(sig)
	<-sig
	is.True(sc.IsPlaying())
	is.Equal(sc.game.Turn(), 0)
}

func TestEOFEndsLoop(t *testing.T) {
	is := is.New(t)
	sc, r, _ := testShell(t)
	sig := make(chan os.Signal, 1)
	sc.Loop(sig)
	<-sig
	is.True(r.closed)
	is.True(sc.IsPlaying())
}

func TestHintAndHistory(t *testing.T) {
	is := is.New(t)
	sc, _, _ := testShell(t)

	resp, err := sc.handle("history")
	is.NoErr(err)
	is.Equal(resp.message, "No moves yet.")

	resp, err = sc.handle("hint")
	is.NoErr(err)
	is.Equal(resp.message, "Suggested move: 1 (play [5, 1] on the right end)")

	_, err = sc.handle("1")
	is.NoErr(err)
	_, err = sc.handle("hint")
	is.True(err != nil)
	_, err = sc.handle("")
	is.NoErr(err)

	resp, err = sc.handle("history")
	is.NoErr(err)
	is.Equal(resp.message, "  1. You played [5, 1] on the right end.\n"+
		"  2. Computer played [3, 3] on the left end.")

	resp, err = sc.handle("history -last 1")
	is.NoErr(err)
	is.Equal(resp.message, "  2. Computer played [3, 3] on the left end.")
}

func TestHelp(t *testing.T) {
	is := is.New(t)
	sc, _, _ := testShell(t)
	resp, err := sc.handle("help")
	is.NoErr(err)
	is.True(strings.HasPrefix(resp.message, "Moves (on your turn):"))
	resp, err = sc.handle("help rules")
	is.NoErr(err)
	is.True(strings.HasPrefix(resp.message, "Double-six dominoes"))
	resp, err = sc.handle("help nothing")
	is.NoErr(err)
	is.Equal(resp.message, "There is no help text for the topic nothing")
}

func TestNewGame(t *testing.T) {
	is := is.New(t)
	sc, _, _ := testShell(t)
	_, err := sc.handle("new")
	is.NoErr(err)
	is.Equal(sc.game.HandSize(game.PlayerSide)+sc.game.HandSize(game.ComputerSide), 13)
	is.Equal(sc.game.StockSize(), 14)
}

func TestErrorMessages(t *testing.T) {
	is := is.New(t)
	is.Equal(errorMessage(game.ErrMalformedInput), "Invalid input. Please try again.")
	is.Equal(errorMessage(game.ErrIllegalMove), "Illegal move. Please try again.")
	is.Equal(errorMessage(game.ErrGameOver), "Error: "+game.ErrGameOver.Error())
}

func TestCompleter(t *testing.T) {
	is := is.New(t)
	c := NewShellCompleter(nil)

	matches, n := c.Do([]rune("hi"), 2)
	is.Equal(n, 2)
	is.Equal(matches, [][]rune{[]rune("nt"), []rune("story")})

	matches, n = c.Do([]rune("help r"), 6)
	is.Equal(n, 1)
	is.Equal(matches, [][]rune{[]rune("ules")})

	matches, _ = c.Do([]rune("autoplay 5 -t"), 13)
	is.Equal(matches, [][]rune{[]rune("hreads")})
}

func TestAutoplayAndAnalyze(t *testing.T) {
	is := is.New(t)
	sc, _, _ := testShell(t)
	logfile := filepath.Join(t.TempDir(), "auto log.csv")

	resp, err := sc.handle(shellquote.Join("autoplay", "20", "-threads", "2", "-logfile", logfile))
	is.NoErr(err)
	is.True(strings.HasPrefix(resp.message, "Games played: 20\n"))
	is.True(strings.HasSuffix(resp.message, "Turn log written to "+logfile))
	// the game in progress is untouched
	is.Equal(sc.game.Turn(), 0)

	resp, err = sc.handle(shellquote.Join("analyze", logfile))
	is.NoErr(err)
	is.True(strings.HasPrefix(resp.message, "Games played: 20\n"))

	_, err = sc.handle("autoplay")
	is.True(err != nil)
	_, err = sc.handle("autoplay -5")
	is.True(err != nil)
}
