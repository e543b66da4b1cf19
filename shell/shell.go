// Package shell is the interactive console for filling puzzles: load a
// structure, load a vocabulary, solve, show, save.
package shell

import (
	"errors"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"

	"github.com/dstol/crossfill/config"
	"github.com/dstol/crossfill/csp"
	"github.com/dstol/crossfill/grid"
)

var errExit = errors.New("exit")

type ShellController struct {
	l   *readline.Instance
	cfg *config.Config

	curGrid       *grid.Grid
	structurePath string
	words         []string
	solution      csp.Assignment
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func NewShellController(cfg *config.Config) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mcrossfill>\033[0m ",
		HistoryFile:     "/tmp/readline-crossfill.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	return &ShellController{l: l, cfg: cfg}
}

// Loop reads and executes commands until exit or EOF.
func (sc *ShellController) Loop() {
	defer sc.l.Close()
	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if err := sc.Execute(line); errors.Is(err, errExit) {
			break
		}
	}
	log.Debug().Msg("exiting readline loop")
}

// Execute runs a single command line.
func (sc *ShellController) Execute(line string) error {
	resp, err := sc.dispatch(line)
	if errors.Is(err, errExit) {
		return err
	}
	if err != nil {
		showMessage("error: "+err.Error(), sc.l.Stderr())
		return nil
	}
	if resp != nil && resp.message != "" {
		showMessage(resp.message, sc.l.Stdout())
	}
	return nil
}
