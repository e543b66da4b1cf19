package shell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dstol/crossfill/csp"
	"github.com/dstol/crossfill/grid"
	"github.com/dstol/crossfill/render"
	"github.com/dstol/crossfill/wordlist"
)

type Response struct {
	message string
}

func msg(message string) *Response {
	return &Response{message: message}
}

type shellcmd struct {
	cmd  string
	args []string
}

func extractFields(line string) *shellcmd {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	return &shellcmd{cmd: fields[0], args: fields[1:]}
}

func (sc *ShellController) dispatch(line string) (*Response, error) {
	cmd := extractFields(line)
	if cmd == nil {
		return nil, nil
	}
	switch cmd.cmd {
	case "load":
		return sc.load(cmd)
	case "words":
		return sc.loadWords(cmd)
	case "wordsdb":
		return sc.loadWordsDB(cmd)
	case "solve":
		return sc.solve(cmd)
	case "show":
		return sc.show(cmd)
	case "save":
		return sc.save(cmd)
	case "set":
		return sc.set(cmd)
	case "help":
		return sc.help(cmd)
	case "exit", "quit":
		return nil, errExit
	default:
		return nil, fmt.Errorf("command %v not found", cmd.cmd)
	}
}

func (sc *ShellController) load(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: load <structure-file>")
	}
	g, err := grid.ParseFile(cmd.args[0])
	if err != nil {
		return nil, err
	}
	sc.curGrid = g
	sc.structurePath = cmd.args[0]
	sc.solution = nil
	return msg(fmt.Sprintf("loaded %v (%dx%d, %d slots)",
		cmd.args[0], g.Width, g.Height, len(g.Variables()))), nil
}

func (sc *ShellController) loadWords(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: words <word-list-file>")
	}
	words, err := wordlist.Load(cmd.args[0])
	if err != nil {
		return nil, err
	}
	sc.words = words
	sc.solution = nil
	return msg(fmt.Sprintf("loaded %d words", len(words))), nil
}

func (sc *ShellController) loadWordsDB(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: wordsdb <sqlite-file>")
	}
	store, err := wordlist.OpenStore(cmd.args[0])
	if err != nil {
		return nil, err
	}
	defer store.Close()
	words, err := store.Words()
	if err != nil {
		return nil, err
	}
	sc.words = words
	sc.solution = nil
	return msg(fmt.Sprintf("loaded %d words from store", len(words))), nil
}

func (sc *ShellController) solve(cmd *shellcmd) (*Response, error) {
	if sc.curGrid == nil {
		return nil, errors.New("no structure loaded; use load first")
	}
	if len(sc.words) == 0 {
		return nil, errors.New("no word list loaded; use words first")
	}
	solver := csp.NewSolver(sc.curGrid, sc.words)
	a, err := solver.Solve()
	if errors.Is(err, csp.ErrNoSolution) {
		return msg("No solution."), nil
	} else if err != nil {
		return nil, err
	}
	sc.solution = a
	return msg(render.Text(sc.curGrid, a)), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	if sc.curGrid == nil {
		return nil, errors.New("no structure loaded")
	}
	// An empty assignment just renders the bare structure.
	return msg(render.Text(sc.curGrid, sc.solution)), nil
}

func (sc *ShellController) save(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: save <output.png>")
	}
	if sc.solution == nil {
		return nil, errors.New("nothing solved yet")
	}
	if err := render.SavePNG(sc.curGrid, sc.solution, cmd.args[0]); err != nil {
		return nil, err
	}
	return msg("saved to " + cmd.args[0]), nil
}

func (sc *ShellController) set(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 2 {
		return nil, errors.New("usage: set <option> <value>")
	}
	key, val := cmd.args[0], cmd.args[1]
	switch {
	case val == "true" || val == "false":
		sc.cfg.Set(key, val == "true")
	default:
		if n, err := strconv.Atoi(val); err == nil {
			sc.cfg.Set(key, n)
		} else {
			sc.cfg.Set(key, val)
		}
	}
	if key == "debug" {
		if sc.cfg.GetBool("debug") {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
	}
	log.Debug().Str("key", key).Str("value", val).Msg("set option")
	return msg(fmt.Sprintf("%v -> %v", key, val)), nil
}

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	return msg(strings.TrimSpace(`
Commands:
  load <structure-file>   load a grid structure (underscores = open cells)
  words <file>            load a newline-delimited word list
  wordsdb <sqlite-file>   load words from a sqlite word store
  solve                   fill the loaded grid from the loaded words
  show                    print the grid (filled if solved)
  save <output.png>       write the solution as a PNG
  set <option> <value>    change a setting (e.g. set debug true)
  exit                    leave the shell
`)), nil
}
