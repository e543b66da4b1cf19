package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dstol/crossfill/batch"
	"github.com/dstol/crossfill/config"
	"github.com/dstol/crossfill/csp"
	"github.com/dstol/crossfill/grid"
	"github.com/dstol/crossfill/render"
	"github.com/dstol/crossfill/shell"
	"github.com/dstol/crossfill/wordlist"
)

var (
	GitVersion string
)

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
	if cfg.GetBool("debug") {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logger = zerolog.New(output).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		logger = zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	}
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger
	logger.Debug().Msg("Debug logging is on")
	if GitVersion != "" {
		log.Info().Str("version", GitVersion).Msg("crossfill")
	}

	if manifest := cfg.GetString("batch"); manifest != "" {
		os.Exit(runBatch(cfg, manifest))
	}

	args := cfg.Args()
	switch len(args) {
	case 0:
		sc := shell.NewShellController(cfg)
		sc.Loop()
	case 2, 3:
		out := cfg.GetString("output")
		if len(args) == 3 {
			out = args[2]
		}
		os.Exit(runOnce(args[0], args[1], out))
	default:
		fmt.Fprintln(os.Stderr, "usage: crossfill [structure words [output.png]]")
		os.Exit(2)
	}
}

// runOnce fills a single puzzle and prints it to the terminal.
func runOnce(structure, words, out string) int {
	g, err := grid.ParseFile(structure)
	if err != nil {
		log.Error().Err(err).Msg("could not parse structure")
		return 1
	}
	vocab, err := wordlist.Load(words)
	if err != nil {
		log.Error().Err(err).Msg("could not load word list")
		return 1
	}

	solver := csp.NewSolver(g, vocab)
	a, err := solver.Solve()
	if errors.Is(err, csp.ErrNoSolution) {
		fmt.Println("No solution.")
		return 1
	} else if err != nil {
		log.Error().Err(err).Msg("solve failed")
		return 1
	}
	fmt.Print(render.Text(g, a))
	if out != "" {
		if err := render.SavePNG(g, a, out); err != nil {
			log.Error().Err(err).Msg("could not save image")
			return 1
		}
	}
	return 0
}

func runBatch(cfg *config.Config, path string) int {
	m, err := batch.LoadManifest(path)
	if err != nil {
		log.Error().Err(err).Msg("could not load manifest")
		return 1
	}
	parallel := cfg.GetInt("parallel")
	if parallel == 0 {
		parallel = runtime.GOMAXPROCS(0)
	}
	results := batch.Run(context.Background(), m, parallel)
	failed := 0
	for _, r := range results {
		switch {
		case r.Err != nil:
			failed++
			fmt.Printf("%-30s error: %v\n", r.Name, r.Err)
		case !r.Solved:
			fmt.Printf("%-30s no solution (%v)\n", r.Name, r.Elapsed)
		default:
			fmt.Printf("%-30s solved (%v)\n", r.Name, r.Elapsed)
		}
	}
	if failed > 0 {
		return 1
	}
	return 0
}
