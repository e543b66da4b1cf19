// Package batch fills many puzzles from a YAML manifest, running the
// independent fills concurrently. Each job gets its own solver; solvers
// share nothing.
package batch

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/dstol/crossfill/csp"
	"github.com/dstol/crossfill/grid"
	"github.com/dstol/crossfill/render"
	"github.com/dstol/crossfill/wordlist"
)

// Job describes one fill: a structure file, a word list, and optionally a
// PNG to write the solution to.
type Job struct {
	Name      string `yaml:"name"`
	Structure string `yaml:"structure"`
	Words     string `yaml:"words"`
	Output    string `yaml:"output,omitempty"`
}

type Manifest struct {
	Jobs []Job `yaml:"jobs"`
}

func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m := &Manifest{}
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, err
	}
	for i := range m.Jobs {
		m.Jobs[i].Name = lo.Ternary(m.Jobs[i].Name != "", m.Jobs[i].Name,
			m.Jobs[i].Structure)
	}
	return m, nil
}

// Result reports the outcome of one job. Err is set for I/O or parse
// failures; an unsolvable puzzle is Solved=false with a nil Err.
type Result struct {
	Name    string
	Solved  bool
	Elapsed time.Duration
	Err     error
}

// Run fills every job in the manifest, at most parallel at a time.
// Results are indexed like the manifest's jobs.
func Run(ctx context.Context, m *Manifest, parallel int) []Result {
	if parallel < 1 {
		parallel = 1
	}
	results := make([]Result, len(m.Jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i, job := range m.Jobs {
		i, job := i, job
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result{Name: job.Name, Err: err}
				return nil
			}
			results[i] = runJob(job)
			return nil
		})
	}
	g.Wait()
	return results
}

func runJob(job Job) Result {
	start := time.Now()
	res := Result{Name: job.Name}

	gr, err := grid.ParseFile(job.Structure)
	if err != nil {
		res.Err = err
		return res
	}
	words, err := wordlist.Load(job.Words)
	if err != nil {
		res.Err = err
		return res
	}

	solver := csp.NewSolver(gr, words)
	a, err := solver.Solve()
	res.Elapsed = time.Since(start)
	if errors.Is(err, csp.ErrNoSolution) {
		// An unsolvable puzzle is an outcome, not a job failure.
		log.Info().Str("job", job.Name).Dur("elapsed", res.Elapsed).
			Msg("no solution")
		return res
	} else if err != nil {
		res.Err = err
		return res
	}
	res.Solved = true
	if job.Output != "" {
		if err := render.SavePNG(gr, a, job.Output); err != nil {
			res.Err = err
			return res
		}
	}
	log.Info().Str("job", job.Name).Dur("elapsed", res.Elapsed).Msg("solved")
	return res
}
