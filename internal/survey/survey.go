// Package survey runs many independent soups under a set of rules and
// summarises how they end. Each soup is simulated on one goroutine; soups run
// in parallel.
package survey

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"image"
	"runtime"
	"slices"

	"sparse-life/pkg/core"
	"sparse-life/pkg/sims/life"

	"golang.org/x/sync/errgroup"
)

// ErrMismatch reports a generation where the sparse engine and the dense
// reference disagree.
var ErrMismatch = errors.New("sparse and dense engines disagree")

// Options controls a survey.
type Options struct {
	Rules   []string
	Soups   int
	Size    int
	Density float64
	Steps   int
	Workers int
	Seed    int64
	Verify  bool
}

// DefaultOptions surveys every registered rule.
func DefaultOptions() Options {
	return Options{
		Rules:   core.RuleNames(),
		Soups:   8,
		Size:    32,
		Density: 0.35,
		Steps:   200,
		Workers: runtime.NumCPU(),
		Seed:    1,
	}
}

// Result describes one soup.
type Result struct {
	Rule     string
	Notation string
	Seed     int64

	Initial int
	Final   int
	Peak    int
	Steps   int

	// Period is 1 for a still life (or extinction) and 2 for a blinker-like
	// cycle once the soup settled; 0 means it was still changing.
	Period    int
	SettledAt int
	Bounds    image.Rectangle
}

// Extinct reports whether the soup died out.
func (r Result) Extinct() bool { return r.Final == 0 }

type job struct {
	name string
	rule core.Rule
	seed int64
}

// Run simulates Soups soups per rule and returns the results ordered by rule
// then seed. The first error cancels the remaining jobs.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	if opts.Soups < 1 || opts.Size < 1 || opts.Steps < 0 {
		return nil, fmt.Errorf("survey: soups and size must be positive, steps non-negative")
	}
	var jobs []job
	for _, name := range opts.Rules {
		rule, err := core.ParseRule(name)
		if err != nil {
			return nil, err
		}
		for i := 0; i < opts.Soups; i++ {
			jobs = append(jobs, job{name: name, rule: rule, seed: opts.Seed + int64(i)})
		}
	}

	results := make([]Result, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Workers, 1))
	for i, j := range jobs {
		g.Go(func() error {
			res, err := runSoup(ctx, j, opts)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runSoup(ctx context.Context, j job, opts Options) (Result, error) {
	e := life.New()
	core.NewRNG(j.seed).Scatter(image.Rect(0, 0, opts.Size, opts.Size), opts.Density, func(c core.Cell) {
		e.Set(c, true)
	})
	res := Result{
		Rule:     j.name,
		Notation: j.rule.String(),
		Seed:     j.seed,
		Initial:  e.Population(),
		Peak:     e.Population(),
	}

	prev2, prev := []core.Cell(nil), e.Cells()
	for step := 1; step <= opts.Steps; step++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		e.Step(j.rule)
		cur := e.Cells()
		if opts.Verify {
			if want := life.StepDense(prev, j.rule); !slices.Equal(cur, want) {
				return Result{}, fmt.Errorf("%w: rule %s seed %d generation %d: sparse %d cells, dense %d",
					ErrMismatch, j.name, j.seed, step, len(cur), len(want))
			}
		}
		res.Steps = step
		res.Peak = max(res.Peak, len(cur))
		switch {
		case slices.Equal(cur, prev):
			res.Period = 1
		case prev2 != nil && slices.Equal(cur, prev2):
			res.Period = 2
		}
		if res.Period != 0 {
			res.SettledAt = step
			break
		}
		prev2, prev = prev, cur
	}
	res.Final = e.Population()
	res.Bounds = e.Bounds()
	return res, nil
}

// Summary aggregates the soups of one rule.
type Summary struct {
	Rule      string
	Notation  string
	Soups     int
	Extinct   int
	Settled   int
	MeanFinal float64
	MaxPeak   int
}

// Summarize groups results by rule, sorted by rule name.
func Summarize(results []Result) []Summary {
	byRule := map[string]*Summary{}
	for _, r := range results {
		s, ok := byRule[r.Rule]
		if !ok {
			s = &Summary{Rule: r.Rule, Notation: r.Notation}
			byRule[r.Rule] = s
		}
		s.Soups++
		if r.Extinct() {
			s.Extinct++
		}
		if r.Period != 0 {
			s.Settled++
		}
		s.MeanFinal += float64(r.Final)
		s.MaxPeak = max(s.MaxPeak, r.Peak)
	}
	out := make([]Summary, 0, len(byRule))
	for _, s := range byRule {
		s.MeanFinal /= float64(s.Soups)
		out = append(out, *s)
	}
	slices.SortFunc(out, func(a, b Summary) int { return cmp.Compare(a.Rule, b.Rule) })
	return out
}
