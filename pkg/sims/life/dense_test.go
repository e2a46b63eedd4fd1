package life

import (
	"image"
	"slices"
	"testing"

	"sparse-life/pkg/core"
)

func TestSparseMatchesDense(t *testing.T) {
	extra := []core.Rule{
		core.NewRule([]int{0, 1, 2}, []int{0, 8}),
		core.NewRule([]int{1}, nil),
		core.NewRule(nil, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}),
	}
	var ruleset []core.Rule
	for _, name := range core.RuleNames() {
		r, _ := core.LookupRule(name)
		ruleset = append(ruleset, r)
	}
	ruleset = append(ruleset, extra...)

	for seed := int64(1); seed <= 6; seed++ {
		for _, rule := range ruleset {
			rng := core.NewRNG(seed)
			var soup []core.Cell
			rng.Scatter(image.Rect(-6, -4, 10, 9), 0.4, func(c core.Cell) {
				soup = append(soup, c)
			})

			e := New()
			e.SetCells(soup)
			state := e.Cells()
			for gen := 0; gen < 8; gen++ {
				want := StepDense(state, rule)
				e.Step(rule)
				got := e.Cells()
				if !slices.Equal(got, want) {
					t.Fatalf("seed %d rule %s gen %d: sparse %v, dense %v", seed, rule, gen, got, want)
				}
				state = got
			}
		}
	}
}

func TestStepDenseEmpty(t *testing.T) {
	if got := StepDense(nil, core.Standard); len(got) != 0 {
		t.Fatalf("expected no cells, got %v", got)
	}
}
