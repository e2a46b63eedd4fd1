package survey

import (
	"context"
	"errors"
	"slices"
	"testing"

	"sparse-life/pkg/core"
)

func smallOptions() Options {
	opts := DefaultOptions()
	opts.Soups = 2
	opts.Size = 12
	opts.Steps = 30
	opts.Workers = 4
	return opts
}

func TestRunVerifiesEveryRegisteredRule(t *testing.T) {
	opts := smallOptions()
	opts.Verify = true
	results, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != len(core.RuleNames())*opts.Soups {
		t.Fatalf("got %d results", len(results))
	}
	for i, r := range results {
		if want := opts.Rules[i/opts.Soups]; r.Rule != want {
			t.Fatalf("result %d is for %q, expected %q", i, r.Rule, want)
		}
	}
}

func TestRunIsDeterministic(t *testing.T) {
	opts := smallOptions()
	a, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	opts.Workers = 1
	b, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(a, b) {
		t.Fatal("results depend on the worker count")
	}
}

func TestStillLifeAndExtinction(t *testing.T) {
	opts := Options{Rules: []string{"life"}, Soups: 1, Size: 2, Density: 1, Steps: 10, Workers: 1}
	results, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	block := results[0]
	if block.Period != 1 || block.SettledAt != 1 || block.Final != 4 || block.Extinct() {
		t.Fatalf("block soup: %+v", block)
	}

	opts.Size = 1
	results, err = Run(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	lone := results[0]
	if !lone.Extinct() || lone.Period != 1 || lone.SettledAt != 2 || lone.Peak != 1 {
		t.Fatalf("single cell soup: %+v", lone)
	}
}

func TestRunRejectsBadInput(t *testing.T) {
	opts := smallOptions()
	opts.Rules = []string{"life", "B9"}
	if _, err := Run(context.Background(), opts); !errors.Is(err, core.ErrInvalidRule) {
		t.Fatalf("expected ErrInvalidRule, got %v", err)
	}
	opts = smallOptions()
	opts.Soups = 0
	if _, err := Run(context.Background(), opts); err == nil {
		t.Fatal("zero soups must be rejected")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Run(ctx, smallOptions()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestSummarize(t *testing.T) {
	results := []Result{
		{Rule: "seeds", Final: 0, Peak: 9},
		{Rule: "life", Final: 4, Peak: 6, Period: 1},
		{Rule: "life", Final: 0, Peak: 3, Period: 1},
		{Rule: "life", Final: 8, Peak: 12},
	}
	got := Summarize(results)
	if len(got) != 2 || got[0].Rule != "life" || got[1].Rule != "seeds" {
		t.Fatalf("unexpected grouping %+v", got)
	}
	life := got[0]
	if life.Soups != 3 || life.Extinct != 1 || life.Settled != 2 || life.MeanFinal != 4 || life.MaxPeak != 12 {
		t.Fatalf("life summary %+v", life)
	}
}
