package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"sparse-life/internal/survey"
)

func main() {
	opts := survey.DefaultOptions()
	rules := flag.String("rules", strings.Join(opts.Rules, ","), "comma separated rule names or B/S notations")
	flag.IntVar(&opts.Soups, "soups", opts.Soups, "random soups per rule")
	flag.IntVar(&opts.Size, "size", opts.Size, "edge length of the square each soup starts in")
	flag.Float64Var(&opts.Density, "density", opts.Density, "fraction of live cells in a soup")
	flag.IntVar(&opts.Steps, "steps", opts.Steps, "generations to simulate per soup")
	flag.IntVar(&opts.Workers, "workers", opts.Workers, "number of soups simulated at once")
	flag.Int64Var(&opts.Seed, "seed", opts.Seed, "seed of the first soup")
	flag.BoolVar(&opts.Verify, "verify", opts.Verify, "cross-check every generation against the dense reference")
	flag.Parse()

	opts.Rules = nil
	for _, r := range strings.Split(*rules, ",") {
		if r = strings.TrimSpace(r); r != "" {
			opts.Rules = append(opts.Rules, r)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Surveying %d rules x %d soups (%d workers, %d steps, verify=%t)\n",
		len(opts.Rules), opts.Soups, opts.Workers, opts.Steps, opts.Verify)
	start := time.Now()
	results, err := survey.Run(ctx, opts)
	if err != nil {
		log.Fatalf("survey failed: %v", err)
	}

	fmt.Printf("\n%-12s %-12s %6s %8s %8s %10s %8s\n", "rule", "notation", "soups", "extinct", "settled", "meanFinal", "maxPeak")
	for _, s := range survey.Summarize(results) {
		fmt.Printf("%-12s %-12s %6d %8d %8d %10.1f %8d\n", s.Rule, s.Notation, s.Soups, s.Extinct, s.Settled, s.MeanFinal, s.MaxPeak)
	}
	fmt.Printf("\nDone in %s\n", time.Since(start).Round(time.Millisecond))
}
