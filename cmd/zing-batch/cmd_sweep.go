package main

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"zing/internal/logging"
	"zing/internal/sims/zing"
	"zing/internal/termview"
)

type sweepResult struct {
	Seed   int64       `json:"seed"`
	Deaths zing.Deaths `json:"deaths"`
	// Survivors counts cells in the living state after the last generation.
	Survivors int `json:"survivors"`
}

// runSweep simulates one grid per seed and returns results ordered by total
// deaths, highest first, with ties broken by seed.
func runSweep(ctx context.Context, base zing.Config, seeds []int64, steps, parallel int) ([]sweepResult, error) {
	results := make([]sweepResult, len(seeds))
	eg, ctx := errgroup.WithContext(ctx)
	if parallel < 1 {
		parallel = 1
	}
	eg.SetLimit(parallel)
	for i, seed := range seeds {
		i, seed := i, seed
		eg.Go(func() error {
			cfg := base
			cfg.Seed = seed
			cfg.Workers = 1
			sim := zing.NewWithConfig(cfg)
			for s := 0; s < steps; s++ {
				if err := sim.StepContext(ctx); err != nil {
					return err
				}
			}
			results[i] = sweepResult{Seed: seed, Deaths: sim.Deaths(), Survivors: countState(sim.Grid(), zing.Living)}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	sort.Slice(results, func(a, b int) bool {
		ta, tb := results[a].Deaths.Total(), results[b].Deaths.Total()
		if ta != tb {
			return ta > tb
		}
		return results[a].Seed < results[b].Seed
	})
	return results, nil
}

func countState(g *zing.Grid, s zing.CellState) int {
	n := 0
	for _, c := range g.Cells() {
		if c == s {
			n++
		}
	}
	return n
}

// meanDeaths averages each cause over results.
func meanDeaths(results []sweepResult) (fire, sickness, drowning float64) {
	if len(results) == 0 {
		return 0, 0, 0
	}
	var sum zing.Deaths
	for _, r := range results {
		sum = sum.Add(r.Deaths)
	}
	n := float64(len(results))
	return float64(sum.Fire) / n, float64(sum.Sickness) / n, float64(sum.Drowning) / n
}

func newSweepCmd() *cobra.Command {
	var gf gridFlags
	var count int
	var parallel int
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Compare death tallies across many seeds",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := gf.resolve(cmd)
			if err != nil {
				return err
			}
			if count <= 0 {
				return fmt.Errorf("seeds must be positive, got %d", count)
			}
			level, _ := cmd.Flags().GetString("log-level")
			noColor, _ := cmd.Flags().GetBool("no-color")
			logger := logging.NewLogger(level, cmd.ErrOrStderr())

			seeds := make([]int64, count)
			for i := range seeds {
				seeds[i] = cfg.Seed + int64(i)
			}
			logger.Info("sweep started", "seeds", count, "steps", gf.steps, "parallel", parallel)

			results, err := runSweep(cmd.Context(), cfg, seeds, gf.steps, parallel)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			}
			for _, r := range results {
				fmt.Fprintf(out, "seed=%-8d survivors=%-6d %s\n", r.Seed, r.Survivors, termview.Summary(r.Deaths, !noColor))
			}
			fire, sickness, drowning := meanDeaths(results)
			fmt.Fprintf(out, "mean: fire=%.2f sickness=%.2f drowning=%.2f\n", fire, sickness, drowning)
			return nil
		},
	}
	gf.bind(cmd)
	cmd.Flags().IntVar(&count, "seeds", 8, "number of consecutive seeds to run")
	cmd.Flags().IntVar(&parallel, "parallel", runtime.NumCPU(), "seeds simulated concurrently")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}
