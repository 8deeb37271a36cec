package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"zing/internal/logging"
	"zing/internal/sims/zing"
	"zing/internal/termview"
)

// gridFlags are shared by run and sweep.
type gridFlags struct {
	configPath string
	width      int
	height     int
	seed       int64
	steps      int
	workers    int
	dead       bool
}

func (f *gridFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "YAML file with grid settings")
	cmd.Flags().IntVar(&f.width, "width", zing.DefaultWidth, "grid width in cells")
	cmd.Flags().IntVar(&f.height, "height", zing.DefaultHeight, "grid height in cells")
	cmd.Flags().Int64Var(&f.seed, "seed", zing.DefaultSeed, "seed for the initial grid")
	cmd.Flags().IntVar(&f.steps, "steps", 100, "generations to simulate")
	cmd.Flags().IntVar(&f.workers, "workers", 1, "goroutines per step")
	cmd.Flags().BoolVar(&f.dead, "dead", false, "start from an all-dead grid")
}

// resolve builds the simulation config: YAML file first, then any flag the
// user set explicitly.
func (f *gridFlags) resolve(cmd *cobra.Command) (zing.Config, error) {
	cfg := zing.DefaultConfig()
	if f.configPath != "" {
		loaded, err := zing.LoadConfig(f.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	flags := cmd.Flags()
	if f.configPath == "" || flags.Changed("width") {
		cfg.Width = f.width
	}
	if f.configPath == "" || flags.Changed("height") {
		cfg.Height = f.height
	}
	if f.configPath == "" || flags.Changed("seed") {
		cfg.Seed = f.seed
	}
	if f.configPath == "" || flags.Changed("workers") {
		cfg.Workers = f.workers
	}
	if flags.Changed("dead") {
		cfg.Random = !f.dead
	}
	if f.steps < 0 {
		return cfg, fmt.Errorf("steps must not be negative, got %d", f.steps)
	}
	return cfg, cfg.Validate()
}

func newRunCmd() *cobra.Command {
	var gf gridFlags
	var render bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Simulate one grid and report deaths",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := gf.resolve(cmd)
			if err != nil {
				return err
			}
			level, _ := cmd.Flags().GetString("log-level")
			noColor, _ := cmd.Flags().GetBool("no-color")
			logger := logging.NewLogger(level, cmd.ErrOrStderr())

			sim := zing.NewWithConfig(cfg).WithLogger(logger)
			for i := 0; i < gf.steps; i++ {
				if err := sim.StepContext(cmd.Context()); err != nil {
					return fmt.Errorf("generation %d: %w", sim.Generation()+1, err)
				}
			}

			out := cmd.OutOrStdout()
			if render {
				if err := termview.Render(out, sim.Grid(), !noColor); err != nil {
					return err
				}
			}
			fmt.Fprintf(out, "seed=%d size=%dx%d generations=%d\n", sim.Seed(), cfg.Width, cfg.Height, sim.Generation())
			fmt.Fprintln(out, termview.Summary(sim.Deaths(), !noColor))
			return nil
		},
	}
	gf.bind(cmd)
	cmd.Flags().BoolVar(&render, "render", false, "print the final grid")
	return cmd
}
