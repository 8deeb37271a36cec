//go:build ebiten

package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"zing/internal/app"
	"zing/internal/core"
	"zing/internal/logging"
	"zing/internal/sims/zing"
)

func main() {
	cfg := app.NewConfig()
	root := &cobra.Command{
		Use:          "zing",
		Short:        "Interactive six-state cellular automaton",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg, cmd.Flags().Changed("seed"))
		},
	}
	cfg.Bind(root.Flags())

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *app.Config, seedChanged bool) error {
	logger := logging.NewLogger(cfg.LogLevel, os.Stderr)

	simCfg, err := cfg.SimConfig(seedChanged)
	if err != nil {
		return err
	}
	factory, ok := core.Lookup(cfg.Sim)
	if !ok {
		return fmt.Errorf("unknown sim %q", cfg.Sim)
	}
	sim, ok := factory(simCfg.Map()).(*zing.Sim)
	if !ok {
		return fmt.Errorf("sim %q is not interactive", cfg.Sim)
	}
	sim.WithLogger(logger)

	game := app.New(sim, cfg, logger)
	size := sim.Size()

	ebiten.SetWindowTitle("zing")
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
