// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/surfacecode/config"
)

// app carries what the subcommands share once flags are parsed.
type app struct {
	cfgFile string
	verbose bool

	distance int
	rounds   int
	basis    string

	cfg    *config.Config
	logger *zap.Logger
}

func newApp() *app { return &app{} }

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "surfacecode",
		Short: "Rotated surface-code logical qubit toolkit",
		Long: `surfacecode builds distance-d rotated surface-code lattices.

It prints plaquette layouts, emits stabilizer-round circuits for memory
experiments and turns backend measurement records into syndrome defects.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "surfacecode.yaml", "config file (.yaml or .toml)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.IntVarP(&a.distance, "distance", "d", 0, "code distance (overrides config)")
	pf.IntVarP(&a.rounds, "rounds", "r", 0, "stabilization rounds (overrides config)")
	pf.StringVarP(&a.basis, "basis", "b", "", "memory basis X or Z (overrides config)")

	root.AddCommand(a.geometryCmd())
	root.AddCommand(a.circuitCmd())
	root.AddCommand(a.decodeCmd())
	return root
}

// setup loads the config, applies explicit flags over it, validates the
// result and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("distance") {
		cfg.Distance = a.distance
	}
	if flags.Changed("rounds") {
		cfg.Rounds = a.rounds
	}
	if flags.Changed("basis") {
		cfg.Basis = a.basis
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if a.logger != nil {
		return nil
	}
	zcfg := zap.NewProductionConfig()
	lvl, _ := cfg.Level()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	if a.verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	a.logger, err = zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}
