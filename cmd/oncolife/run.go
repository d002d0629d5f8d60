package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"oncolife/internal/console"
	"oncolife/pkg/core"
	"oncolife/pkg/sims/oncolife"
)

var (
	runSim         simFlags
	runGenerations int
	runTPS         int
	runClear       bool
	runGlyphs      string
	runQuiet       bool
	runStats       bool
	runEvery       int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the simulation in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		glyphs, err := console.GlyphsByName(runGlyphs)
		if err != nil {
			return err
		}
		life, err := runSim.build()
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		out := cmd.OutOrStdout()
		printer := console.NewPrinter(out, glyphs)
		printer.SetClear(runClear)
		logrus.Infof("running %s %dx%d for %d generations", life.Name(), life.Size().H, life.Size().W, runGenerations)
		if err := runLoop(ctx, life, printer, runGenerations, runTPS, runQuiet); err != nil {
			logrus.Warnf("stopped at generation %d: %v", life.Generation(), err)
		}
		if runQuiet {
			if err := printer.Frame(life.Generation(), life.Grid()); err != nil {
				return err
			}
		}
		if runStats {
			return console.WriteHistory(out, life.History(), runEvery)
		}
		return nil
	},
}

// runLoop prints the initial frame then steps generations times, pacing at
// tps when it is positive.
func runLoop(ctx context.Context, life *oncolife.Life, p *console.Printer, generations, tps int, quiet bool) error {
	if !quiet {
		if err := p.Frame(life.Generation(), life.Grid()); err != nil {
			return err
		}
	}
	timer := core.NewFixedStep(tps)
	for i := 0; i < generations; i++ {
		if err := timer.Wait(ctx); err != nil {
			return err
		}
		life.Step()
		if quiet {
			continue
		}
		if err := p.Frame(life.Generation(), life.Grid()); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	runSim.bind(runCmd.Flags(), oncolife.RulesConsole)
	runCmd.Flags().IntVarP(&runGenerations, "generations", "n", 10, "Generations to advance")
	runCmd.Flags().IntVar(&runTPS, "tps", 10, "Generations per second (0 runs unpaced)")
	runCmd.Flags().BoolVar(&runClear, "clear", false, "Clear the terminal before each frame")
	runCmd.Flags().StringVar(&runGlyphs, "glyphs", "ascii", "Cell glyph set (ascii, blocks)")
	runCmd.Flags().BoolVarP(&runQuiet, "quiet", "q", false, "Print only the final frame")
	runCmd.Flags().BoolVar(&runStats, "stats", false, "Print the population history after the run")
	runCmd.Flags().IntVar(&runEvery, "every", 1, "Print every n-th generation in the history table")
}
