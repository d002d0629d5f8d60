package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"text/tabwriter"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"oncolife/internal/sweep"
	"oncolife/pkg/sims/oncolife"
)

var (
	sweepPresets     []string
	sweepCancer      []float64
	sweepCure        []float64
	sweepSeeds       int
	sweepFirstSeed   int64
	sweepGenerations int
	sweepRows        int
	sweepCols        int
	sweepWorkers     int
	sweepTop         int
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Rank cancer/cure chances by how well they contain cancer",
	RunE: func(cmd *cobra.Command, args []string) error {
		base := oncolife.DefaultConfig()
		base.Width, base.Height = sweepCols, sweepRows
		seeds := make([]int64, sweepSeeds)
		for i := range seeds {
			seeds[i] = sweepFirstSeed + int64(i)
		}
		sets := sweep.Grid(sweepPresets, sweepCancer, sweepCure)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		logrus.Infof("sweeping %d parameter sets x %d seeds (%d workers, %d generations)",
			len(sets), len(seeds), sweepWorkers, sweepGenerations)
		start := time.Now()
		results, err := sweep.Run(ctx, sets, sweep.Options{
			Base:        base,
			Seeds:       seeds,
			Generations: sweepGenerations,
			Workers:     sweepWorkers,
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Top %d of %d (elapsed %s):\n", min(sweepTop, len(results)), len(results), time.Since(start).Round(time.Millisecond))
		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "#\trules\tcancer\tcure\tfinal cancer\tpeak cancer\tfinal alive\tcleared")
		for i := 0; i < len(results) && i < sweepTop; i++ {
			r := results[i]
			fmt.Fprintf(tw, "%d\t%s\t%.3f\t%.3f\t%.1f\t%d\t%.1f\t%d/%d\n", i+1, r.Params.Rules,
				r.Params.CancerChance, r.Params.CureChance, r.FinalCancer, r.PeakCancer, r.FinalAlive, r.Cleared, r.Runs)
		}
		return tw.Flush()
	},
}

func init() {
	f := sweepCmd.Flags()
	f.StringSliceVar(&sweepPresets, "rules", []string{oncolife.RulesConsole, oncolife.RulesGUI}, "Rule presets to compare")
	f.Float64SliceVar(&sweepCancer, "cancer-chance", []float64{0.05, 0.1, 0.2}, "Cancer infection chances")
	f.Float64SliceVar(&sweepCure, "cure-chance", []float64{0.25, 0.5, 0.75}, "Cure emergence chances")
	f.IntVar(&sweepSeeds, "seeds", 4, "Seeds per parameter set")
	f.Int64Var(&sweepFirstSeed, "seed", 1, "First seed")
	f.IntVar(&sweepGenerations, "generations", 100, "Generations per run")
	f.IntVar(&sweepRows, "rows", 48, "Grid rows")
	f.IntVar(&sweepCols, "cols", 48, "Grid columns")
	f.IntVar(&sweepWorkers, "workers", runtime.NumCPU(), "Worker goroutines")
	f.IntVar(&sweepTop, "top", 10, "Rows to print")
}
