package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"oncolife/internal/console"
	"oncolife/pkg/sims/oncolife"
)

var (
	tuiSim simFlags
	tuiTPS int
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run the simulation full-screen in the terminal",
	Long: `Keys: space pause, n step, r reset, c clear, k cycle brush kind,
+/- grow or shrink the grid (clears it), 1-4 cycle left/right/top/bottom boundary mode, q or Esc quit.
Left click paints the brush kind, right click paints Dead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		life, err := tuiSim.build()
		if err != nil {
			return err
		}
		screen, err := tcell.NewScreen()
		if err != nil {
			return err
		}
		if err := screen.Init(); err != nil {
			return err
		}
		defer screen.Fini()
		screen.EnableMouse()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		err = console.NewView(screen, life, life.Config().Seed).Run(ctx, tuiTPS)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

func init() {
	tuiSim.bind(tuiCmd.Flags(), oncolife.RulesConsole)
	tuiCmd.Flags().IntVar(&tuiTPS, "tps", 10, "Generations per second")
}
