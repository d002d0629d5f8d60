//go:build ebiten

package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"oncolife/internal/app"
	"oncolife/pkg/sims/oncolife"
)

var (
	guiSim simFlags
	guiCfg = app.NewConfig()
)

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Open the desktop window",
	RunE: func(cmd *cobra.Command, args []string) error {
		guiSim.seed = guiCfg.Seed
		life, err := guiSim.build()
		if err != nil {
			return err
		}
		game := app.New(life, guiCfg)
		w, h := app.WindowSize(life.Size(), guiCfg.Scale, guiCfg.Panel)

		ebiten.SetWindowTitle("oncolife - " + life.Name())
		ebiten.SetTPS(guiCfg.TPS)
		ebiten.SetWindowSize(w, h)

		if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
			return err
		}
		return nil
	},
}

func init() {
	guiCfg.Bind(guiCmd.Flags())
	guiSim.bind(guiCmd.Flags(), oncolife.RulesGUI)
}
