package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"oncolife/pkg/core"
	"oncolife/pkg/sims/oncolife"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered sims, rule presets, patterns and boundary modes",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "sims:       %s\n", strings.Join(core.Names(), ", "))
		fmt.Fprintf(out, "rules:      %s, %s\n", oncolife.RulesConsole, oncolife.RulesGUI)
		fmt.Fprintf(out, "patterns:   %s\n", strings.Join(oncolife.PatternNames(), ", "))
		modes := []string{oncolife.Normal.String(), oncolife.Periodic.String(), oncolife.Mirror.String()}
		fmt.Fprintf(out, "boundaries: %s\n", strings.Join(modes, ", "))
	},
}
