package ui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"oncolife/pkg/core"
)

// statusKeys are the snapshot parameters listed above the controls.
var statusKeys = []string{"generation", "alive", "cancer", "cure", "rules"}

// statusLines renders the read-only part of the panel from a snapshot.
func statusLines(s core.ParameterSnapshot) []string {
	var lines []string
	for _, key := range statusKeys {
		p, ok := s.Lookup(key)
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s", p.Label, p.Value))
	}
	var edges []string
	for _, key := range []string{"left", "right", "top", "bottom"} {
		if p, ok := s.Lookup(key); ok {
			edges = append(edges, fmt.Sprintf("%c=%s", strings.ToUpper(key)[0], p.Value))
		}
	}
	if len(edges) > 0 {
		lines = append(lines, strings.Join(edges, " "))
	}
	return lines
}

func buildTitle(name string) string {
	if name == "" {
		return "Controls"
	}
	return strings.ToUpper(name[:1]) + name[1:] + " Controls"
}

// adjustInt returns the value one step in direction, clamped to the control's
// bounds, and whether it differs from current.
func adjustInt(ctrl core.ParameterControl, current, direction int) (int, bool) {
	step := int(math.Round(ctrl.Step))
	if step <= 0 {
		step = 1
	}
	target := int(math.Round(ctrl.Clamp(float64(current + direction*step))))
	return target, target != current
}

// adjustFloat is adjustInt for float controls.
func adjustFloat(ctrl core.ParameterControl, current float64, direction int) (float64, bool) {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	target := ctrl.Clamp(current + float64(direction)*step)
	return target, math.Abs(target-current) >= 1e-9
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}
