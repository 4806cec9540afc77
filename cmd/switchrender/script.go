package main

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/go-drift/switchbutton/pkg/gestures"
)

// step is one scripted pointer event. X is a fraction of the widget width.
type step struct {
	Phase gestures.PointerPhase
	X     float64
	At    time.Duration
}

// presets are the named scripts accepted by --script.
var presets = map[string]string{
	"tap":       "down 0.1 0ms, up 0.1 50ms",
	"drag":      "down 0.05 0ms, move 0.5 200ms, move 0.9 450ms, up 0.9 500ms",
	"drag-back": "down 0.05 0ms, move 0.9 450ms, move 0.2 600ms, up 0.2 650ms",
	"cancel":    "down 0.05 0ms, move 0.6 450ms, cancel 0 500ms",
	"hold":      "down 0.1 0ms, up 0.1 500ms",
	"none":      "",
}

// parseScript reads a comma-separated list of "phase x time" steps, or a
// preset name. Steps are returned in time order.
func parseScript(src string) ([]step, error) {
	src = strings.TrimSpace(src)
	if p, ok := presets[src]; ok {
		src = p
	}
	if src == "" {
		return nil, nil
	}

	var steps []step
	for i, part := range strings.Split(src, ",") {
		fields := strings.Fields(part)
		if len(fields) != 3 {
			return nil, fmt.Errorf("step %d %q: want \"phase x time\"", i+1, strings.TrimSpace(part))
		}
		phase, err := parsePhase(fields[0])
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		x, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("step %d: invalid x %q: %w", i+1, fields[1], err)
		}
		at, err := time.ParseDuration(fields[2])
		if err != nil {
			return nil, fmt.Errorf("step %d: invalid time %q: %w", i+1, fields[2], err)
		}
		if at < 0 {
			return nil, fmt.Errorf("step %d: negative time %v", i+1, at)
		}
		steps = append(steps, step{Phase: phase, X: x, At: at})
	}
	slices.SortStableFunc(steps, func(a, b step) int {
		return cmp.Compare(a.At, b.At)
	})
	return steps, nil
}

func parsePhase(s string) (gestures.PointerPhase, error) {
	switch strings.ToLower(s) {
	case "down":
		return gestures.PointerPhaseDown, nil
	case "move":
		return gestures.PointerPhaseMove, nil
	case "up":
		return gestures.PointerPhaseUp, nil
	case "cancel":
		return gestures.PointerPhaseCancel, nil
	default:
		return 0, fmt.Errorf("unknown phase %q", s)
	}
}
