package main

import (
	"math"
	"strings"

	"github.com/phanxgames/tween/easing"
)

type point struct {
	t, v float64
}

// sample evaluates k at steps+1 evenly spaced times over a unit duration.
func sample(k easing.Kind, steps int, overshoot, period float64) []point {
	pts := make([]point, steps+1)
	for i := range pts {
		t := float64(i) / float64(steps)
		pts[i] = point{t, easing.EaseWith(k, t, 1, overshoot, period)}
	}
	return pts
}

// plot draws one '*' per sample on a grid of the given height. The vertical
// range always includes 0 and 1 and grows to fit overshoot; rows at 0 and 1
// are marked with '-'.
func plot(pts []point, height int) []string {
	lo, hi := 0.0, 1.0
	for _, p := range pts {
		lo = math.Min(lo, p.v)
		hi = math.Max(hi, p.v)
	}
	row := func(v float64) int {
		return int(math.Round((hi - v) / (hi - lo) * float64(height-1)))
	}

	grid := make([][]byte, height)
	for i := range grid {
		grid[i] = []byte(strings.Repeat(" ", len(pts)))
	}
	for _, ref := range []float64{0, 1} {
		r := row(ref)
		for c := range grid[r] {
			grid[r][c] = '-'
		}
	}
	for c, p := range pts {
		grid[row(p.v)][c] = '*'
	}

	lines := make([]string, height)
	for i, g := range grid {
		lines[i] = strings.TrimRight(string(g), " ")
	}
	return lines
}
