package tui

import (
	"fmt"
	"math"
)

// truncate shortens a string to a maximum length
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// axisLabel formats a y-axis tick the way the web chart does: thousands as "Nk"
func axisLabel(v float64) string {
	if math.Abs(v) >= 10000 {
		return fmt.Sprintf("%dk", int(math.Floor(v/1000)))
	}
	return fmt.Sprintf("%.0f", v)
}

// clampInt limits v to [lo, hi]
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
