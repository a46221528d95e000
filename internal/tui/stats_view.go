package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rusenback/zephyria/internal/metrics"
)

// renderReadout renders the big readout next to the sparkline
func (m Model) renderReadout() string {
	frame := m.Frame()
	if frame.Empty() {
		return mutedStyle.Render("--")
	}
	readout := readoutStyle.Render(frame.Readout)
	label := mutedStyle.Render(" TPS now  ")

	primary := m.Primary()
	return readout + label + renderSparkline(primary, len(primary))
}

// renderStats renders the TPS and latency boxes for the current window
func (m Model) renderStats(width int) string {
	samples := m.Samples()
	if len(samples) == 0 {
		return helpStyle.Render("No samples yet")
	}
	latest := samples[len(samples)-1]
	sum := metrics.Summarize(samples)

	p := m.preset.Profile
	barLength := clampInt(width-24, 8, 30)

	renderBar := func(v, lo, hi float64) string {
		if hi <= lo {
			return strings.Repeat("─", barLength)
		}
		filled := clampInt(int((v-lo)/(hi-lo)*float64(barLength)), 0, barLength)
		return strings.Repeat("█", filled) + strings.Repeat("─", barLength-filled)
	}

	colorize := func(v, lo, hi float64, text string) string {
		ratio := 0.0
		if hi > lo {
			ratio = (v - lo) / (hi - lo)
		}
		var color string
		switch {
		case ratio > 0.8:
			color = "#F38BA8"
		case ratio > 0.5:
			color = "#FAB387"
		default:
			color = "#A6E3A1"
		}
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(text)
	}

	tpsStr := fmt.Sprintf("%8s |%s|", axisLabel(latest.Primary), renderBar(latest.Primary, p.Primary.Min, p.Primary.Max))
	tpsBox := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#89B4FA")).
		Padding(0, 1).
		Render("TPS  peak " + axisLabel(sum.PeakPrimary) + "  avg " + axisLabel(sum.MeanPrimary) + "\n" + colorize(latest.Primary, p.Primary.Min, p.Primary.Max, tpsStr))

	latStr := fmt.Sprintf("%6.1f ms |%s|", latest.Secondary, renderBar(latest.Secondary, p.Secondary.Min, p.Secondary.Max))
	latBox := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#A6E3A1")).
		Padding(0, 1).
		Render(fmt.Sprintf("LATENCY  p50 %.1f ms  p99 %.1f ms\n", sum.LatencyP50, sum.LatencyP99) + colorize(latest.Secondary, p.Secondary.Min, p.Secondary.Max, latStr))

	return lipgloss.JoinVertical(lipgloss.Left, tpsBox, latBox)
}
