package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	graphAxisStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
	areaStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#74C7EC"))
	lineStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#89DCEB")).Bold(true)
	sparkStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1"))
)

var sparkChars = []string{"▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"}

const axisWidth = 6

// renderAreaChart draws values as a filled area over the fixed domain [lo, hi].
// The top cell of each column is drawn as the line, the cells below as fill.
func renderAreaChart(values []float64, width, height int, lo, hi float64) string {
	if len(values) == 0 {
		return graphAxisStyle.Render("Waiting for samples...")
	}
	if height < 2 {
		height = 2
	}
	if hi <= lo {
		hi = lo + 1
	}

	cols := clampInt(width-axisWidth-1, 1, 1<<16)
	columns := stretch(values, cols)

	var s strings.Builder
	for row := height; row >= 0; row-- {
		var line strings.Builder

		isGridLine := row == height || row == height/2 || row == 0
		switch row {
		case height:
			line.WriteString(graphAxisStyle.Render(fmt.Sprintf("%*s ", axisWidth-1, axisLabel(hi))))
		case height / 2:
			line.WriteString(graphAxisStyle.Render(fmt.Sprintf("%*s ", axisWidth-1, axisLabel(lo+(hi-lo)/2))))
		case 0:
			line.WriteString(graphAxisStyle.Render(fmt.Sprintf("%*s ", axisWidth-1, axisLabel(lo))))
		default:
			line.WriteString(strings.Repeat(" ", axisWidth))
		}
		line.WriteString(graphAxisStyle.Render("│"))

		threshold := lo + (float64(row)/float64(height))*(hi-lo)
		step := (hi - lo) / float64(height)

		for _, v := range columns {
			switch {
			case v >= threshold && v < threshold+step:
				line.WriteString(lineStyle.Render("▀"))
			case v >= threshold:
				line.WriteString(areaStyle.Render("░"))
			case isGridLine:
				line.WriteString(graphAxisStyle.Render("·"))
			default:
				line.WriteString(" ")
			}
		}
		s.WriteString(line.String() + "\n")
	}

	s.WriteString(strings.Repeat(" ", axisWidth) + graphAxisStyle.Render("└"+strings.Repeat("─", len(columns))))
	return s.String()
}

// stretch resamples values onto n columns, nearest sample per column
func stretch(values []float64, n int) []float64 {
	if len(values) >= n {
		return values[len(values)-n:]
	}
	out := make([]float64, n)
	for i := range out {
		idx := 0
		if n > 1 {
			idx = i * (len(values) - 1) / (n - 1)
		}
		out[i] = values[idx]
	}
	return out
}

// renderSparkline creates a compact sparkline
func renderSparkline(data []float64, width int) string {
	if len(data) == 0 {
		return strings.Repeat("▁", width)
	}

	// Take last 'width' points
	start := 0
	if len(data) > width {
		start = len(data) - width
	}
	displayData := data[start:]

	lo, hi := displayData[0], displayData[0]
	for _, v := range displayData {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	dataRange := hi - lo
	if dataRange == 0 {
		dataRange = 1
	}

	var result strings.Builder
	for _, value := range displayData {
		normalized := (value - lo) / dataRange
		idx := clampInt(int(normalized*float64(len(sparkChars)-1)), 0, len(sparkChars)-1)
		result.WriteString(sparkChars[idx])
	}
	for i := len(displayData); i < width; i++ {
		result.WriteString("▁")
	}

	return sparkStyle.Render(result.String())
}

// renderTimeLabels shows how far back the window reaches
func renderTimeLabels(samples int, interval time.Duration, width int) string {
	span := time.Duration(samples) * interval
	left := fmt.Sprintf("◄─ %s ago", span.Round(time.Second))
	right := "Now"
	gap := width - axisWidth - 1 - len([]rune(left)) - len(right)
	if gap < 1 {
		return graphAxisStyle.Render(strings.Repeat(" ", axisWidth+1) + left)
	}
	return graphAxisStyle.Render(strings.Repeat(" ", axisWidth+1) + left + strings.Repeat(" ", gap) + right)
}
