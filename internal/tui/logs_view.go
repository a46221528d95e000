package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rusenback/zephyria/internal/model"
)

var (
	timestampStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	spikeLogStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAB387"))
	boundLogStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8"))
	defaultLogStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#CDD6F4"))

	infoIndicator  = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")).Render("○")
	spikeIndicator = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAB387")).Render("▲")
	boundIndicator = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")).Render("●")
)

// renderEvents renders the newest events that fit in height lines
func (m Model) renderEvents(width, height int) string {
	if len(m.events) == 0 {
		return mutedStyle.Render("No events yet")
	}
	if height < 1 {
		height = 1
	}
	start := 0
	if len(m.events) > height {
		start = len(m.events) - height
	}

	lines := make([]string, 0, len(m.events)-start)
	for _, e := range m.events[start:] {
		lines = append(lines, styleEvent(e, width))
	}
	return strings.Join(lines, "\n")
}

// styleEvent applies styling to an ops log entry
func styleEvent(e model.Event, maxWidth int) string {
	timestamp := timestampStyle.Render(e.At.Format("15:04:05"))

	indicator, style := infoIndicator, defaultLogStyle
	switch e.Level {
	case model.EventSpike:
		indicator, style = spikeIndicator, spikeLogStyle
	case model.EventBound:
		indicator, style = boundIndicator, boundLogStyle
	}

	overhead := lipgloss.Width(timestamp) + lipgloss.Width(indicator) + 2
	message := e.Message
	if maxWidth > overhead {
		message = truncate(message, maxWidth-overhead)
	}

	return timestamp + " " + indicator + " " + style.Render(message)
}
