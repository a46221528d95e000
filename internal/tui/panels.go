package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rusenback/zephyria/internal/content"
)

// coreFrames are the glyph frames of the rotating hero core
var coreFrames = []string{"◐", "◓", "◑", "◒"}

// liftCutoff is the bob height above which the glyph draws one line higher
const liftCutoff = 0.05

// renderChartPanel renders the live performance chart panel
func (m Model) renderChartPanel(width, height int) string {
	return panelStyle.
		Width(width - 4).
		Height(height - 2).
		Render(m.renderChartContent(width-4, height-2))
}

func (m Model) renderChartContent(width, height int) string {
	var s strings.Builder

	status := stableStyle.Render("● " + content.ChartStatus)
	if m.paused {
		status = pausedStyle.Render("❚❚ PAUSED")
	}
	header := titleStyle.Render(content.ChartTitle) + "  " + mutedStyle.Render(m.preset.Label)
	gap := width - lipgloss.Width(header) - lipgloss.Width(status) - 2
	if gap < 1 {
		gap = 1
	}
	s.WriteString(header + strings.Repeat(" ", gap) + status + "\n")
	s.WriteString(mutedStyle.Render(content.ChartSource) + "\n\n")

	if m.panel == nil {
		s.WriteString(mutedStyle.Render("Live chart unavailable"))
		return s.String()
	}

	primary := m.Primary()

	opts := m.panel.Options()
	chartHeight := clampInt(height-9, 3, 40)
	s.WriteString(renderAreaChart(primary, width-2, chartHeight, opts.DomainMin, opts.DomainMax) + "\n")
	s.WriteString(renderTimeLabels(len(primary), m.panel.Interval(), width-2) + "\n\n")
	s.WriteString(m.renderReadout())

	return s.String()
}

// renderHeroPanel renders the badge, headline and the animated core
func (m Model) renderHeroPanel(width, height int) string {
	inner := width - 6

	var s strings.Builder
	s.WriteString(badgeStyle.Render("⚡ "+content.HeroBadge) + "\n\n")
	s.WriteString(titleStyle.Render(content.HeroTitle) + "\n")
	s.WriteString(accentStyle.Render(content.HeroAccent) + "\n\n")
	s.WriteString(lipgloss.NewStyle().Width(inner).Render(mutedStyle.Render(content.HeroSubline)) + "\n\n")
	s.WriteString(m.renderCore() + "\n\n")
	s.WriteString(actionStyle.Render(content.PrimaryAction+" →") + "  " + navStyle.Render(content.SecondaryAction))

	return panelStyle.
		Width(width - 4).
		Height(height - 2).
		Render(s.String())
}

// renderCore maps the scene state onto a glyph with a ring marker per torus
// on each side, outermost at the edges
func (m Model) renderCore() string {
	if m.core == nil {
		return ""
	}
	frame := coreFrames[int(m.core.Phase()*float64(len(coreFrames)))%len(coreFrames)]

	n := len(m.core.Rings)
	left := make([]string, n)
	right := make([]string, n)
	for i := range m.core.Rings {
		mark := m.ringMark(i)
		left[n-1-i] = mark
		right[i] = mark
	}

	// the bob lifts the glyph one line at its peak
	lift := ""
	if m.core.Lift > liftCutoff {
		lift = "\n"
	}
	return lift + strings.Join(left, "") + " " + accentStyle.Render(frame) + " " + strings.Join(right, "")
}

func (m Model) ringMark(i int) string {
	mark := "·"
	if m.core.Facing(i) {
		mark = "◦"
	}
	if m.core.Rings[i].Static {
		return mutedStyle.Render(mark)
	}
	return mark
}

// renderFeaturesPanel renders the tech grid and the highlights
func (m Model) renderFeaturesPanel(width, height int) string {
	var s strings.Builder
	s.WriteString(titleStyle.Render(content.GridTitle) + "\n")
	s.WriteString(mutedStyle.Render(truncate(content.GridSubtitle, width-6)) + "\n\n")

	cardWidth := clampInt((width-8)/2-4, 12, 60)
	cards := make([]string, 0, len(content.Features))
	for _, f := range content.Features {
		body := content.Icon(f.Icon) + " " + titleStyle.Render(f.Title) + "\n" +
			mutedStyle.Render(truncate(f.Description, cardWidth*2)) + "\n" +
			statsTagStyle.Render(f.Stats)
		cards = append(cards, cardStyle.Width(cardWidth).Render(body))
	}
	for i := 0; i < len(cards); i += 2 {
		row := cards[i:min(i+2, len(cards))]
		s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, row...) + "\n")
	}

	var highlights []string
	for _, h := range content.Highlights {
		highlights = append(highlights, fmt.Sprintf("%s %s", readoutStyle.Render(h.Value), mutedStyle.Render(h.Label)))
	}
	s.WriteString(strings.Join(highlights, "   ") + "\n\n")

	s.WriteString(titleStyle.Render(content.CTATitle) + "  ")
	s.WriteString(actionStyle.Render(content.CTAPrimary+" →") + "  " + navStyle.Render(content.CTASecondary))

	return panelStyle.
		Width(width - 4).
		Height(height - 2).
		Render(s.String())
}

// renderOpsPanel renders the stats boxes and the ops log
func (m Model) renderOpsPanel(width, height int) string {
	stats := m.renderStats(width - 6)
	logHeight := height - 4 - lipgloss.Height(stats) - 2

	var s strings.Builder
	s.WriteString(stats + "\n\n")
	s.WriteString(titleStyle.Render("Ops Log") + "\n")
	s.WriteString(m.renderEvents(width-6, logHeight))

	return panelStyle.
		Width(width - 4).
		Height(height - 2).
		Render(s.String())
}
