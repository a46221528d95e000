package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rusenback/zephyria/internal/content"
)

// View renders the TUI interface
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	return m.renderFourPanelView()
}

// renderFourPanelView renders the navbar, the four-panel grid and the help bar
func (m Model) renderFourPanelView() string {
	navbar := m.renderNavbar()
	credits := m.renderCredits()
	footer := m.renderHelpBar()

	bodyHeight := m.height - lipgloss.Height(navbar) - lipgloss.Height(credits) - lipgloss.Height(footer)

	// 60% left, 40% right for columns
	// 55% top, 45% bottom for rows
	leftWidth := int(float64(m.width) * 0.6)
	rightWidth := m.width - leftWidth

	topHeight := int(float64(bodyHeight) * 0.55)
	bottomHeight := bodyHeight - topHeight

	topLeftPanel := m.renderChartPanel(leftWidth, topHeight)
	topRightPanel := m.renderHeroPanel(rightWidth, topHeight)
	bottomLeftPanel := m.renderFeaturesPanel(leftWidth, bottomHeight)
	bottomRightPanel := m.renderOpsPanel(rightWidth, bottomHeight)

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, topLeftPanel, topRightPanel)
	bottomRow := lipgloss.JoinHorizontal(lipgloss.Top, bottomLeftPanel, bottomRightPanel)

	return lipgloss.JoinVertical(lipgloss.Left, navbar, topRow, bottomRow, credits, footer)
}

// renderCredits is the one-line page footer: tagline left, legal links right
func (m Model) renderCredits() string {
	legal := mutedStyle.Render(strings.Join(content.Legal, " · "))
	room := m.width - lipgloss.Width(legal) - 4
	if room < 12 {
		return " " + legal
	}
	tagline := mutedStyle.Render(truncate(content.FooterTagline, room))
	gap := max(m.width-lipgloss.Width(tagline)-lipgloss.Width(legal)-2, 2)
	return " " + tagline + strings.Repeat(" ", gap) + legal
}

func (m Model) renderNavbar() string {
	brand := brandStyle.Render(content.BrandMark) + " " + titleStyle.Render(content.Brand)
	nav := navStyle.Render(strings.Join(content.Nav, "   "))
	action := actionStyle.Render(content.NavAction)

	gap := m.width - lipgloss.Width(brand) - lipgloss.Width(nav) - lipgloss.Width(action) - 4
	if gap < 2 {
		return brand + "  " + action
	}
	left := gap / 2
	return " " + brand + strings.Repeat(" ", left) + nav + strings.Repeat(" ", gap-left) + action + " "
}

func (m Model) renderHelpBar() string {
	status := ""
	switch {
	case m.err != nil:
		status = pausedStyle.Render("Error: " + m.err.Error())
	case m.message != "":
		status = mutedStyle.Render(m.message)
	}
	bar := helpStyle.Render(m.help.View(m.keys))
	if status == "" {
		return bar
	}
	return bar + "  " + status
}
