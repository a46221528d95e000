package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#B4BEFE"))

	brandStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#1E1E2E")).
			Background(lipgloss.Color("#89DCEB")).
			Padding(0, 1)

	navStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6ADC8"))

	actionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#1E1E2E")).
			Background(lipgloss.Color("#CDD6F4")).
			Padding(0, 1)

	badgeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#89DCEB")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#74C7EC")).
			Padding(0, 1)

	accentStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#74C7EC"))

	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7F849C"))

	statsTagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#89DCEB")).Bold(true)

	readoutStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#89DCEB"))

	stableStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1"))

	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAB387")).Bold(true)

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6ADC8")).Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#585B70")).
			Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#45475A")).
			Padding(0, 1)
)
