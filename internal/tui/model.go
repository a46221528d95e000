package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rusenback/zephyria/internal/chart"
	"github.com/rusenback/zephyria/internal/config"
	"github.com/rusenback/zephyria/internal/live"
	"github.com/rusenback/zephyria/internal/metrics"
	"github.com/rusenback/zephyria/internal/model"
	"github.com/rusenback/zephyria/internal/scene"
)

// Model represents the TUI application state
type Model struct {
	cfg    *config.Config
	preset config.Preset
	seed   uint64

	// The live chart owned by this view; replaced on preset switch or reset
	panel *live.Panel
	pane  *chartPane

	// generation invalidates ticks scheduled for a previous panel
	generation int
	paused     bool

	core    *scene.Core
	started time.Time

	events []model.Event

	keys keyMap
	help help.Model

	err     error
	message string
	width   int
	height  int
}

// chartPane is the terminal mount point of the live chart
type chartPane struct {
	frame    chart.Frame
	presents int
}

func (c *chartPane) Present(f chart.Frame) error {
	c.frame = f
	c.presents++
	return nil
}

// Message types for Bubbletea update loop
type tickMsg struct {
	generation int
	at         time.Time
}

type frameMsg time.Time

// NewModel creates a new TUI model for the configured preset
func NewModel(cfg *config.Config) Model {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	m := Model{
		cfg:     cfg,
		seed:    seed,
		core:    scene.NewCore(),
		started: time.Now(),
		keys:    newKeyMap(),
		help:    help.New(),
	}

	preset, err := cfg.ActivePreset()
	if err != nil {
		m.err = err
		return m
	}
	m.mountPreset(preset)
	return m
}

// Init initializes the model and returns initial commands
func (m Model) Init() tea.Cmd {
	if m.panel == nil {
		return frameCmd(m.cfg.TUI.FrameRate)
	}
	return tea.Batch(tickCmd(m.generation, m.panel.Interval()), frameCmd(m.cfg.TUI.FrameRate))
}

// mountPreset tears down the current panel and mounts a fresh one
func (m *Model) mountPreset(p config.Preset) {
	m.preset = p
	m.generation++
	m.pane = &chartPane{}
	m.panel = live.NewPanel(metrics.NewSeeded(p.Profile, m.seed), p.Chart, m.pane)
	if err := m.panel.Mount(); err != nil {
		m.err = err
		return
	}
	m.pushEvent(model.Event{
		At:      time.Now(),
		Level:   model.EventInfo,
		Message: fmt.Sprintf("mounted %s, %d samples, seed %d", p.Name, len(m.panel.Samples()), m.seed),
	})
}

// Samples returns the current window, oldest first
func (m Model) Samples() []model.Sample {
	if m.panel == nil {
		return nil
	}
	return m.panel.Samples()
}

// Primary returns the primary series of the current window, oldest first
func (m Model) Primary() []float64 {
	if m.panel == nil {
		return nil
	}
	return m.panel.Primary()
}

// Frame returns the last frame presented to the chart pane
func (m Model) Frame() chart.Frame {
	if m.pane == nil {
		return chart.Frame{}
	}
	return m.pane.frame
}
