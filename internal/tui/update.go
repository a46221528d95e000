package tui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rusenback/zephyria/internal/logger"
	"github.com/rusenback/zephyria/internal/metrics"
	"github.com/rusenback/zephyria/internal/model"
)

// Update handles messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		// A tick scheduled for a replaced or paused panel
		if msg.generation != m.generation || m.paused || m.panel == nil {
			return m, nil
		}
		tick, err := m.panel.Tick()
		if err != nil {
			m.err = err
			return m, nil
		}
		m.recordTick(tick, msg.at)
		return m, tickCmd(m.generation, m.panel.Interval())

	case frameMsg:
		m.core.Advance(time.Time(msg).Sub(m.started).Seconds())
		return m, frameCmd(m.cfg.TUI.FrameRate)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		if m.paused {
			m.message = "Paused"
			return m, nil
		}
		m.message = ""
		if m.panel == nil {
			return m, nil
		}
		m.generation++
		return m, tickCmd(m.generation, m.panel.Interval())

	case key.Matches(msg, m.keys.Reset):
		if m.panel == nil {
			return m, nil
		}
		m.seed++
		m.events = nil
		m.paused = false
		m.message = fmt.Sprintf("Reseeded (%d)", m.seed)
		m.mountPreset(m.preset)
		logger.Debug("panel reseeded", "preset", m.preset.Name, "seed", m.seed)
		return m, tickCmd(m.generation, m.panel.Interval())

	case key.Matches(msg, m.keys.Preset):
		n, err := strconv.Atoi(msg.String())
		if err != nil {
			return m, nil
		}
		names := m.cfg.PresetNames()
		if n < 1 || n > len(names) {
			m.message = fmt.Sprintf("No preset #%d", n)
			return m, nil
		}
		p, err := m.cfg.Lookup(names[n-1])
		if err != nil {
			m.err = err
			return m, nil
		}
		m.events = nil
		m.paused = false
		m.message = "Preset: " + p.Label
		m.mountPreset(p)
		logger.Debug("preset switched", "preset", p.Name)
		return m, tickCmd(m.generation, m.panel.Interval())
	}

	return m, nil
}

// recordTick appends ops log entries for notable ticks
func (m *Model) recordTick(t metrics.Tick, at time.Time) {
	readout := m.Frame().Readout
	if t.Spiked {
		m.pushEvent(model.Event{
			At:      at,
			Level:   model.EventSpike,
			Message: fmt.Sprintf("load spike #%d, readout %s", t.Sample.Index, readout),
		})
	}
	if t.Clamped {
		m.pushEvent(model.Event{
			At:      at,
			Level:   model.EventBound,
			Message: fmt.Sprintf("sample #%d held at bound, readout %s", t.Sample.Index, readout),
		})
	}
}

func (m *Model) pushEvent(e model.Event) {
	m.events = append(m.events, e)
	limit := m.cfg.TUI.EventLimit
	if limit > 0 && len(m.events) > limit {
		m.events = m.events[len(m.events)-limit:]
	}
}
