package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rusenback/zephyria/internal/config"
	"github.com/rusenback/zephyria/internal/content"
	"github.com/rusenback/zephyria/internal/model"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = 42
	m := NewModel(cfg)
	require.NoError(t, m.err)
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func TestNewModelMountsActivePreset(t *testing.T) {
	m := newTestModel(t)

	assert.Equal(t, config.PresetPerformance, m.preset.Name)
	assert.Len(t, m.Samples(), 20)
	assert.False(t, m.Frame().Empty())
	require.Len(t, m.events, 1)
	assert.Equal(t, model.EventInfo, m.events[0].Level)
	assert.NotNil(t, m.Init())
}

func TestNewModelUnknownPreset(t *testing.T) {
	cfg := config.Default()
	cfg.Preset = "nope"
	m := NewModel(cfg)

	assert.ErrorIs(t, m.err, config.ErrUnknownPreset)
	assert.Nil(t, m.panel)
	assert.Empty(t, m.Samples())
	assert.True(t, m.Frame().Empty())
	assert.NotNil(t, m.Init())
}

func TestTickAdvancesWindow(t *testing.T) {
	m := newTestModel(t)
	before := m.Samples()

	m, cmd := update(t, m, tickMsg{generation: m.generation, at: time.Now()})
	require.NotNil(t, cmd)

	after := m.Samples()
	require.Len(t, after, 20)
	assert.Equal(t, before[1], after[0], "oldest sample evicted")
	assert.Equal(t, before[19].Index+1, after[19].Index)

	p := m.preset.Profile.Primary
	for _, s := range after {
		assert.GreaterOrEqual(t, s.Primary, p.Min)
		assert.LessOrEqual(t, s.Primary, p.Max)
	}
}

func TestStaleTickIgnored(t *testing.T) {
	m := newTestModel(t)
	before := m.Samples()

	m, cmd := update(t, m, tickMsg{generation: m.generation - 1, at: time.Now()})
	assert.Nil(t, cmd)
	assert.Equal(t, before, m.Samples())
}

func TestPauseStopsTicks(t *testing.T) {
	m := newTestModel(t)
	gen := m.generation

	m, cmd := update(t, m, runes("p"))
	assert.Nil(t, cmd)
	assert.True(t, m.paused)

	before := m.Samples()
	m, cmd = update(t, m, tickMsg{generation: gen, at: time.Now()})
	assert.Nil(t, cmd)
	assert.Equal(t, before, m.Samples())

	m, cmd = update(t, m, runes("p"))
	assert.False(t, m.paused)
	assert.NotNil(t, cmd)
	assert.Greater(t, m.generation, gen)
}

func TestPresetSwitch(t *testing.T) {
	m := newTestModel(t)
	gen := m.generation

	// sorted names: performance, pulse
	m, cmd := update(t, m, runes("2"))
	require.NotNil(t, cmd)
	assert.Equal(t, config.PresetPulse, m.preset.Name)
	assert.Len(t, m.Samples(), 25)
	assert.Greater(t, m.generation, gen)

	m, cmd = update(t, m, runes("9"))
	assert.Nil(t, cmd)
	assert.Equal(t, config.PresetPulse, m.preset.Name)
	assert.Contains(t, m.message, "#9")
}

func TestResetReseeds(t *testing.T) {
	m := newTestModel(t)
	seed := m.seed

	m, cmd := update(t, m, runes("r"))
	require.NotNil(t, cmd)
	assert.Equal(t, seed+1, m.seed)
	assert.Len(t, m.Samples(), 20)
	require.Len(t, m.events, 1)
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = update(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, runes("?"))
	assert.True(t, m.help.ShowAll)
	m, _ = update(t, m, runes("?"))
	assert.False(t, m.help.ShowAll)
}

func TestFrameAdvancesCore(t *testing.T) {
	m := newTestModel(t)
	m, cmd := update(t, m, frameMsg(m.started.Add(time.Second)))
	assert.NotNil(t, cmd)
	assert.Equal(t, 1, m.core.Frames)
	assert.InDelta(t, 0.5, m.core.RotY, 1e-9)
	assert.InDelta(t, 0.2, m.core.OrbitX, 1e-9)

	// one second into the spin is still the first glyph quarter
	out := m.renderCore()
	assert.Contains(t, out, "◐")
	assert.Equal(t, 2*len(m.core.Rings), strings.Count(out, "◦")+strings.Count(out, "·"))
}

func TestEventLimit(t *testing.T) {
	m := newTestModel(t)
	m.cfg.TUI.EventLimit = 3

	for i := 0; i < 10; i++ {
		m.pushEvent(model.Event{At: time.Now(), Level: model.EventSpike, Message: "spike"})
	}
	assert.Len(t, m.events, 3)
}

func TestViewRendersLanding(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, "Loading...", m.View())

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 160, Height: 50})
	out := m.View()

	assert.Contains(t, out, content.Brand)
	assert.Contains(t, out, content.ChartTitle)
	assert.Contains(t, out, content.HeroTitle)
	assert.Contains(t, out, "Ops Log")
	assert.Contains(t, out, m.Frame().Readout)
	assert.Contains(t, out, content.CTAPrimary)
	assert.Contains(t, out, content.Legal[0])
}

func TestRenderCredits(t *testing.T) {
	m := newTestModel(t)

	m.width = 200
	out := m.renderCredits()
	assert.Contains(t, out, content.FooterTagline)
	assert.Contains(t, out, strings.Join(content.Legal, " · "))

	// narrow terminals drop the tagline before the legal links
	m.width = 50
	out = m.renderCredits()
	assert.NotContains(t, out, "hyper-performance")
	assert.Contains(t, out, content.Legal[2])
}

func TestRenderAreaChart(t *testing.T) {
	assert.Contains(t, renderAreaChart(nil, 40, 5, 0, 100), "Waiting")

	out := renderAreaChart([]float64{0, 50, 100}, 30, 4, 0, 100)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 6)
	assert.Contains(t, lines[0], "100")
	assert.Contains(t, lines[4], "0")
}

func TestStretch(t *testing.T) {
	assert.Equal(t, []float64{2, 3}, stretch([]float64{1, 2, 3}, 2))
	assert.Equal(t, []float64{1, 1, 1, 2}, stretch([]float64{1, 2}, 4))
	assert.Equal(t, []float64{7}, stretch([]float64{7}, 1))
}

func TestAxisLabel(t *testing.T) {
	assert.Equal(t, "1100k", axisLabel(1100000))
	assert.Equal(t, "400k", axisLabel(400000))
	assert.Equal(t, "50", axisLabel(50))
}

func TestStyleEvent(t *testing.T) {
	e := model.Event{At: time.Date(2024, 1, 1, 12, 30, 0, 0, time.UTC), Level: model.EventBound, Message: "held at bound"}
	out := styleEvent(e, 80)
	assert.Contains(t, out, "12:30:00")
	assert.Contains(t, out, "held at bound")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", truncate("hello", 10))
	assert.Equal(t, "he...", truncate("hello world", 5))
	assert.Equal(t, "hel", truncate("hello", 3))
}
