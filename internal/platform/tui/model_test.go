package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/zombie/internal/assets"
	"github.com/vovakirdan/zombie/internal/config"
	"github.com/vovakirdan/zombie/internal/core"
	"github.com/vovakirdan/zombie/internal/scene"
)

// stepClock advances by step on every reading.
type stepClock struct {
	now  time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time {
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

func newTestModel(t *testing.T, images *assets.Cache) *Model {
	t.Helper()
	scenes, err := scene.Default(assets.DefaultCache())
	require.NoError(t, err)

	clock := &stepClock{now: time.Unix(1000, 0), step: 5 * time.Millisecond}
	m, err := NewModel(Options{
		Runtime: core.RuntimeConfig{Cols: 80, Rows: 24, Seed: 1},
		Config:  config.Default(),
		Scenes:  scenes,
		Images:  images,
		Clock:   clock.Now,
	})
	require.NoError(t, err)
	require.NotNil(t, m.Init())
	return m
}

func tick(t *testing.T, m *Model, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, cmd := m.Update(TickMsg(time.Time{}))
		require.NoError(t, m.Err())
		require.NotNil(t, cmd, "every frame schedules the next")
	}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelRendersFirstScene(t *testing.T) {
	m := newTestModel(t, nil)
	tick(t, m, 1)

	assert.Contains(t, m.View(), "find the way out")
	assert.Equal(t, "maze", m.Director().Current().ID)
}

func TestModelWalksActor(t *testing.T) {
	m := newTestModel(t, nil)
	start := m.Director().Actor().Position()

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	tick(t, m, 10)

	pos := m.Director().Actor().Position()
	assert.Less(t, pos.Y, start.Y, "up moves toward smaller y")
	assert.InDelta(t, start.X, pos.X, 1e-9)
}

func TestModelHeldKeyDrivesNextSceneActor(t *testing.T) {
	m := newTestModel(t, nil)
	right := tea.KeyMsg{Type: tea.KeyRight}

	m.Update(right)
	tick(t, m, 2)

	m.Director().Next()
	require.Equal(t, "vision", m.Director().Current().ID)
	actor := m.Director().Actor()
	start := actor.Position()

	// The terminal keeps repeating the held key
	for i := 0; i < 10; i++ {
		m.Update(right)
		tick(t, m, 1)
	}

	assert.Positive(t, actor.Velocity())
	assert.Greater(t, actor.Position().X, start.X)
	assert.Equal(t, "vision", m.Director().Current().ID)
}

func TestModelReleasesHeldKeyOnBlur(t *testing.T) {
	m := newTestModel(t, nil)

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Positive(t, m.Director().Actor().Velocity())

	m.Update(tea.BlurMsg{})
	assert.Zero(t, m.Director().Actor().Velocity())
}

func TestModelReleasesHeldKeyAfterTimeout(t *testing.T) {
	m := newTestModel(t, nil)

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	// 5ms per clock reading, several readings per frame
	tick(t, m, 100)

	assert.Zero(t, m.Director().Actor().Velocity())
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	assert.True(t, isQuit(cmd))
	assert.Empty(t, m.View())
	assert.NoError(t, m.Err())
}

func TestModelTogglesStats(t *testing.T) {
	m := newTestModel(t, nil)
	require.False(t, m.Scheduler().ShowStats())

	m.Update(tea.KeyMsg{Type: tea.KeyF12})
	assert.True(t, m.Scheduler().ShowStats())

	tick(t, m, 2)
	assert.Contains(t, m.View(), "FPS, Rendering @")
}

func TestModelRestart(t *testing.T) {
	m := newTestModel(t, nil)
	m.Director().Next()
	require.Equal(t, 1, m.Director().Index())

	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.Equal(t, 0, m.Director().Index())
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, nil)

	m.Update(tea.WindowSizeMsg{Width: 40, Height: 12})
	cols, rows := m.Scheduler().Size()
	assert.Equal(t, 40, cols)
	assert.Equal(t, 12, rows)

	tick(t, m, 1)
	assert.Equal(t, 40, m.Scheduler().Visible().Cols())
}

func TestModelFrameErrorQuits(t *testing.T) {
	// Scenes reference images this cache does not have
	m := newTestModel(t, assets.NewCache(nil))

	_, cmd := m.Update(TickMsg(time.Time{}))
	assert.True(t, isQuit(cmd))
	assert.ErrorIs(t, m.Err(), assets.ErrUnknownImage)
}

func TestModelRuntimeRate(t *testing.T) {
	scenes, err := scene.Default(assets.DefaultCache())
	require.NoError(t, err)

	_, err = NewModel(Options{
		Runtime: core.RuntimeConfig{RefreshRate: 60, ShowStats: true},
		Config:  config.Default(),
		Scenes:  scenes,
	})
	require.NoError(t, err)

	_, err = NewModel(Options{Config: config.Default()})
	assert.ErrorIs(t, err, scene.ErrNoScenes)
}
