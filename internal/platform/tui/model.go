package tui

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/zombie/internal/assets"
	"github.com/vovakirdan/zombie/internal/config"
	"github.com/vovakirdan/zombie/internal/core"
	"github.com/vovakirdan/zombie/internal/frame"
	"github.com/vovakirdan/zombie/internal/input"
	"github.com/vovakirdan/zombie/internal/scene"
	"github.com/vovakirdan/zombie/internal/world"
)

// Options configures the terminal host.
type Options struct {
	Runtime core.RuntimeConfig
	Config  config.Config
	Scenes  []scene.Descriptor
	Images  *assets.Cache
	Logger  *log.Logger
	Clock   func() time.Time
}

// Model is the Bubble Tea model hosting the simulation.
// Every message is handled on the Bubble Tea goroutine, so the scheduler,
// world and input state need no locking.
type Model struct {
	sched    *frame.Scheduler
	world    *world.World
	director *scene.Director
	dispatch *input.Dispatcher
	hold     *input.HoldTracker
	keys     KeyMap
	renderer *Renderer
	log      *log.Logger
	clock    func() time.Time

	cols, rows int
	err        error
	quitting   bool
}

// NewModel wires the scheduler, world, director and input for the terminal
// size in opts.Runtime.
func NewModel(opts Options) (*Model, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	images := opts.Images
	if images == nil {
		images = assets.DefaultCache()
	}
	seed := opts.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg := opts.Config
	cols, rows := opts.Runtime.Size()

	m := &Model{
		dispatch: input.NewDispatcher(),
		hold:     input.NewHoldTracker(cfg.ReleaseAfter()),
		keys:     NewKeyMap(cfg.Input.Keys),
		renderer: NewRenderer(),
		log:      logger,
		clock:    clock,
		cols:     cols,
		rows:     rows,
	}
	m.world = world.New(images, cfg.WorldOptions())

	fo := cfg.FrameOptions()
	fo.Clock = clock
	fo.Logger = logger
	if opts.Runtime.RefreshRate > 0 {
		fo.TargetRate = opts.Runtime.RefreshRate
	}
	m.sched = frame.New(m.draw, fo)
	m.sched.SetShowStats(cfg.Display.ShowStats || opts.Runtime.ShowStats)
	m.dispatch.Add(m.sched.HandleEvent)

	director, err := scene.NewDirector(m.world, m.dispatch, opts.Scenes, scene.DirectorOptions{
		Rand:   rand.New(rand.NewSource(seed)),
		Logger: logger,
		Actor:  cfg.ActorOptions(),
	})
	if err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}
	m.director = director
	return m, nil
}

func (m *Model) draw(dst *core.Screen, width, height int) error {
	return m.world.Frame(dst, width, height, m.clock())
}

// Init starts the scheduler and schedules the first frame.
func (m *Model) Init() tea.Cmd {
	m.sched.Start(m.cols, m.rows, func() {
		m.log.Info("first frame", "cols", m.cols, "rows", m.rows, "scene", m.director.Current().ID)
	})
	return tickCmd(0)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.cols, m.rows = msg.Width, msg.Height
		m.sched.Resize(msg.Width, msg.Height)
		return m, nil

	case tea.BlurMsg:
		// Key repeats stop arriving once focus is lost
		m.dispatchAll(m.hold.ReleaseAll())
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionNone:
		return m, nil
	}

	m.dispatchAll(m.hold.Key(msg.String(), action, m.clock()))
	return m, nil
}

// handleTick releases expired keys, runs one frame and schedules the next.
func (m *Model) handleTick() (tea.Model, tea.Cmd) {
	m.dispatchAll(m.hold.Expire(m.clock()))

	wait, err := m.sched.Cycle()
	if err != nil {
		m.err = err
		m.log.Error("frame failed", "err", err)
		return m, tea.Quit
	}
	return m, tickCmd(wait)
}

func (m *Model) dispatchAll(events []input.Event) {
	for _, ev := range events {
		m.dispatch.Dispatch(ev)
	}
}

// saveScreenshot saves the visible frame to a file.
func (m *Model) saveScreenshot() {
	screen := m.sched.Visible()
	if screen == nil {
		return
	}

	dir := filepath.Join(os.Getenv("HOME"), ".zombie", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := m.clock().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.director.Current().ID, timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(screen.String()), 0o600); err != nil {
		m.log.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// View renders the visible buffer.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	screen := m.sched.Visible()
	if screen == nil {
		return ""
	}
	return m.renderer.Render(screen)
}

// Err returns the error that ended the program, if any.
func (m *Model) Err() error {
	return m.err
}

// Director returns the scene director.
func (m *Model) Director() *scene.Director {
	return m.director
}

// Scheduler returns the frame scheduler.
func (m *Model) Scheduler() *frame.Scheduler {
	return m.sched
}

// Close tears down the active scene.
func (m *Model) Close() {
	m.director.Close()
}

// Run starts the Bubble Tea program and blocks until the session ends.
// A frame error ends the program and is returned.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}
	defer model.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),   // Use alternate screen buffer
		tea.WithReportFocus(), // Release held keys on focus loss
	)

	if _, err := p.Run(); err != nil {
		return err
	}
	return model.Err()
}
