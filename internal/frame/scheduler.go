// Package frame runs the double-buffered draw cycle and paces it to a
// target rate. It knows nothing about what is drawn; the host calls Cycle
// and schedules the next call after the returned wait.
package frame

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/zombie/internal/core"
	"github.com/vovakirdan/zombie/internal/input"
)

// ErrNotStarted is returned by Cycle before Start.
var ErrNotStarted = errors.New("frame: scheduler not started")

// DrawFunc renders one frame into dst. width and height are in pixels.
type DrawFunc func(dst *core.Screen, width, height int) error

// Options configures a Scheduler.
type Options struct {
	TargetRate  float64       // frames per second
	MinWait     time.Duration // floor on the delay between frames
	StatsWindow time.Duration // how often FPS and duty are latched
	StatsX      int           // overlay column
	StatsY      int           // overlay row
	StatsColor  core.Color
	Clock       func() time.Time
	Logger      *log.Logger
}

// DefaultOptions returns 40 Hz with a 10ms floor and a one second window.
func DefaultOptions() Options {
	return Options{
		TargetRate:  40,
		MinWait:     10 * time.Millisecond,
		StatsWindow: time.Second,
		StatsColor:  core.ColorBrightWhite,
		Clock:       time.Now,
	}
}

// Scheduler owns the front and back buffers. All methods run on the host's
// event goroutine.
type Scheduler struct {
	draw DrawFunc
	opts Options
	log  *log.Logger

	buffers [2]*core.Screen
	visible int
	started bool
	onReady func()
	cols    int
	rows    int

	showStats bool
	sampler   Sampler
	stats     Stats
}

// New creates a stopped scheduler. Zero options fall back to DefaultOptions.
func New(draw DrawFunc, opts Options) *Scheduler {
	def := DefaultOptions()
	if opts.TargetRate <= 0 {
		opts.TargetRate = def.TargetRate
	}
	if opts.MinWait <= 0 {
		opts.MinWait = def.MinWait
	}
	if opts.StatsWindow <= 0 {
		opts.StatsWindow = def.StatsWindow
	}
	if opts.StatsColor == core.ColorDefault {
		opts.StatsColor = def.StatsColor
	}
	if opts.Clock == nil {
		opts.Clock = def.Clock
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Scheduler{
		draw: draw,
		opts: opts,
		log:  logger,
	}
}

// Start allocates both buffers at cols x rows cells and arms the one-shot
// ready callback, which runs at the start of the first Cycle.
func (s *Scheduler) Start(cols, rows int, onReady func()) {
	s.cols, s.rows = cols, rows
	s.buffers[0] = core.NewScreen(cols, rows)
	s.buffers[1] = core.NewScreen(cols, rows)
	s.buffers[0].Show()
	s.visible = 0
	s.onReady = onReady
	s.started = true
	s.sampler.Reset(s.opts.Clock())
}

// Started reports whether Start has been called.
func (s *Scheduler) Started() bool {
	return s.started
}

// Cycle draws one frame into the back buffer, makes it visible and returns
// the delay before the next cycle. A draw error is returned unchanged and
// leaves the previous frame on display.
func (s *Scheduler) Cycle() (time.Duration, error) {
	if !s.started {
		return 0, ErrNotStarted
	}

	if s.onReady != nil {
		ready := s.onReady
		s.onReady = nil
		ready()
	}

	start := s.opts.Clock()

	if st, ok := s.sampler.Sample(start, s.opts.StatsWindow); ok {
		s.stats = st
		s.log.Debug("frame stats", "fps", st.FPS, "duty", st.RenderDuty)
	}

	back := 1 - s.visible
	buf := s.buffers[back]
	buf.Clear()
	if err := s.draw(buf, buf.Width(), buf.Height()); err != nil {
		return 0, err
	}
	if s.showStats {
		buf.DrawText(s.opts.StatsX, s.opts.StatsY, s.statsLine(), s.opts.StatsColor)
	}

	buf.Show()
	s.buffers[s.visible].Hide()
	s.visible = back

	render := s.opts.Clock().Sub(start)
	s.sampler.Record(render)
	return s.Wait(render), nil
}

func (s *Scheduler) statsLine() string {
	return fmt.Sprintf("%d FPS, Rendering @ %.2f%%", s.stats.FPS, s.stats.RenderDuty*100)
}

// Wait returns the delay that keeps the target rate after a frame that took
// render, never less than MinWait.
func (s *Scheduler) Wait(render time.Duration) time.Duration {
	wait := time.Duration(float64(time.Second)/s.opts.TargetRate) - render
	if wait < s.opts.MinWait {
		wait = s.opts.MinWait
	}
	return wait
}

// Resize reallocates both buffers. It is ignored before Start.
func (s *Scheduler) Resize(cols, rows int) {
	if !s.started {
		return
	}
	s.cols, s.rows = cols, rows
	s.buffers[0].Resize(cols, rows)
	s.buffers[1].Resize(cols, rows)
	s.log.Debug("resize", "cols", cols, "rows", rows)
}

// Size returns the buffer size in cells.
func (s *Scheduler) Size() (int, int) {
	return s.cols, s.rows
}

// HandleEvent toggles the stats overlay on a stats key press.
func (s *Scheduler) HandleEvent(ev input.Event) {
	if ev.Kind == input.Press && ev.Action == core.ActionStats {
		s.ToggleStats()
	}
}

// ToggleStats flips the stats overlay.
func (s *Scheduler) ToggleStats() {
	s.showStats = !s.showStats
}

// SetShowStats sets the stats overlay.
func (s *Scheduler) SetShowStats(show bool) {
	s.showStats = show
}

// ShowStats reports whether the stats overlay is on.
func (s *Scheduler) ShowStats() bool {
	return s.showStats
}

// Stats returns the most recently latched statistics.
func (s *Scheduler) Stats() Stats {
	return s.stats
}

// Visible returns the buffer on display, or nil before Start.
func (s *Scheduler) Visible() *core.Screen {
	if !s.started {
		return nil
	}
	return s.buffers[s.visible]
}

// Back returns the buffer the next frame draws into, or nil before Start.
func (s *Scheduler) Back() *core.Screen {
	if !s.started {
		return nil
	}
	return s.buffers[1-s.visible]
}
