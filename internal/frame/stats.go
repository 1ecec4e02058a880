package frame

import (
	"time"
)

// minElapsed keeps the duty ratio finite when a window closes instantly.
const minElapsed = time.Microsecond

// Stats is the latched performance summary of one window.
type Stats struct {
	FPS        int           // frames completed in the window
	RenderDuty float64       // fraction of the window spent rendering
	Window     time.Duration // actual window length
}

// Sampler accumulates per-frame render durations and latches Stats once a
// window has elapsed.
type Sampler struct {
	frames int
	busy   time.Duration
	since  time.Time
}

// Record adds one completed frame and its render duration.
func (s *Sampler) Record(render time.Duration) {
	s.frames++
	s.busy += render
}

// Sample latches and resets the accumulators if at least window has passed
// since the last latch. The first call only opens the window.
func (s *Sampler) Sample(now time.Time, window time.Duration) (Stats, bool) {
	if s.since.IsZero() {
		s.since = now
		return Stats{}, false
	}

	elapsed := now.Sub(s.since)
	if elapsed < window {
		return Stats{}, false
	}
	if elapsed < minElapsed {
		elapsed = minElapsed
	}

	st := Stats{
		FPS:        s.frames,
		RenderDuty: s.busy.Seconds() / elapsed.Seconds(),
		Window:     elapsed,
	}
	s.Reset(now)
	return st, true
}

// Reset clears the accumulators and starts a new window at now.
func (s *Sampler) Reset(now time.Time) {
	s.frames = 0
	s.busy = 0
	s.since = now
}

// Frames returns the frame count of the open window.
func (s *Sampler) Frames() int {
	return s.frames
}

// Busy returns the summed render time of the open window.
func (s *Sampler) Busy() time.Duration {
	return s.busy
}
