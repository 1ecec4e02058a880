package frame

import (
	"math"
	"testing"
	"time"
)

func TestSamplerLatchesWindow(t *testing.T) {
	start := time.Unix(1000, 0)
	var s Sampler
	s.Reset(start)

	renders := []time.Duration{
		100 * time.Millisecond,
		50 * time.Millisecond,
		250 * time.Millisecond,
		100 * time.Millisecond,
	}
	var busy time.Duration
	for _, r := range renders {
		s.Record(r)
		busy += r
	}

	if _, ok := s.Sample(start.Add(999*time.Millisecond), time.Second); ok {
		t.Fatal("Window should not close before it has elapsed")
	}

	st, ok := s.Sample(start.Add(time.Second), time.Second)
	if !ok {
		t.Fatal("Window should close after one second")
	}
	if st.FPS != len(renders) {
		t.Errorf("FPS = %d, expected %d", st.FPS, len(renders))
	}
	if math.Abs(st.RenderDuty-busy.Seconds()) > 1e-9 {
		t.Errorf("RenderDuty = %v, expected %v", st.RenderDuty, busy.Seconds())
	}
	if s.Frames() != 0 || s.Busy() != 0 {
		t.Errorf("Accumulators not reset: frames=%d busy=%v", s.Frames(), s.Busy())
	}
}

func TestSamplerFirstSampleOpensWindow(t *testing.T) {
	var s Sampler
	now := time.Unix(1000, 0)
	s.Record(time.Millisecond)

	if _, ok := s.Sample(now, 0); ok {
		t.Error("First sample should only open the window")
	}
	if _, ok := s.Sample(now.Add(2*time.Second), time.Second); !ok {
		t.Error("Second sample past the window should latch")
	}
}

func TestSamplerEmptyWindow(t *testing.T) {
	now := time.Unix(1000, 0)
	var s Sampler
	s.Reset(now)

	st, ok := s.Sample(now, 0)
	if !ok {
		t.Fatal("Zero-length window should latch immediately")
	}
	if st.FPS != 0 || st.RenderDuty != 0 {
		t.Errorf("Empty window = %+v, expected zeros", st)
	}
	if math.IsNaN(st.RenderDuty) || math.IsInf(st.RenderDuty, 0) {
		t.Error("RenderDuty must stay finite")
	}
}
