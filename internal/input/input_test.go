package input

import (
	"testing"
	"time"

	"github.com/vovakirdan/zombie/internal/core"
)

func TestDispatcherOrder(t *testing.T) {
	d := NewDispatcher()
	var got []string

	d.Add(func(Event) { got = append(got, "first") })
	d.Add(func(Event) { got = append(got, "second") })

	d.Dispatch(Event{Kind: Press, Key: "x"})

	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Errorf("Listeners called as %v, expected [first second]", got)
	}
}

func TestDispatcherRemove(t *testing.T) {
	d := NewDispatcher()
	calls := 0

	id := d.Add(func(Event) { calls++ })
	d.Remove(id)
	d.Remove(id) // Removing twice is harmless

	d.Dispatch(Event{})
	if calls != 0 {
		t.Errorf("Removed listener was called %d times", calls)
	}
	if d.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", d.Len())
	}
}

func TestDispatcherMutationDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	var order []string
	var victim ListenerID

	d.Add(func(Event) {
		order = append(order, "remover")
		d.Remove(victim)
		d.Add(func(Event) { order = append(order, "late") })
	})
	victim = d.Add(func(Event) { order = append(order, "victim") })

	d.Dispatch(Event{})
	if len(order) != 1 || order[0] != "remover" {
		t.Fatalf("First dispatch called %v, expected only [remover]", order)
	}

	order = nil
	d.Dispatch(Event{})
	// remover runs again (adding another late listener), then the first late one
	if len(order) != 2 || order[1] != "late" {
		t.Errorf("Second dispatch called %v, expected [remover late]", order)
	}
}

func TestHoldTrackerMovement(t *testing.T) {
	h := NewHoldTracker(500 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	evs := h.Key("left", core.ActionLeft, t0)
	if len(evs) != 1 || evs[0].Kind != Press || evs[0].Action != core.ActionLeft {
		t.Fatalf("First sighting should press, got %+v", evs)
	}

	// Auto-repeat keeps the key held and presses again
	evs = h.Key("left", core.ActionLeft, t0.Add(300*time.Millisecond))
	if len(evs) != 1 || evs[0].Kind != Press || evs[0].Action != core.ActionLeft {
		t.Errorf("Repeat should press again, got %+v", evs)
	}
	if evs := h.Expire(t0.Add(700 * time.Millisecond)); len(evs) != 0 {
		t.Errorf("Key seen 400ms ago should stay held, got %+v", evs)
	}

	evs = h.Expire(t0.Add(800 * time.Millisecond))
	if len(evs) != 1 || evs[0].Kind != Release || evs[0].Key != "left" {
		t.Fatalf("Expected release after timeout, got %+v", evs)
	}
	if h.Held("left") {
		t.Error("Released key should not be held")
	}
}

func TestHoldTrackerOneShot(t *testing.T) {
	h := NewHoldTracker(0)
	if h.ReleaseAfter != DefaultReleaseAfter {
		t.Errorf("ReleaseAfter = %v, expected default", h.ReleaseAfter)
	}

	evs := h.Key(" ", core.ActionRestart, time.Now())
	if len(evs) != 2 || evs[0].Kind != Press || evs[1].Kind != Release {
		t.Errorf("One-shot action should press and release, got %+v", evs)
	}
	if h.Held(" ") {
		t.Error("One-shot keys are never held")
	}
}

func TestHoldTrackerReleaseAll(t *testing.T) {
	h := NewHoldTracker(time.Second)
	now := time.Now()
	h.Key("w", core.ActionUp, now)
	h.Key("a", core.ActionLeft, now)

	evs := h.ReleaseAll()
	if len(evs) != 2 || evs[0].Key != "a" || evs[1].Key != "w" {
		t.Errorf("ReleaseAll() = %+v, expected releases for a and w in order", evs)
	}
}
