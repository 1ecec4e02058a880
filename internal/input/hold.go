package input

import (
	"sort"
	"time"

	"github.com/vovakirdan/zombie/internal/core"
)

// DefaultReleaseAfter covers the usual terminal auto-repeat delay (250-500ms).
const DefaultReleaseAfter = 550 * time.Millisecond

// HoldTracker turns a terminal key stream into press/release pairs.
// Terminals only report presses (repeated while a key is held), so a held
// movement key is released once no repeat has arrived for ReleaseAfter.
type HoldTracker struct {
	ReleaseAfter time.Duration
	held         map[string]held
}

type held struct {
	action   core.Action
	lastSeen time.Time
}

// NewHoldTracker creates a tracker with the given release timeout.
// A non-positive timeout selects DefaultReleaseAfter.
func NewHoldTracker(releaseAfter time.Duration) *HoldTracker {
	if releaseAfter <= 0 {
		releaseAfter = DefaultReleaseAfter
	}
	return &HoldTracker{
		ReleaseAfter: releaseAfter,
		held:         make(map[string]held),
	}
}

// Key records a key sighting and returns the events it produces.
// Movement keys produce a Press on every sighting, so an auto-repeating key
// reaches listeners registered while it is held; other keys produce an
// immediate Press and Release.
func (h *HoldTracker) Key(key string, action core.Action, now time.Time) []Event {
	if !action.IsMovement() {
		return []Event{
			{Kind: Press, Key: key, Action: action},
			{Kind: Release, Key: key, Action: action},
		}
	}

	h.held[key] = held{action: action, lastSeen: now}
	return []Event{{Kind: Press, Key: key, Action: action}}
}

// Expire returns Release events for keys not seen since now-ReleaseAfter.
// Events are ordered by key name so replays are deterministic.
func (h *HoldTracker) Expire(now time.Time) []Event {
	return h.release(func(v held) bool {
		return now.Sub(v.lastSeen) >= h.ReleaseAfter
	})
}

// ReleaseAll releases every held key.
func (h *HoldTracker) ReleaseAll() []Event {
	return h.release(func(held) bool { return true })
}

func (h *HoldTracker) release(match func(held) bool) []Event {
	var keys []string
	for k, v := range h.held {
		if match(v) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	events := make([]Event, 0, len(keys))
	for _, k := range keys {
		events = append(events, Event{Kind: Release, Key: k, Action: h.held[k].action})
		delete(h.held, k)
	}
	return events
}

// Held reports whether a key is currently considered held.
func (h *HoldTracker) Held(key string) bool {
	_, ok := h.held[key]
	return ok
}
