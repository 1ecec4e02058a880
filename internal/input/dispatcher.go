// Package input delivers key events to the components that asked for them.
// Listeners run synchronously on the scheduler goroutine and must not block.
package input

import (
	"github.com/vovakirdan/zombie/internal/core"
)

// Kind distinguishes key presses from key releases.
type Kind int

const (
	Press Kind = iota
	Release
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	if k == Release {
		return "Release"
	}
	return "Press"
}

// Event is a single key transition.
type Event struct {
	Kind   Kind
	Key    string      // Bubble Tea key name, e.g. "left" or "a"
	Action core.Action // Semantic action bound to Key, ActionNone if unbound
}

// Listener receives key events.
type Listener func(Event)

// ListenerID identifies a registered listener for removal.
type ListenerID uint64

// Registrar is the capability to subscribe to key events.
// Components receive this instead of the whole dispatcher.
type Registrar interface {
	Add(l Listener) ListenerID
	Remove(id ListenerID)
}

type entry struct {
	id ListenerID
	fn Listener
}

// Dispatcher keeps an ordered list of listeners.
type Dispatcher struct {
	listeners []entry
	nextID    ListenerID
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Add registers a listener and returns its ID.
func (d *Dispatcher) Add(l Listener) ListenerID {
	d.nextID++
	d.listeners = append(d.listeners, entry{id: d.nextID, fn: l})
	return d.nextID
}

// Remove unregisters a listener. Unknown IDs are ignored.
func (d *Dispatcher) Remove(id ListenerID) {
	kept := d.listeners[:0:0]
	for _, e := range d.listeners {
		if e.id != id {
			kept = append(kept, e)
		}
	}
	d.listeners = kept
}

// Len returns the number of registered listeners.
func (d *Dispatcher) Len() int {
	return len(d.listeners)
}

// Dispatch delivers ev to every listener in registration order.
// Iteration runs over a snapshot: listeners added during dispatch see the
// next event, and listeners removed during dispatch are skipped.
func (d *Dispatcher) Dispatch(ev Event) {
	snapshot := make([]entry, len(d.listeners))
	copy(snapshot, d.listeners)

	for _, e := range snapshot {
		if !d.registered(e.id) {
			continue
		}
		e.fn(ev)
	}
}

// registered reports whether id is still subscribed.
func (d *Dispatcher) registered(id ListenerID) bool {
	for _, e := range d.listeners {
		if e.id == id {
			return true
		}
	}
	return false
}

// Ensure Dispatcher implements Registrar
var _ Registrar = (*Dispatcher)(nil)
