package scene

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/zombie/internal/core"
	"github.com/vovakirdan/zombie/internal/input"
	"github.com/vovakirdan/zombie/internal/world"
)

// DirectorOptions configures a Director.
type DirectorOptions struct {
	Rand   *rand.Rand  // picks random exits; nil seeds from 1
	Logger *log.Logger // nil discards
	Actor  world.ActorOptions
}

// Director steps the world through the scene sequence. Entering a scene
// tears down everything the previous one created.
type Director struct {
	world  *world.World
	input  input.Registrar
	scenes []Descriptor

	rng       *rand.Rand
	log       *log.Logger
	actorOpts world.ActorOptions

	index    int
	actor    *world.Actor
	listener input.ListenerID
	closed   bool
}

// NewDirector registers the restart listener and enters the first scene.
func NewDirector(w *world.World, l input.Registrar, scenes []Descriptor, opts DirectorOptions) (*Director, error) {
	if len(scenes) == 0 {
		return nil, ErrNoScenes
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(1))
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	d := &Director{
		world:     w,
		input:     l,
		scenes:    scenes,
		rng:       opts.Rand,
		log:       opts.Logger,
		actorOpts: opts.Actor,
	}
	d.listener = l.Add(d.handleEvent)
	if err := d.SetScene(0); err != nil {
		l.Remove(d.listener)
		return nil, err
	}
	return d, nil
}

func (d *Director) handleEvent(ev input.Event) {
	if ev.Kind == input.Press && ev.Action == core.ActionRestart {
		d.Restart()
	}
}

// SetScene enters scene i: triggers and entities are cleared, the layout is
// installed, an actor is spawned if the scene has one, and exit triggers
// are registered unless i is the last scene.
func (d *Director) SetScene(i int) error {
	if i < 0 || i >= len(d.scenes) {
		return fmt.Errorf("scene: index %d out of range [0, %d)", i, len(d.scenes))
	}

	d.world.ClearTriggers()
	d.world.ClearEntities()
	d.actor = nil

	d.index = i
	desc := d.scenes[i]
	d.world.SetScene(desc.Layout)

	if s := desc.Spawn; s != nil {
		a := world.NewActor(s.X, s.Y, s.Size, d.actorOpts)
		a.Bind(d.input)
		d.world.AddEntity(a)
		d.actor = a
	}

	exits := 0
	if i < len(d.scenes)-1 {
		for _, p := range desc.Exits(d.rng.Intn) {
			d.world.AddTrigger(p, d.onExit)
			exits++
		}
	}

	d.log.Info("scene entered", "id", desc.ID, "index", i, "actor", d.actor != nil, "exits", exits)
	return nil
}

func (d *Director) onExit(a *world.Actor) {
	p := a.Position()
	d.log.Debug("exit reached", "scene", d.scenes[d.index].ID, "x", p.X, "y", p.Y)
	d.Next()
}

// Next enters the following scene. It does nothing on the last scene.
func (d *Director) Next() {
	if d.index+1 >= len(d.scenes) {
		return
	}
	// Index is in range, so SetScene cannot fail
	_ = d.SetScene(d.index + 1)
}

// Restart returns to the first scene from any scene.
func (d *Director) Restart() {
	d.log.Info("restart", "from", d.scenes[d.index].ID)
	_ = d.SetScene(0)
}

// Close unregisters the restart listener and removes every entity.
func (d *Director) Close() {
	if d.closed {
		return
	}
	d.closed = true
	d.input.Remove(d.listener)
	d.world.ClearTriggers()
	d.world.ClearEntities()
	d.actor = nil
}

// Current returns the active scene.
func (d *Director) Current() Descriptor {
	return d.scenes[d.index]
}

// Index returns the position of the active scene in the sequence.
func (d *Director) Index() int {
	return d.index
}

// Actor returns the controllable actor, or nil if the scene has none.
func (d *Director) Actor() *world.Actor {
	return d.actor
}

// Scenes returns the scene sequence.
func (d *Director) Scenes() []Descriptor {
	return d.scenes
}
