// Package world holds the scene being simulated: walls, decorations,
// images, entities and the trigger points that move play forward.
package world

import (
	"fmt"
	"time"

	"github.com/vovakirdan/zombie/internal/core"
)

// Options controls wall rendering and trigger reach.
type Options struct {
	WallWidth          float64 // main stroke width, world units
	WallExtensionWidth float64 // end extension width, world units
	WallSetBack        float64 // main stroke shortening per end; negative lengthens
	WallExtension      float64 // end extension length, world units
	WallColor          core.Color
	Background         core.Color
	PointDistance      float64 // trigger activation radius, world units
}

// DefaultOptions returns the standard scene look.
func DefaultOptions() Options {
	return Options{
		WallWidth:          0.35,
		WallExtensionWidth: 0.2,
		WallSetBack:        -0.1,
		WallExtension:      0.15,
		WallColor:          core.ColorBlack,
		Background:         core.ColorDarkGray,
		PointDistance:      0.5,
	}
}

// Layout is the static content of a scene.
type Layout struct {
	Width, Height float64
	Background    core.Color // ColorDefault selects Options.Background
	Walls         []Wall
	Objects       []Drawable
	Images        []PlacedImage
}

// Trigger is a point that fires its callback when the actor comes within
// PointDistance of it.
type Trigger struct {
	Point core.Vec2
	Fire  func(a *Actor)

	generation uint64
}

// World owns the active scene. It is driven from a single goroutine.
type World struct {
	opts   Options
	images ImageSource

	width, height float64
	background    core.Color
	walls         []Wall
	objects       []Drawable
	placed        []PlacedImage

	entities   []Entity
	triggers   []Trigger
	generation uint64
}

// New creates an empty 1x1 world.
func New(images ImageSource, opts Options) *World {
	return &World{
		opts:       opts,
		images:     images,
		width:      1,
		height:     1,
		background: opts.Background,
	}
}

// Options returns the world's rendering options.
func (w *World) Options() Options {
	return w.opts
}

// SetScene replaces the static content. Entities and triggers are left
// to the caller.
func (w *World) SetScene(l Layout) {
	w.width, w.height = l.Width, l.Height
	if w.width <= 0 {
		w.width = 1
	}
	if w.height <= 0 {
		w.height = 1
	}
	w.background = l.Background
	if w.background == core.ColorDefault {
		w.background = w.opts.Background
	}
	w.walls = append([]Wall(nil), l.Walls...)
	w.objects = append([]Drawable(nil), l.Objects...)
	w.placed = append([]PlacedImage(nil), l.Images...)
}

// Size returns the world dimensions in world units.
func (w *World) Size() (float64, float64) {
	return w.width, w.height
}

// Walls returns the active walls. The slice must not be modified.
func (w *World) Walls() []Wall {
	return w.walls
}

// AddEntity appends an entity to the update and draw list.
func (w *World) AddEntity(e Entity) {
	w.entities = append(w.entities, e)
}

// ClearEntities kills and removes every entity.
func (w *World) ClearEntities() {
	old := w.entities
	w.entities = nil
	for _, e := range old {
		e.Kill()
	}
}

// Entities returns a copy of the entity list.
func (w *World) Entities() []Entity {
	return append([]Entity(nil), w.entities...)
}

func (w *World) hasEntity(e Entity) bool {
	for _, have := range w.entities {
		if have == e {
			return true
		}
	}
	return false
}

// AddTrigger registers a trigger point for the current activation.
func (w *World) AddTrigger(p core.Vec2, fire func(a *Actor)) {
	w.triggers = append(w.triggers, Trigger{Point: p, Fire: fire, generation: w.generation})
}

// ClearTriggers removes every trigger and starts a new activation.
// Triggers from earlier activations never fire, even from a pass that is
// already iterating over them.
func (w *World) ClearTriggers() {
	w.triggers = nil
	w.generation++
}

// Triggers returns a copy of the active triggers.
func (w *World) Triggers() []Trigger {
	return append([]Trigger(nil), w.triggers...)
}

// CheckTriggers fires every trigger within PointDistance of the actor.
// Firing ends the activation: all triggers are cleared before the callbacks
// run, so each trigger fires at most once and callbacks may install new
// ones freely. Coincident triggers reached in the same pass all fire.
func (w *World) CheckTriggers(a *Actor) {
	if len(w.triggers) == 0 {
		return
	}

	gen := w.generation
	var fired []Trigger
	for _, t := range w.triggers {
		if t.generation != gen {
			continue
		}
		if a.Position().Dist(t.Point) <= w.opts.PointDistance {
			fired = append(fired, t)
		}
	}
	if len(fired) == 0 {
		return
	}

	w.ClearTriggers()
	for _, t := range fired {
		if t.Fire != nil {
			t.Fire(a)
		}
	}
}

// Transform returns the letterbox mapping of the world onto a width x height
// pixel area: the uniform scale that fits the whole world, and the offsets
// that center it.
func (w *World) Transform(width, height int) (scale, ox, oy float64) {
	fw, fh := float64(width), float64(height)
	scale = fw / w.width
	if s := fh / w.height; s < scale {
		scale = s
	}
	ox = (fw - w.width*scale) / 2
	oy = (fh - w.height*scale) / 2
	return scale, ox, oy
}

// Frame advances every entity to now and composes the scene onto dst:
// background, walls, objects, entities, then images.
func (w *World) Frame(dst Surface, width, height int, now time.Time) error {
	for _, e := range w.Entities() {
		// An earlier update may have switched scenes
		if !w.hasEntity(e) {
			continue
		}
		e.Update(now, w)
	}

	if width <= 0 || height <= 0 {
		return nil
	}
	scale, ox, oy := w.Transform(width, height)

	dst.FillRect(0, 0, float64(width), float64(height), w.background)
	w.drawWalls(dst, scale, ox, oy)
	for _, o := range w.objects {
		o.Draw(dst, scale, ox, oy)
	}
	for _, e := range w.entities {
		e.Draw(dst, scale, ox, oy)
	}
	if len(w.placed) > 0 && w.images == nil {
		return fmt.Errorf("world: scene has images but no image source")
	}
	for _, p := range w.placed {
		img, err := w.images.Image(p.Key)
		if err != nil {
			return fmt.Errorf("world: draw image: %w", err)
		}
		dst.DrawImage(ox+p.X*scale, oy+p.Y*scale, img)
	}
	return nil
}

// drawWalls strokes each wall with its main line pulled back from the
// endpoints and a thinner extension past each end.
func (w *World) drawWalls(dst Surface, scale, ox, oy float64) {
	setBack := w.opts.WallSetBack * scale
	ext := w.opts.WallExtension * scale

	for _, wall := range w.walls {
		x1, y1 := ox+wall.X1*scale, oy+wall.Y1*scale
		x2, y2 := ox+wall.X2*scale, oy+wall.Y2*scale
		ex1, ey1, ex2, ey2 := x1, y1, x2, y2

		switch {
		case x1 < x2:
			x1 += setBack
			x2 -= setBack
			ex1 -= ext
			ex2 += ext
		case x1 > x2:
			x1 -= setBack
			x2 += setBack
			ex1 += ext
			ex2 -= ext
		}
		switch {
		case y1 < y2:
			y1 += setBack
			y2 -= setBack
			ey1 -= ext
			ey2 += ext
		case y1 > y2:
			y1 -= setBack
			y2 += setBack
			ey1 += ext
			ey2 -= ext
		}

		dst.Line(x1, y1, x2, y2, w.opts.WallWidth*scale, w.opts.WallColor)
		dst.Line(x1, y1, ex1, ey1, w.opts.WallExtensionWidth*scale, w.opts.WallColor)
		dst.Line(x2, y2, ex2, ey2, w.opts.WallExtensionWidth*scale, w.opts.WallColor)
	}
}
