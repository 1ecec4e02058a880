package world

import (
	"math"
	"time"

	"github.com/vovakirdan/zombie/internal/core"
	"github.com/vovakirdan/zombie/internal/input"
)

// ActorOptions tunes actor motion and appearance.
type ActorOptions struct {
	WalkSpeed     float64       // world units per second
	AnimationTime time.Duration // time between animation frames
	CollideRadius float64       // collision radius as a multiple of size
	Color         core.Color
}

// DefaultActorOptions returns the standard walking figure.
func DefaultActorOptions() ActorOptions {
	return ActorOptions{
		WalkSpeed:     4.0,
		AnimationTime: 200 * time.Millisecond,
		CollideRadius: 1.1,
		Color:         core.ColorBlack,
	}
}

// Actor is the player-controlled walking figure.
type Actor struct {
	opts ActorOptions

	pos  core.Vec2
	size float64

	velocity  float64
	direction float64
	xc, yc    int

	up, down, left, right bool

	facingRight   bool
	animation     bool
	lastAnimation time.Time
	lastUpdate    time.Time

	registrar input.Registrar
	listener  input.ListenerID
	bound     bool
}

// NewActor creates an idle actor at (x, y). Zero-valued options fall back
// to DefaultActorOptions.
func NewActor(x, y, size float64, opts ActorOptions) *Actor {
	def := DefaultActorOptions()
	if opts.WalkSpeed <= 0 {
		opts.WalkSpeed = def.WalkSpeed
	}
	if opts.AnimationTime <= 0 {
		opts.AnimationTime = def.AnimationTime
	}
	if opts.CollideRadius <= 0 {
		opts.CollideRadius = def.CollideRadius
	}
	if opts.Color == core.ColorDefault {
		opts.Color = def.Color
	}
	return &Actor{
		opts:        opts,
		pos:         core.V(x, y),
		size:        size,
		facingRight: true,
	}
}

// Bind subscribes the actor to key events.
func (a *Actor) Bind(r input.Registrar) {
	if a.bound {
		a.registrar.Remove(a.listener)
	}
	a.registrar = r
	a.listener = r.Add(a.HandleEvent)
	a.bound = true
}

// Kill unsubscribes the actor. It is safe to call more than once.
func (a *Actor) Kill() {
	if !a.bound {
		return
	}
	a.registrar.Remove(a.listener)
	a.bound = false
}

// Bound reports whether the actor is receiving key events.
func (a *Actor) Bound() bool {
	return a.bound
}

// HandleEvent updates axis intent from a movement key transition.
// A press sets the axis toward the pressed direction. A release clears the
// axis unless the opposite key is still held, in which case the axis flips.
func (a *Actor) HandleEvent(ev input.Event) {
	if !ev.Action.IsMovement() {
		return
	}

	switch ev.Kind {
	case input.Press:
		switch ev.Action {
		case core.ActionLeft:
			a.left = true
			a.xc = -1
		case core.ActionRight:
			a.right = true
			a.xc = 1
		case core.ActionUp:
			a.up = true
			a.yc = -1
		case core.ActionDown:
			a.down = true
			a.yc = 1
		}
	case input.Release:
		switch ev.Action {
		case core.ActionLeft:
			a.left = false
			a.xc = 0
			if a.right {
				a.xc = 1
			}
		case core.ActionRight:
			a.right = false
			a.xc = 0
			if a.left {
				a.xc = -1
			}
		case core.ActionUp:
			a.up = false
			a.yc = 0
			if a.down {
				a.yc = 1
			}
		case core.ActionDown:
			a.down = false
			a.yc = 0
			if a.up {
				a.yc = -1
			}
		}
	}

	switch {
	case a.xc > 0:
		a.facingRight = true
	case a.xc < 0:
		a.facingRight = false
	}

	if a.xc != 0 || a.yc != 0 {
		a.velocity = a.opts.WalkSpeed
	} else {
		a.velocity = 0
	}
	a.direction = math.Atan2(float64(a.yc), float64(a.xc))
}

// Update advances the actor to now, resolves walls and checks triggers.
// The first call only seeds the timestamp.
func (a *Actor) Update(now time.Time, w *World) {
	if now.Sub(a.lastAnimation) >= a.opts.AnimationTime {
		a.lastAnimation = now
		a.animation = !a.animation
	}

	if a.lastUpdate.IsZero() {
		a.lastUpdate = now
	}
	dt := now.Sub(a.lastUpdate).Seconds()
	a.lastUpdate = now
	if dt > 0 && a.velocity != 0 {
		a.pos = a.pos.Add(core.FromAngle(a.direction, a.velocity*dt))
	}

	if w == nil {
		return
	}
	for _, wall := range w.Walls() {
		a.ResolveWall(wall)
	}
	w.CheckTriggers(a)
}

// ResolveWall pushes the actor out of one wall's collision zone.
// Before the first endpoint or past the second, the actor is pushed radially
// away from that endpoint. Alongside the segment, the perpendicular offset
// is restored to the collision radius on the actor's side, keeping the
// along-wall component so the actor slides.
func (a *Actor) ResolveWall(wall Wall) {
	length := wall.Length()
	if length < MinWallLength {
		return
	}

	r := a.CollisionRadius()
	p1, p2 := wall.P1(), wall.P2()
	bearing := wall.Bearing()

	rel := a.pos.Sub(p1)
	dist := rel.Len()
	theta := rel.Angle()
	along := dist * math.Cos(theta-bearing)

	switch {
	case along < 0:
		if dist < r {
			a.pos = p1.Add(core.FromAngle(theta, r))
		}
	case along > length:
		rel2 := a.pos.Sub(p2)
		if rel2.Len() < r {
			a.pos = p2.Add(core.FromAngle(rel2.Angle(), r))
		}
	default:
		perp := dist * math.Sin(theta-bearing)
		if math.Abs(perp) < r {
			side := 1.0
			if perp < 0 {
				side = -1.0
			}
			a.pos = p1.
				Add(core.FromAngle(bearing, along)).
				Add(core.FromAngle(bearing+math.Pi/2, side*r))
		}
	}
}

// limb is one stroke of the figure in units of size, drawn facing right.
type limb struct {
	x1, y1, x2, y2, width float64
}

var (
	figureCore = []limb{
		{0, -1, 0, -0.7, 0.2},  // head
		{0, -0.6, 0, 0.6, 0.2}, // body
	}
	figureStride = []limb{
		{-0.2, 0.55, -0.3, 1, 0.2},
		{0.1, 0.5, 0.3, 1, 0.2},
		{0, -0.52, 0.45, -0.55, 0.18},
		{0.3, -0.45, 0.6, -0.45, 0.16},
		{0, -0.25, 0.35, -0.25, 0.16},
		{0.3, -0.15, 0.55, -0.15, 0.16},
	}
	figureStand = []limb{
		{-0.2, 0.5, -0.2, 1, 0.2},
		{0.2, 0.4, 0.2, 1, 0.2},
		{0, -0.5, 0.45, -0.5, 0.2},
		{0.3, -0.4, 0.6, -0.4, 0.16},
		{0, -0.2, 0.35, -0.2, 0.16},
		{0.3, -0.1, 0.55, -0.1, 0.16},
	}
)

// Draw renders the stick figure, arms stretched toward the facing side.
func (a *Actor) Draw(dst Surface, scale, ox, oy float64) {
	dir := 1.0
	if !a.facingRight {
		dir = -1.0
	}
	k := a.size * scale
	cx := ox + a.pos.X*scale
	cy := oy + a.pos.Y*scale

	stroke := func(l limb) {
		dst.Line(
			cx+l.x1*k*dir, cy+l.y1*k,
			cx+l.x2*k*dir, cy+l.y2*k,
			l.width*k, a.opts.Color,
		)
	}

	for _, l := range figureCore {
		stroke(l)
	}
	limbs := figureStand
	if a.animation {
		limbs = figureStride
	}
	for _, l := range limbs {
		stroke(l)
	}
}

// Position returns the actor's location in world units.
func (a *Actor) Position() core.Vec2 {
	return a.pos
}

// SetPosition moves the actor without collision checks.
func (a *Actor) SetPosition(p core.Vec2) {
	a.pos = p
}

// Size returns the actor's size in world units.
func (a *Actor) Size() float64 {
	return a.size
}

// Velocity returns the current speed in world units per second.
func (a *Actor) Velocity() float64 {
	return a.velocity
}

// Direction returns the current bearing in radians.
func (a *Actor) Direction() float64 {
	return a.direction
}

// Axis returns the horizontal and vertical intent, each in {-1, 0, 1}.
func (a *Actor) Axis() (int, int) {
	return a.xc, a.yc
}

// FacingRight reports the sticky horizontal facing.
func (a *Actor) FacingRight() bool {
	return a.facingRight
}

// AnimationPhase returns the current animation frame selector.
func (a *Actor) AnimationPhase() bool {
	return a.animation
}

// CollisionRadius returns the wall clearance in world units.
func (a *Actor) CollisionRadius() float64 {
	return a.opts.CollideRadius * a.size
}
