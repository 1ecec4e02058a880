package world

import (
	"github.com/vovakirdan/zombie/internal/core"
)

// MinWallLength is the shortest segment treated as a wall.
// Shorter segments have no defined bearing and are skipped by collision.
const MinWallLength = 1e-9

// Wall is an immutable line segment in world units.
type Wall struct {
	X1, Y1 float64
	X2, Y2 float64
}

// P1 returns the first endpoint.
func (w Wall) P1() core.Vec2 {
	return core.V(w.X1, w.Y1)
}

// P2 returns the second endpoint.
func (w Wall) P2() core.Vec2 {
	return core.V(w.X2, w.Y2)
}

// Length returns the segment length.
func (w Wall) Length() float64 {
	return w.P2().Sub(w.P1()).Len()
}

// Bearing returns the angle of the segment from P1 to P2.
func (w Wall) Bearing() float64 {
	return w.P2().Sub(w.P1()).Angle()
}

// Degenerate reports whether the segment is too short to collide with.
func (w Wall) Degenerate() bool {
	return w.Length() < MinWallLength
}

// Distance returns the distance from p to the nearest point of the segment.
func (w Wall) Distance(p core.Vec2) float64 {
	seg := w.P2().Sub(w.P1())
	l2 := seg.Dot(seg)
	if l2 == 0 {
		return p.Dist(w.P1())
	}
	t := core.ClampF(p.Sub(w.P1()).Dot(seg)/l2, 0, 1)
	return p.Dist(w.P1().Add(seg.Scale(t)))
}
