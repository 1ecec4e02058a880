package world

import (
	"time"

	"github.com/vovakirdan/zombie/internal/assets"
	"github.com/vovakirdan/zombie/internal/core"
)

// Surface is the drawing contract consumed by scene elements.
// Coordinates are pixels; *core.Screen implements it.
type Surface interface {
	Width() int
	Height() int
	FillRect(x1, y1, x2, y2 float64, c core.Color)
	Line(x1, y1, x2, y2, width float64, c core.Color)
	Text(x, y float64, text string, c core.Color, anchor core.Anchor)
	DrawImage(cx, cy float64, img core.Bitmap)
}

// Drawable is anything placed in the world that can render itself.
// scale converts world units to pixels; (ox, oy) is the pixel offset of
// the world origin.
type Drawable interface {
	Draw(dst Surface, scale, ox, oy float64)
}

// Entity is a drawable with per-frame behavior, such as the actor.
type Entity interface {
	Drawable
	Update(now time.Time, w *World)
	Kill()
}

// ImageSource resolves image keys to sprites.
type ImageSource interface {
	Image(key string) (*assets.Sprite, error)
}

// TextObject is a static text decoration.
type TextObject struct {
	X, Y   float64
	Text   string
	Color  core.Color
	Anchor core.Anchor
}

// Draw places the text at its scaled world position.
func (o TextObject) Draw(dst Surface, scale, ox, oy float64) {
	dst.Text(ox+o.X*scale, oy+o.Y*scale, o.Text, o.Color, o.Anchor)
}

// PlacedImage references a cached image centered on a world point.
type PlacedImage struct {
	X, Y float64
	Key  string
}

// Ensure implementations satisfy their interfaces
var (
	_ Surface  = (*core.Screen)(nil)
	_ Drawable = TextObject{}
	_ Entity   = (*Actor)(nil)
)
