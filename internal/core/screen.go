package core

import (
	"math"
	"strings"
	"unicode/utf8"
)

// Anchor says which point of a text block sits at the given position.
type Anchor int

const (
	AnchorNW Anchor = iota
	AnchorN
	AnchorNE
	AnchorW
	AnchorCenter
	AnchorE
	AnchorSW
	AnchorS
	AnchorSE
)

// ParseAnchor converts a compass name ("nw", "center", ...) to an Anchor.
func ParseAnchor(s string) (Anchor, bool) {
	switch strings.ToLower(s) {
	case "nw":
		return AnchorNW, true
	case "n":
		return AnchorN, true
	case "ne":
		return AnchorNE, true
	case "w":
		return AnchorW, true
	case "center", "c", "":
		return AnchorCenter, true
	case "e":
		return AnchorE, true
	case "sw":
		return AnchorSW, true
	case "s":
		return AnchorS, true
	case "se":
		return AnchorSE, true
	}
	return AnchorCenter, false
}

// Bitmap is a small image addressed in pixels.
// At reports false for transparent pixels.
type Bitmap interface {
	Size() (w, h int)
	At(x, y int) (Color, bool)
}

// Cell is one terminal character as it will be displayed.
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color
}

// Screen is a drawable surface backed by terminal cells.
// Every cell holds two square-ish pixels (upper and lower half block), so
// pixel coordinates run over Width() x Height() = Cols() x 2*Rows().
// Text is stored on a separate cell layer drawn over the pixels.
type Screen struct {
	cols    int
	rows    int
	pixels  []Color
	text    []Cell
	visible bool
}

// NewScreen creates a new hidden screen with the given dimensions in cells.
func NewScreen(cols, rows int) *Screen {
	s := &Screen{
		cols: Max(cols, 1),
		rows: Max(rows, 1),
	}
	s.allocate()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.pixels = make([]Color, s.cols*s.rows*2)
	s.text = make([]Cell, s.cols*s.rows)
}

// Cols returns the screen width in characters.
func (s *Screen) Cols() int {
	return s.cols
}

// Rows returns the screen height in characters.
func (s *Screen) Rows() int {
	return s.rows
}

// Width returns the screen width in pixels.
func (s *Screen) Width() int {
	return s.cols
}

// Height returns the screen height in pixels.
func (s *Screen) Height() int {
	return s.rows * 2
}

// Resize changes the screen dimensions. Content is discarded since
// every frame is redrawn from scratch.
func (s *Screen) Resize(cols, rows int) {
	cols, rows = Max(cols, 1), Max(rows, 1)
	if cols == s.cols && rows == s.rows {
		return
	}
	s.cols = cols
	s.rows = rows
	s.allocate()
}

// Clear resets every pixel to the default color and removes all text.
func (s *Screen) Clear() {
	for i := range s.pixels {
		s.pixels[i] = ColorDefault
	}
	for i := range s.text {
		s.text[i] = Cell{}
	}
}

// Fill sets every pixel to c. Text is left untouched.
func (s *Screen) Fill(c Color) {
	for i := range s.pixels {
		s.pixels[i] = c
	}
}

// Show marks the screen as the displayed one.
func (s *Screen) Show() {
	s.visible = true
}

// Hide marks the screen as not displayed.
func (s *Screen) Hide() {
	s.visible = false
}

// Visible reports whether the screen is currently displayed.
func (s *Screen) Visible() bool {
	return s.visible
}

// SetPixel colors one pixel.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetPixel(x, y int, c Color) {
	if x < 0 || x >= s.Width() || y < 0 || y >= s.Height() {
		return
	}
	s.pixels[y*s.cols+x] = c
}

// Pixel returns the color of one pixel.
// Returns ColorDefault for out-of-bounds coordinates.
func (s *Screen) Pixel(x, y int) Color {
	if x < 0 || x >= s.Width() || y < 0 || y >= s.Height() {
		return ColorDefault
	}
	return s.pixels[y*s.cols+x]
}

// FillRect fills the pixels whose centers lie inside the rectangle.
func (s *Screen) FillRect(x1, y1, x2, y2 float64, c Color) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	minX := Max(int(math.Floor(x1+0.5)), 0)
	maxX := Min(int(math.Floor(x2+0.5)), s.Width())
	minY := Max(int(math.Floor(y1+0.5)), 0)
	maxY := Min(int(math.Floor(y2+0.5)), s.Height())

	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			s.pixels[y*s.cols+x] = c
		}
	}
}

// Line draws a segment of the given stroke width in pixels.
// Strokes narrower than one pixel are drawn one pixel wide.
func (s *Screen) Line(x1, y1, x2, y2, width float64, c Color) {
	if !finite(x1, y1, x2, y2, width) {
		return
	}

	r := math.Max(width/2, 0.5)
	dx, dy := x2-x1, y2-y1

	// One stamp per pixel step along the major axis
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps < 1 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		s.stamp(x1+dx*t, y1+dy*t, r, c)
	}
}

// stamp fills a disc of radius r centered at (cx, cy).
func (s *Screen) stamp(cx, cy, r float64, c Color) {
	minX := Max(int(math.Floor(cx-r)), 0)
	maxX := Min(int(math.Ceil(cx+r)), s.Width()-1)
	minY := Max(int(math.Floor(cy-r)), 0)
	maxY := Min(int(math.Ceil(cy+r)), s.Height()-1)

	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			ddx := float64(px) + 0.5 - cx
			ddy := float64(py) + 0.5 - cy
			if ddx*ddx+ddy*ddy <= r*r {
				s.pixels[py*s.cols+px] = c
			}
		}
	}

	// The pixel containing the center is always painted
	s.SetPixel(int(math.Floor(cx)), int(math.Floor(cy)), c)
}

// SetText places a rune on the text layer.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetText(col, row int, r rune, c Color) {
	if col < 0 || col >= s.cols || row < 0 || row >= s.rows {
		return
	}
	s.text[row*s.cols+col] = Cell{Rune: r, Fg: c}
}

// DrawText writes a string horizontally starting at cell (col, row).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(col, row int, text string, c Color) {
	i := 0
	for _, r := range text {
		s.SetText(col+i, row, r, c)
		i++
	}
}

// Text writes a string anchored at pixel (x, y).
// Terminal glyphs have a single size, so only the anchor affects placement.
func (s *Screen) Text(x, y float64, text string, c Color, anchor Anchor) {
	n := utf8.RuneCountInString(text)
	col := int(math.Floor(x))
	row := int(math.Floor(y / 2))

	switch anchor {
	case AnchorN, AnchorCenter, AnchorS:
		col -= n / 2
	case AnchorNE, AnchorE, AnchorSE:
		col -= n
	}
	switch anchor {
	case AnchorSW, AnchorS, AnchorSE:
		row--
	}

	s.DrawText(col, row, text, c)
}

// DrawImage draws a bitmap centered on pixel (cx, cy).
// Transparent bitmap pixels leave the screen untouched.
func (s *Screen) DrawImage(cx, cy float64, img Bitmap) {
	if img == nil {
		return
	}
	w, h := img.Size()
	left := int(math.Round(cx - float64(w)/2))
	top := int(math.Round(cy - float64(h)/2))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if c, ok := img.At(x, y); ok {
				s.SetPixel(left+x, top+y, c)
			}
		}
	}
}

// GetCell returns the displayed character for cell (col, row).
// Text wins over pixels; otherwise an upper half block is drawn in the
// top pixel's color over the bottom pixel's color.
func (s *Screen) GetCell(col, row int) Cell {
	if col < 0 || col >= s.cols || row < 0 || row >= s.rows {
		return Cell{Rune: ' '}
	}
	top := s.pixels[(row*2)*s.cols+col]
	bottom := s.pixels[(row*2+1)*s.cols+col]

	if t := s.text[row*s.cols+col]; t.Rune != 0 {
		return Cell{Rune: t.Rune, Fg: t.Fg, Bg: bottom}
	}
	if top == ColorDefault && bottom == ColorDefault {
		return Cell{Rune: ' '}
	}
	return Cell{Rune: '▀', Fg: top, Bg: bottom}
}

// String converts the screen to plain text without colors.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.cols*s.rows*3 + s.rows) // Pre-allocate for block runes

	for row := 0; row < s.rows; row++ {
		if row > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(s.Row(row))
	}
	return sb.String()
}

// Row returns the plain-text rendering of one row.
func (s *Screen) Row(row int) string {
	if row < 0 || row >= s.rows {
		return strings.Repeat(" ", s.cols)
	}

	var sb strings.Builder
	for col := 0; col < s.cols; col++ {
		if t := s.text[row*s.cols+col]; t.Rune != 0 {
			sb.WriteRune(t.Rune)
			continue
		}
		top := s.pixels[(row*2)*s.cols+col] != ColorDefault
		bottom := s.pixels[(row*2+1)*s.cols+col] != ColorDefault
		switch {
		case top && bottom:
			sb.WriteRune('█')
		case top:
			sb.WriteRune('▀')
		case bottom:
			sb.WriteRune('▄')
		default:
			sb.WriteRune(' ')
		}
	}
	return sb.String()
}

// finite reports whether all values are neither NaN nor infinite.
func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
