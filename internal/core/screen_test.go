package core

import (
	"math"
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Cols() != 80 || s.Rows() != 24 {
		t.Errorf("Cols/Rows = %d/%d, expected 80/24", s.Cols(), s.Rows())
	}
	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 48 {
		t.Errorf("Height() = %d, expected 48 (two pixels per row)", s.Height())
	}
	if s.Visible() {
		t.Error("New screen should start hidden")
	}

	// Check that it's initialized blank
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Pixel(x, y) != ColorDefault {
				t.Fatalf("New screen should be blank, got %v at (%d, %d)", s.Pixel(x, y), x, y)
			}
		}
	}
}

func TestNewScreenMinimumSize(t *testing.T) {
	s := NewScreen(0, -3)
	if s.Cols() != 1 || s.Rows() != 1 {
		t.Errorf("Degenerate size should clamp to 1x1, got %dx%d", s.Cols(), s.Rows())
	}
}

func TestScreenSetPixel(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetPixel(3, 7, ColorRed)
	if s.Pixel(3, 7) != ColorRed {
		t.Errorf("Pixel(3, 7) = %v, expected red", s.Pixel(3, 7))
	}

	// Out of bounds should be silent
	s.SetPixel(-1, 0, ColorRed)
	s.SetPixel(10, 0, ColorRed)
	s.SetPixel(0, 10, ColorRed)

	if s.Pixel(-1, 0) != ColorDefault {
		t.Error("Out of bounds Pixel should return default")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 5)
	s.Fill(ColorBlue)
	s.DrawText(0, 0, "hello", ColorWhite)

	s.Clear()

	if got := s.String(); strings.TrimSpace(got) != "" {
		t.Errorf("After Clear() screen should be blank, got %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Fill(ColorBlue)

	s.Resize(20, 8)
	if s.Width() != 20 || s.Height() != 16 {
		t.Errorf("After Resize size = %dx%d, expected 20x16", s.Width(), s.Height())
	}
	if s.Pixel(5, 5) != ColorDefault {
		t.Error("Resize should discard content")
	}
}

func TestScreenVisibility(t *testing.T) {
	s := NewScreen(4, 4)
	s.Show()
	if !s.Visible() {
		t.Error("Show() should make the screen visible")
	}
	s.Hide()
	if s.Visible() {
		t.Error("Hide() should hide the screen")
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(10, 5)
	s.FillRect(2, 2, 5, 4, ColorGreen)

	tests := []struct {
		x, y     int
		expected Color
	}{
		{2, 2, ColorGreen},
		{4, 3, ColorGreen},
		{5, 3, ColorDefault}, // right edge exclusive
		{2, 4, ColorDefault}, // bottom edge exclusive
		{1, 2, ColorDefault},
	}
	for _, tc := range tests {
		if got := s.Pixel(tc.x, tc.y); got != tc.expected {
			t.Errorf("Pixel(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestScreenLine(t *testing.T) {
	s := NewScreen(20, 10)
	s.Line(0.5, 4.5, 19.5, 4.5, 1, ColorWhite)

	for x := 0; x < 20; x++ {
		if s.Pixel(x, 4) != ColorWhite {
			t.Errorf("Horizontal line missing pixel at x=%d", x)
		}
	}
	if s.Pixel(10, 7) != ColorDefault {
		t.Error("Thin line should not paint far rows")
	}
}

func TestScreenThickLine(t *testing.T) {
	s := NewScreen(20, 10)
	s.Line(10.5, 2.5, 10.5, 17.5, 5, ColorWhite)

	for _, x := range []int{8, 9, 10, 11, 12} {
		if s.Pixel(x, 10) != ColorWhite {
			t.Errorf("Thick line missing pixel at x=%d", x)
		}
	}
	if s.Pixel(15, 10) != ColorDefault {
		t.Error("Thick line painted too wide")
	}
}

func TestScreenLineIgnoresNaN(t *testing.T) {
	s := NewScreen(5, 5)
	s.Line(math.NaN(), 0, 3, 3, 1, ColorRed) // Should not panic
	if strings.TrimSpace(s.String()) != "" {
		t.Error("Line with NaN should draw nothing")
	}
}

func TestScreenTextAnchor(t *testing.T) {
	tests := []struct {
		name   string
		anchor Anchor
		col    int
	}{
		{"nw", AnchorNW, 10},
		{"center", AnchorCenter, 8},
		{"east", AnchorE, 6},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(20, 5)
			s.Text(10, 4, "abcd", ColorWhite, tc.anchor)
			row := s.Row(2)
			if idx := strings.Index(row, "abcd"); idx != tc.col {
				t.Errorf("Text placed at column %d, expected %d (row %q)", idx, tc.col, row)
			}
		})
	}
}

func TestScreenGetCell(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetPixel(1, 0, ColorRed)
	s.SetPixel(1, 1, ColorBlue)

	cell := s.GetCell(1, 0)
	if cell.Rune != '▀' || cell.Fg != ColorRed || cell.Bg != ColorBlue {
		t.Errorf("GetCell(1, 0) = %+v, expected red over blue half block", cell)
	}

	s.SetText(1, 0, 'x', ColorWhite)
	cell = s.GetCell(1, 0)
	if cell.Rune != 'x' || cell.Fg != ColorWhite {
		t.Errorf("Text should win over pixels, got %+v", cell)
	}

	if s.GetCell(0, 1).Rune != ' ' {
		t.Error("Blank cell should render as space")
	}
}

type checker struct{}

func (checker) Size() (int, int) { return 2, 2 }

func (checker) At(x, y int) (Color, bool) {
	if (x+y)%2 == 0 {
		return ColorYellow, true
	}
	return ColorDefault, false
}

func TestScreenDrawImage(t *testing.T) {
	s := NewScreen(6, 3)
	s.DrawImage(3, 3, checker{})

	if s.Pixel(2, 2) != ColorYellow || s.Pixel(3, 3) != ColorYellow {
		t.Error("Opaque bitmap pixels should be drawn")
	}
	if s.Pixel(3, 2) != ColorDefault {
		t.Error("Transparent bitmap pixels should be skipped")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.SetPixel(0, 0, ColorRed)
	s.SetPixel(1, 1, ColorRed)
	s.SetPixel(2, 0, ColorRed)
	s.SetPixel(2, 1, ColorRed)

	expected := "▀▄█\n   "
	if s.String() != expected {
		t.Errorf("String() = %q, expected %q", s.String(), expected)
	}
}
