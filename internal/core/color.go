package core

import (
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color represents a pixel or text color.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for scene elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray
)

// paletteEntry ties a Color to its ANSI code and reference RGB value.
type paletteEntry struct {
	ansi string
	hex  string
}

// palette uses the xterm defaults for the 16 base colors.
var palette = map[Color]paletteEntry{
	ColorBlack:         {"0", "#000000"},
	ColorRed:           {"1", "#cd0000"},
	ColorGreen:         {"2", "#00cd00"},
	ColorYellow:        {"3", "#cdcd00"},
	ColorBlue:          {"4", "#0000ee"},
	ColorMagenta:       {"5", "#cd00cd"},
	ColorCyan:          {"6", "#00cdcd"},
	ColorWhite:         {"7", "#e5e5e5"},
	ColorBrightRed:     {"9", "#ff0000"},
	ColorBrightGreen:   {"10", "#00ff00"},
	ColorBrightYellow:  {"11", "#ffff00"},
	ColorBrightBlue:    {"12", "#5c5cff"},
	ColorBrightMagenta: {"13", "#ff00ff"},
	ColorBrightCyan:    {"14", "#00ffff"},
	ColorBrightWhite:   {"15", "#ffffff"},
	ColorOrange:        {"208", "#ff8700"},
	ColorGray:          {"245", "#8a8a8a"},
	ColorDarkGray:      {"240", "#585858"},
}

// colorNames maps the names accepted in scene and config files.
var colorNames = map[string]Color{
	"default":  ColorDefault,
	"black":    ColorBlack,
	"red":      ColorRed,
	"green":    ColorGreen,
	"yellow":   ColorYellow,
	"blue":     ColorBlue,
	"magenta":  ColorMagenta,
	"cyan":     ColorCyan,
	"white":    ColorWhite,
	"orange":   ColorOrange,
	"gray":     ColorGray,
	"grey":     ColorGray,
	"darkgray": ColorDarkGray,
	"darkgrey": ColorDarkGray,
}

// ANSI returns the ANSI 256-color code, or "" for the terminal default.
func (c Color) ANSI() string {
	if e, ok := palette[c]; ok {
		return e.ansi
	}
	return ""
}

// ParseColor converts a color name or a "#rrggbb" hex string to the nearest
// palette color. Returns ColorDefault and false if the string is not recognized.
func ParseColor(s string) (Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colorNames[s]; ok {
		return c, true
	}
	if !strings.HasPrefix(s, "#") {
		return ColorDefault, false
	}

	target, err := colorful.Hex(s)
	if err != nil {
		return ColorDefault, false
	}
	return nearest(target), true
}

// nearest picks the palette entry closest to target in Lab space.
func nearest(target colorful.Color) Color {
	best := ColorBlack
	bestDist := -1.0
	// Iterate in enum order so ties resolve deterministically.
	for c := ColorBlack; c <= ColorDarkGray; c++ {
		ref, err := colorful.Hex(palette[c].hex)
		if err != nil {
			continue
		}
		d := target.DistanceLab(ref)
		if bestDist < 0 || d < bestDist {
			best = c
			bestDist = d
		}
	}
	return best
}
