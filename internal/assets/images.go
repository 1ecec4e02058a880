// Package assets provides the image cache used by scenes.
// Images are small palette sprites described in YAML; each one is decoded
// the first time it is requested and kept for the rest of the run.
package assets

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/zombie/internal/core"
)

//go:embed data/sprites.yaml
var defaultSpritesYAML []byte

// ErrUnknownImage is returned for keys with no sprite definition.
var ErrUnknownImage = errors.New("assets: unknown image")

// Transparent marks see-through pixels in sprite rows.
const Transparent = '.'

// RawSprite is the YAML form of a sprite.
type RawSprite struct {
	Palette map[string]string `yaml:"palette"`
	Rows    []string          `yaml:"rows"`
}

type spriteFile struct {
	Sprites map[string]RawSprite `yaml:"sprites"`
}

// Sprite is a decoded image. It implements core.Bitmap.
type Sprite struct {
	w, h   int
	pixels []core.Color
	opaque []bool
}

// Size returns the sprite dimensions in pixels.
func (s *Sprite) Size() (int, int) {
	return s.w, s.h
}

// At returns the pixel color and whether it is opaque.
func (s *Sprite) At(x, y int) (core.Color, bool) {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return core.ColorDefault, false
	}
	i := y*s.w + x
	return s.pixels[i], s.opaque[i]
}

// Cache loads sprites on demand and memoizes them by key.
// Not safe for concurrent use; it lives on the scheduler goroutine.
type Cache struct {
	raw    map[string]RawSprite
	loaded map[string]*Sprite
}

// NewCache creates a cache over the given sprite definitions.
func NewCache(raw map[string]RawSprite) *Cache {
	return &Cache{
		raw:    raw,
		loaded: make(map[string]*Sprite),
	}
}

// ParseCache reads sprite definitions from YAML.
func ParseCache(data []byte) (*Cache, error) {
	var f spriteFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("assets: parse sprites: %w", err)
	}
	return NewCache(f.Sprites), nil
}

// DefaultCache returns a cache over the embedded sprites.
func DefaultCache() *Cache {
	c, err := ParseCache(defaultSpritesYAML)
	if err != nil {
		// The embedded file is part of the build
		panic(err)
	}
	return c
}

// Image returns the sprite for key, decoding it on first use.
func (c *Cache) Image(key string) (*Sprite, error) {
	if s, ok := c.loaded[key]; ok {
		return s, nil
	}

	raw, ok := c.raw[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownImage, key)
	}

	s, err := decode(raw)
	if err != nil {
		return nil, fmt.Errorf("assets: decode %q: %w", key, err)
	}
	c.loaded[key] = s
	return s, nil
}

// Has reports whether key has a sprite definition.
func (c *Cache) Has(key string) bool {
	_, ok := c.raw[key]
	return ok
}

// Loaded returns the number of decoded sprites.
func (c *Cache) Loaded() int {
	return len(c.loaded)
}

// decode converts the row strings to a pixel grid.
func decode(raw RawSprite) (*Sprite, error) {
	palette := make(map[rune]core.Color, len(raw.Palette))
	for sym, name := range raw.Palette {
		r, size := utf8.DecodeRuneInString(sym)
		if size != len(sym) || r == Transparent {
			return nil, fmt.Errorf("bad palette symbol %q", sym)
		}
		col, ok := core.ParseColor(name)
		if !ok {
			return nil, fmt.Errorf("bad color %q for symbol %q", name, sym)
		}
		palette[r] = col
	}

	h := len(raw.Rows)
	w := 0
	for _, row := range raw.Rows {
		w = core.Max(w, utf8.RuneCountInString(row))
	}

	s := &Sprite{
		w:      w,
		h:      h,
		pixels: make([]core.Color, w*h),
		opaque: make([]bool, w*h),
	}
	for y, row := range raw.Rows {
		x := 0
		for _, r := range strings.TrimRight(row, " ") {
			if r != Transparent && r != ' ' {
				col, ok := palette[r]
				if !ok {
					return nil, fmt.Errorf("row %d: symbol %q not in palette", y, r)
				}
				s.pixels[y*w+x] = col
				s.opaque[y*w+x] = true
			}
			x++
		}
	}
	return s, nil
}

// Ensure Sprite implements core.Bitmap
var _ core.Bitmap = (*Sprite)(nil)
