package scene

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/zombie/internal/core"
	"github.com/vovakirdan/zombie/internal/world"
)

//go:embed data/zombie.yaml
var defaultScenesYAML []byte

var (
	// ErrNoScenes is returned when a scene file declares no scenes.
	ErrNoScenes = errors.New("scene: no scenes")

	// ErrDegenerateWall is returned for walls with coincident endpoints.
	ErrDegenerateWall = errors.New("scene: degenerate wall")
)

// ImageChecker reports whether an image key can be resolved.
type ImageChecker interface {
	Has(key string) bool
}

type sceneFile struct {
	Scenes []rawScene `yaml:"scenes"`
}

type rawScene struct {
	ID         string      `yaml:"id"`
	Name       string      `yaml:"name"`
	Width      float64     `yaml:"width"`
	Height     float64     `yaml:"height"`
	Background string      `yaml:"background"`
	Walls      [][]float64 `yaml:"walls"`
	Objects    []rawText   `yaml:"objects"`
	Images     []rawImage  `yaml:"images"`
	Treasure   [][]float64 `yaml:"treasure"`
	Spawn      *rawSpawn   `yaml:"spawn"`
	Exit       string      `yaml:"exit"`
}

type rawText struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Text   string  `yaml:"text"`
	Color  string  `yaml:"color"`
	Anchor string  `yaml:"anchor"`
}

type rawImage struct {
	X   float64 `yaml:"x"`
	Y   float64 `yaml:"y"`
	Key string  `yaml:"key"`
}

type rawSpawn struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Size float64 `yaml:"size"`
}

// Load reads the scene sequence.
// Search order: customPath -> ~/.zombie/scenes.yaml -> ./configs/scenes.yaml -> embedded default
func Load(customPath string, images ImageChecker) ([]Descriptor, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("scene: read %s: %w", customPath, err)
		}
		scenes, err := Parse(data, images)
		if err != nil {
			return nil, fmt.Errorf("scene: parse %s: %w", customPath, err)
		}
		return scenes, nil
	}

	for _, path := range []string{userScenesPath(), filepath.Join("configs", "scenes.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		// An existing file that fails to parse is an error, not a fallback
		scenes, err := Parse(data, images)
		if err != nil {
			return nil, fmt.Errorf("scene: parse %s: %w", path, err)
		}
		return scenes, nil
	}

	return Parse(defaultScenesYAML, images)
}

// Default returns the embedded scene sequence.
func Default(images ImageChecker) ([]Descriptor, error) {
	return Parse(defaultScenesYAML, images)
}

// userScenesPath returns the per-user scene file, or empty if home is unavailable.
func userScenesPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".zombie", "scenes.yaml")
}

// Parse decodes and validates a scene file. images may be nil to skip the
// image key check.
func Parse(data []byte, images ImageChecker) ([]Descriptor, error) {
	var f sceneFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("scene: decode: %w", err)
	}
	if len(f.Scenes) == 0 {
		return nil, ErrNoScenes
	}

	scenes := make([]Descriptor, 0, len(f.Scenes))
	seen := make(map[string]bool, len(f.Scenes))
	for i, raw := range f.Scenes {
		d, err := raw.descriptor(images)
		if err != nil {
			return nil, fmt.Errorf("scene %d (%s): %w", i, raw.ID, err)
		}
		if seen[d.ID] {
			return nil, fmt.Errorf("scene %d: duplicate id %q", i, d.ID)
		}
		seen[d.ID] = true
		scenes = append(scenes, d)
	}
	return scenes, nil
}

func (r rawScene) descriptor(images ImageChecker) (Descriptor, error) {
	d := Descriptor{ID: r.ID, Name: r.Name}
	if d.ID == "" {
		return d, errors.New("missing id")
	}
	if d.Name == "" {
		d.Name = d.ID
	}
	if r.Width <= 0 || r.Height <= 0 {
		return d, fmt.Errorf("size %gx%g must be positive", r.Width, r.Height)
	}
	d.Layout.Width, d.Layout.Height = r.Width, r.Height

	if r.Background != "" {
		c, ok := core.ParseColor(r.Background)
		if !ok {
			return d, fmt.Errorf("unknown background color %q", r.Background)
		}
		d.Layout.Background = c
	}

	for i, w := range r.Walls {
		if len(w) != 4 {
			return d, fmt.Errorf("wall %d: expected [x1, y1, x2, y2], got %d values", i, len(w))
		}
		wall := world.Wall{X1: w[0], Y1: w[1], X2: w[2], Y2: w[3]}
		if wall.Degenerate() {
			return d, fmt.Errorf("wall %d %v: %w", i, w, ErrDegenerateWall)
		}
		d.Layout.Walls = append(d.Layout.Walls, wall)
	}

	for i, o := range r.Objects {
		color := core.ColorWhite
		if o.Color != "" {
			c, ok := core.ParseColor(o.Color)
			if !ok {
				return d, fmt.Errorf("object %d: unknown color %q", i, o.Color)
			}
			color = c
		}
		anchor, ok := core.ParseAnchor(o.Anchor)
		if !ok {
			return d, fmt.Errorf("object %d: unknown anchor %q", i, o.Anchor)
		}
		d.Layout.Objects = append(d.Layout.Objects, world.TextObject{
			X: o.X, Y: o.Y, Text: o.Text, Color: color, Anchor: anchor,
		})
	}

	for i, img := range r.Images {
		if images != nil && !images.Has(img.Key) {
			return d, fmt.Errorf("image %d: unknown key %q", i, img.Key)
		}
		d.Layout.Images = append(d.Layout.Images, world.PlacedImage{X: img.X, Y: img.Y, Key: img.Key})
	}

	for i, p := range r.Treasure {
		if len(p) != 2 {
			return d, fmt.Errorf("treasure %d: expected [x, y], got %d values", i, len(p))
		}
		d.Treasure = append(d.Treasure, core.V(p[0], p[1]))
	}

	if r.Spawn != nil {
		if r.Spawn.Size <= 0 {
			return d, fmt.Errorf("spawn size %g must be positive", r.Spawn.Size)
		}
		d.Spawn = &Spawn{X: r.Spawn.X, Y: r.Spawn.Y, Size: r.Spawn.Size}
	}

	exit, err := ParseExitMode(r.Exit)
	if err != nil {
		return d, err
	}
	d.Exit = exit
	if exit != ExitNone && len(d.Treasure) == 0 && r.Exit != "" {
		return d, fmt.Errorf("exit %q needs at least one treasure point", r.Exit)
	}
	return d, nil
}
