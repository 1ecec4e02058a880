// Package scene loads the scene sequence and steps through it as the actor
// reaches exit points.
package scene

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/zombie/internal/core"
	"github.com/vovakirdan/zombie/internal/world"
)

// ExitMode selects which treasure points become exit triggers.
type ExitMode int

const (
	ExitRandom ExitMode = iota // one point picked at random
	ExitFirst                  // the first point only
	ExitAll                    // every point
	ExitNone                   // no exits
)

// String returns the YAML name of the mode.
func (m ExitMode) String() string {
	switch m {
	case ExitRandom:
		return "random"
	case ExitFirst:
		return "first"
	case ExitAll:
		return "all"
	case ExitNone:
		return "none"
	default:
		return "unknown"
	}
}

// ParseExitMode converts a YAML name to an ExitMode. Empty selects random.
func ParseExitMode(s string) (ExitMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "random":
		return ExitRandom, nil
	case "first":
		return ExitFirst, nil
	case "all":
		return ExitAll, nil
	case "none":
		return ExitNone, nil
	}
	return ExitRandom, fmt.Errorf("scene: unknown exit mode %q", s)
}

// Spawn places a controllable actor when the scene is entered.
type Spawn struct {
	X, Y float64
	Size float64
}

// Descriptor is one scene of the sequence.
type Descriptor struct {
	ID       string
	Name     string
	Layout   world.Layout
	Treasure []core.Vec2
	Spawn    *Spawn // nil: no actor in this scene
	Exit     ExitMode
}

// Exits returns the treasure points that should become triggers.
// pick chooses an index in [0, n) for ExitRandom.
func (d Descriptor) Exits(pick func(n int) int) []core.Vec2 {
	if len(d.Treasure) == 0 {
		return nil
	}
	switch d.Exit {
	case ExitFirst:
		return d.Treasure[:1]
	case ExitAll:
		return append([]core.Vec2(nil), d.Treasure...)
	case ExitNone:
		return nil
	default:
		return []core.Vec2{d.Treasure[pick(len(d.Treasure))]}
	}
}
