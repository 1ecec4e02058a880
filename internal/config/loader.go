package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/zombie/internal/core"
	"github.com/vovakirdan/zombie/internal/frame"
	"github.com/vovakirdan/zombie/internal/world"
)

// Load loads the configuration.
// Search order: customPath -> ~/.zombie/config.yaml -> ./configs/zombie.yaml -> embedded default
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("config.yaml"), filepath.Join("configs", "zombie.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		// An existing file that fails to parse is an error, not a fallback
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults, so omitted keys keep their default
// values, and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".zombie", filename)
}

// Validate checks ranges, color names and key bindings.
func (c Config) Validate() error {
	if c.Display.RefreshRate <= 0 {
		return fmt.Errorf("display.refresh_rate must be positive, got %g", c.Display.RefreshRate)
	}
	if c.Display.MinWait < 0 {
		return fmt.Errorf("display.min_wait must not be negative, got %g", c.Display.MinWait)
	}
	if c.Display.StatsWindow <= 0 {
		return fmt.Errorf("display.stats_window must be positive, got %g", c.Display.StatsWindow)
	}
	if c.World.PointDistance <= 0 {
		return fmt.Errorf("world.point_distance must be positive, got %g", c.World.PointDistance)
	}
	if c.Actor.WalkSpeed <= 0 || c.Actor.AnimationTime <= 0 || c.Actor.CollideRadius <= 0 {
		return fmt.Errorf("actor settings must be positive")
	}
	if c.Input.ReleaseAfter <= 0 {
		return fmt.Errorf("input.release_after must be positive, got %g", c.Input.ReleaseAfter)
	}

	colors := map[string]string{
		"display.stats_color": c.Display.StatsColor,
		"world.wall_color":    c.World.WallColor,
		"world.background":    c.World.Background,
		"actor.color":         c.Actor.Color,
	}
	for key, value := range colors {
		if _, ok := core.ParseColor(value); !ok {
			return fmt.Errorf("%s: unknown color %q", key, value)
		}
	}

	owner := make(map[string]core.Action)
	for action, keys := range c.Input.Keys.Bindings() {
		if len(keys) == 0 {
			return fmt.Errorf("input.keys: no key bound to %s", action)
		}
		for _, k := range keys {
			if prev, ok := owner[k]; ok && prev != action {
				return fmt.Errorf("input.keys: %q bound to both %s and %s", k, prev, action)
			}
			owner[k] = action
		}
	}
	return nil
}

// FrameOptions converts the display section for the scheduler.
func (c Config) FrameOptions() frame.Options {
	opts := frame.DefaultOptions()
	opts.TargetRate = c.Display.RefreshRate
	opts.MinWait = seconds(c.Display.MinWait)
	opts.StatsWindow = seconds(c.Display.StatsWindow)
	opts.StatsX = c.Display.StatsX
	opts.StatsY = c.Display.StatsY
	opts.StatsColor = color(c.Display.StatsColor)
	return opts
}

// WorldOptions converts the world section.
func (c Config) WorldOptions() world.Options {
	return world.Options{
		WallWidth:          c.World.WallWidth,
		WallExtensionWidth: c.World.WallExtensionWidth,
		WallSetBack:        c.World.WallSetBack,
		WallExtension:      c.World.WallExtension,
		WallColor:          color(c.World.WallColor),
		Background:         color(c.World.Background),
		PointDistance:      c.World.PointDistance,
	}
}

// ActorOptions converts the actor section.
func (c Config) ActorOptions() world.ActorOptions {
	return world.ActorOptions{
		WalkSpeed:     c.Actor.WalkSpeed,
		AnimationTime: seconds(c.Actor.AnimationTime),
		CollideRadius: c.Actor.CollideRadius,
		Color:         color(c.Actor.Color),
	}
}

// ReleaseAfter returns the synthesized key release delay.
func (c Config) ReleaseAfter() time.Duration {
	return seconds(c.Input.ReleaseAfter)
}

// Bindings returns the key names bound to each action.
func (k KeyConfig) Bindings() map[core.Action][]string {
	return map[core.Action][]string{
		core.ActionUp:      k.Up,
		core.ActionDown:    k.Down,
		core.ActionLeft:    k.Left,
		core.ActionRight:   k.Right,
		core.ActionStats:   k.Stats,
		core.ActionRestart: k.Restart,
		core.ActionQuit:    k.Quit,
	}
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// color parses a validated color name.
func color(s string) core.Color {
	c, _ := core.ParseColor(s)
	return c
}
