// Package config provides YAML-based configuration loading for the
// display, world, actor and input settings.
package config

// Config is the complete runtime configuration.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	World   WorldConfig   `yaml:"world"`
	Actor   ActorConfig   `yaml:"actor"`
	Input   InputConfig   `yaml:"input"`
}

// DisplayConfig controls frame pacing and the stats overlay.
type DisplayConfig struct {
	RefreshRate float64 `yaml:"refresh_rate"` // target frames per second
	MinWait     float64 `yaml:"min_wait"`     // seconds
	StatsWindow float64 `yaml:"stats_window"` // seconds
	StatsX      int     `yaml:"stats_x"`      // overlay column
	StatsY      int     `yaml:"stats_y"`      // overlay row
	StatsColor  string  `yaml:"stats_color"`
	ShowStats   bool    `yaml:"show_stats"`
}

// WorldConfig controls wall rendering and trigger reach, in world units.
type WorldConfig struct {
	WallWidth          float64 `yaml:"wall_width"`
	WallExtensionWidth float64 `yaml:"wall_extension_width"`
	WallSetBack        float64 `yaml:"wall_set_back"`
	WallExtension      float64 `yaml:"wall_extension"`
	WallColor          string  `yaml:"wall_color"`
	Background         string  `yaml:"background"`
	PointDistance      float64 `yaml:"point_distance"`
}

// ActorConfig controls the walking figure.
type ActorConfig struct {
	WalkSpeed     float64 `yaml:"walk_speed"`     // world units per second
	AnimationTime float64 `yaml:"animation_time"` // seconds per frame
	CollideRadius float64 `yaml:"collide_radius"` // multiple of actor size
	Color         string  `yaml:"color"`
}

// InputConfig controls key handling.
type InputConfig struct {
	ReleaseAfter float64   `yaml:"release_after"` // seconds without repeat before a key counts as released
	Keys         KeyConfig `yaml:"keys"`
}

// KeyConfig lists the Bubble Tea key names bound to each action.
type KeyConfig struct {
	Up      []string `yaml:"up"`
	Down    []string `yaml:"down"`
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Stats   []string `yaml:"stats"`
	Restart []string `yaml:"restart"`
	Quit    []string `yaml:"quit"`
}
