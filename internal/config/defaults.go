package config

import (
	_ "embed"
)

//go:embed defaults/zombie.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			RefreshRate: 40,
			MinWait:     0.01,
			StatsWindow: 1.0,
			StatsX:      1,
			StatsY:      0,
			StatsColor:  "#ffffff",
		},
		World: WorldConfig{
			WallWidth:          0.35,
			WallExtensionWidth: 0.2,
			WallSetBack:        -0.1,
			WallExtension:      0.15,
			WallColor:          "#000000",
			Background:         "#555555",
			PointDistance:      0.5,
		},
		Actor: ActorConfig{
			WalkSpeed:     4.0,
			AnimationTime: 0.2,
			CollideRadius: 1.1,
			Color:         "#000000",
		},
		Input: InputConfig{
			ReleaseAfter: 0.55,
			Keys: KeyConfig{
				Up:      []string{"up", "w"},
				Down:    []string{"down", "s"},
				Left:    []string{"left", "a"},
				Right:   []string{"right", "d"},
				Stats:   []string{"f12", "tab"},
				Restart: []string{" "},
				Quit:    []string{"ctrl+c", "q", "esc"},
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
