// zombie walks a stick figure through a sequence of scenes drawn with
// half-block characters in the terminal.
//
// Usage:
//
//	zombie                  - Start at the first scene
//	zombie play             - Same as above
//	zombie scenes           - List the scene sequence
//	zombie keys             - Show the key bindings
//	zombie config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>       - Target frame rate (default: from config, 40)
//	--seed <value>     - RNG seed for exit selection
//	--config <path>    - Path to a config YAML
//	--scenes <path>    - Path to a scenes YAML
//	--log <path>       - Write a debug log to this file
//	--stats            - Start with the stats overlay visible
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     float64
	flagSeed    int64
	flagConfig  string
	flagScenes  string
	flagLogPath string
	flagStats   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "zombie",
	Short: "Zombie - walk through scenes in your terminal",
	Long: `Zombie draws a walking figure and a few scenes with half-block
characters. Walk onto a treasure to move to the next scene; press space
to start again from the first scene.

Available commands:
  play     - Start the scene sequence (default)
  scenes   - List the scene sequence
  keys     - Show the key bindings
  config   - Print the effective configuration

Examples:
  zombie
  zombie --fps 60 --stats
  zombie --scenes ./my-scenes.yaml
  zombie config > ~/.zombie/config.yaml`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Float64Var(&flagFPS, "fps", 0, "Target frame rate (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagScenes, "scenes", "", "Path to custom scenes YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write a debug log to this file")
	rootCmd.PersistentFlags().BoolVar(&flagStats, "stats", false, "Start with the stats overlay visible")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scenesCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(configCmd)
}
