package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/zombie/internal/assets"
	"github.com/vovakirdan/zombie/internal/platform/tui"
	"github.com/vovakirdan/zombie/internal/scene"
)

var scenesCmd = &cobra.Command{
	Use:   "scenes",
	Short: "List the scene sequence",
	Long: `Shows the scenes in the order they are visited, after loading
and validating the scenes file.

Examples:
  zombie scenes
  zombie scenes --scenes ./my-scenes.yaml`,
	Args: cobra.NoArgs,
	Run:  runScenes,
}

func runScenes(cmd *cobra.Command, args []string) {
	scenes, err := scene.Load(flagScenes, assets.DefaultCache())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scenes: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Scenes:")
	fmt.Println()
	fmt.Println(tui.SceneTable(scenes))
	fmt.Println()
	fmt.Println("Run 'zombie play' to start at scene 1.")
}
