package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/zombie/internal/assets"
	"github.com/vovakirdan/zombie/internal/config"
	"github.com/vovakirdan/zombie/internal/core"
	"github.com/vovakirdan/zombie/internal/platform/tui"
	"github.com/vovakirdan/zombie/internal/scene"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the scene sequence",
	Long: `Start at the first scene.

Controls:
  Arrows/WASD  - Walk
  F12/Tab      - Toggle the stats overlay
  Space        - Start again
  Ctrl+S       - Save a text screenshot
  Q/Esc/Ctrl+C - Quit

Examples:
  zombie play
  zombie play --seed 42
  zombie play --log /tmp/zombie.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	images := assets.DefaultCache()
	scenes, err := scene.Load(flagScenes, images)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scenes: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := openLogger(flagLogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// Get terminal size
	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.Cols = w
		rc.Rows = h
	}
	rc.RefreshRate = flagFPS
	rc.Seed = flagSeed
	rc.ShowStats = flagStats

	logger.Info("starting", "cols", rc.Cols, "rows", rc.Rows, "scenes", len(scenes))

	runErr := tui.Run(tui.Options{
		Runtime: rc,
		Config:  cfg,
		Scenes:  scenes,
		Images:  images,
		Logger:  logger,
	})
	if runErr != nil {
		logger.Error("stopped", "err", runErr)
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
	logger.Info("stopped")
}

// openLogger returns a file logger, or a discarding one when path is empty.
// The terminal belongs to the simulation, so nothing is logged to stderr.
func openLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "zombie",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}
