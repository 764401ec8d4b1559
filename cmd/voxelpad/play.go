package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/voxelpad/internal/config"
	"github.com/vovakirdan/voxelpad/internal/core"
	"github.com/vovakirdan/voxelpad/internal/game"
	"github.com/vovakirdan/voxelpad/internal/platform/tui"
	"github.com/vovakirdan/voxelpad/internal/registry"
	"github.com/vovakirdan/voxelpad/internal/storage"
)

var (
	flagConfig string
	flagPreset string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the sandbox",
	Long: `Open the voxel sandbox in the current terminal.

Controls:
  Drag         - Rotate the camera (pitch clamps at ±90°, yaw wraps)
  Left click   - Remove the clicked block
  Right click  - Stack the selected material on the clicked column
  E/I          - Toggle inventory, 1-6 pick a material
  B / X        - Build on / destroy near the world center
  Tab/M        - Toggle the stats overlay
  R            - Regenerate the world
  Q/Ctrl+C     - Quit

Examples:
  voxelpad play
  voxelpad play --preset hills
  voxelpad play --seed 42
  voxelpad play --config ./my-world.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom world config YAML")
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "World preset (overrides config)")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	preset := flagPreset
	if preset == "" {
		preset = cfg.World.Preset
	}
	if !registry.Exists(preset) {
		fmt.Fprintf(os.Stderr, "Error: unknown world preset %q\n", preset)
		fmt.Fprintln(os.Stderr, "Run 'voxelpad worlds' to see available presets.")
		os.Exit(1)
	}

	// Get terminal size for the runtime config
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	sandbox := game.New(cfg, preset)

	// Open the session log
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open session database: %v\n", err)
		// Continue without storage - the sandbox still works
		store = nil
	}

	runErr := tui.Run(sandbox, store, runtime)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running sandbox: %v\n", runErr)
		os.Exit(1)
	}
}
