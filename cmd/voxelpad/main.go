// voxelpad is a terminal voxel sandbox: an 8×8 world of stacked cubes you
// rotate with the mouse and edit block by block.
//
// Usage:
//
//	voxelpad play            - Open the sandbox
//	voxelpad worlds          - List available world presets
//	voxelpad serve           - Start SSH server for remote play
//	voxelpad sessions        - Show recent session stats
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible worlds
//	--db <path>     - Set database path (default: ~/.voxelpad/sessions.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import presets to register them
	_ "github.com/vovakirdan/voxelpad/internal/worldgen"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "voxelpad",
	Short: "Voxelpad - A voxel sandbox in your terminal",
	Long: `Voxelpad renders a small voxel world in your terminal and lets you
shape it: drag with the mouse to rotate the camera, left-click a block to
remove it, right-click to stack the selected material on top of it.

Available commands:
  play     - Open the sandbox
  worlds   - List available world presets
  serve    - Start SSH server for remote play
  sessions - Show recent session stats

Examples:
  voxelpad play
  voxelpad play --preset hills
  voxelpad serve --ssh :2222
  voxelpad sessions`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.voxelpad/sessions.db", "Path to session database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(worldsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(sessionsCmd)
}
