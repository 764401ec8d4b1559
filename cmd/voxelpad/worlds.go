package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/voxelpad/internal/registry"
)

var worldsCmd = &cobra.Command{
	Use:   "worlds",
	Short: "List all available world presets",
	Long:  `Shows a list of all world preset generators registered in voxelpad.`,
	Run:   runWorlds,
}

func runWorlds(cmd *cobra.Command, args []string) {
	presets := registry.List()

	if len(presets) == 0 {
		fmt.Println("No world presets available.")
		return
	}

	fmt.Println("Available world presets:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, p := range presets {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	// Print presets
	for _, p := range presets {
		fmt.Printf("  %-*s  %s\n", maxIDLen, p.ID, p.Title)
	}

	fmt.Println()
	fmt.Println("Run 'voxelpad play --preset <id>' to open one.")
}
