package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/voxelpad/internal/storage"
)

var flagSessionsLimit int

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Show recent session stats",
	Long: `Display the most recent sandbox sessions: which preset was played,
for how long, and how many blocks were placed and removed.

Examples:
  voxelpad sessions
  voxelpad sessions --limit 25`,
	Args: cobra.NoArgs,
	Run:  runSessions,
}

func init() {
	sessionsCmd.Flags().IntVar(&flagSessionsLimit, "limit", 10, "Number of sessions to show")
}

func runSessions(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	sessions, err := store.RecentSessions(flagSessionsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent sessions")
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'voxelpad play' to start building!")
		return
	}

	// Print header
	fmt.Printf("  %-8s  %-9s  %-7s  %-8s  %s\n", "Preset", "Duration", "Placed", "Removed", "Date")
	fmt.Printf("  %-8s  %-9s  %-7s  %-8s  %s\n", "------", "--------", "------", "-------", "----")

	// Print sessions
	for _, e := range sessions {
		dateStr := e.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-8s  %8ds  %-7d  %-8d  %s\n", e.Preset, e.DurationSecs, e.Placed, e.Removed, dateStr)
	}

	// Show all-time totals
	fmt.Println()
	placed, removed, err := store.Totals()
	if err == nil {
		fmt.Printf("All time: %d placed, %d removed\n", placed, removed)
	}
}
