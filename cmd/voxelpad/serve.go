package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/voxelpad/internal/config"
	"github.com/vovakirdan/voxelpad/internal/platform/tui"
	"github.com/vovakirdan/voxelpad/internal/registry"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagServeConfig string
	flagServePreset string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the voxelpad SSH server",
	Long: `Start an SSH server that lets users connect and shape their own world.

Each SSH connection gets an independent sandbox; worlds are not shared and
are discarded when the session ends. Session stats are logged per-server.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.voxelpad/host_key

Examples:
  voxelpad serve                           # Listen on :23235 with auto-generated key
  voxelpad serve --ssh :2222               # Listen on port 2222
  voxelpad serve --preset hills            # Serve the hills preset
  voxelpad serve --db ./sessions.db        # Use specific database

Users can connect with:
  ssh localhost -p 23235`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to custom world config YAML")
	serveCmd.Flags().StringVar(&flagServePreset, "preset", "", "World preset served to every session")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	appCfg, err := config.Load(flagServeConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagServePreset != "" && !registry.Exists(flagServePreset) {
		fmt.Fprintf(os.Stderr, "Error: unknown world preset %q\n", flagServePreset)
		os.Exit(1)
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Preset:      flagServePreset,
		App:         appCfg,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting voxelpad SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23235")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
