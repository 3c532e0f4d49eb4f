package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/games/blocks"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagSSHDBPath   string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that allows users to connect and play remotely.

Each SSH connection gets its own game session sized to its terminal.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.blockfall/host_key

Examples:
  blockfall serve                           # Listen on :23234 with auto-generated key
  blockfall serve --ssh :2222               # Listen on port 2222
  blockfall serve --host-key ./my_host_key  # Use specific host key
  blockfall serve --db ./settings.db        # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagSSHDBPath, "db", "~/.blockfall/settings.db", "Path to settings database")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagSSHDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	// Apply the persisted ghost style to all sessions
	if store := server.Store(); store != nil {
		if style := store.ShadowStyle(""); style != "" {
			blocks.SetShadowStyle(style)
		}
	}

	fmt.Printf("Starting Blockfall SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
