package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blocks"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var (
	flagConfig string
	flagShadow string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play the game",
	Long: `Start playing. Defaults to the falling-block game.

Controls:
  Left/H     - Move left
  Right/L    - Move right
  Down/J     - Soft drop
  Up/X       - Rotate clockwise
  Z          - Rotate counter-clockwise
  Space      - Hard drop
  P/Esc      - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Examples:
  blockfall play
  blockfall play --seed 42
  blockfall play --shadow piece
  blockfall play --config ./my-board.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagShadow, "shadow", "", "Ghost piece style: off, gray, piece")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "blocks"
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'blockfall list' to see available games.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path for the game before creation
	switch gameID {
	case "blocks":
		blocks.SetConfigPath(flagConfig)
	}

	// Open settings storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open settings database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Ghost style: flag wins over the persisted setting
	if flagShadow != "" {
		style, parseErr := config.ParseShadowStyle(flagShadow)
		if parseErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", parseErr)
			os.Exit(1)
		}
		blocks.SetShadowStyle(style)
	} else if store != nil {
		if style := store.ShadowStyle(""); style != "" {
			blocks.SetShadowStyle(style)
		}
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
