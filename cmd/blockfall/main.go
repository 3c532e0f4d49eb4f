// blockfall is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	blockfall play           - Play the game
//	blockfall list           - List registered games
//	blockfall serve          - Start SSH server for remote play
//	blockfall settings       - Show or change persisted settings
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.blockfall/settings.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/blockfall/internal/games/blocks"
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
	Use:   "blockfall",
	Short: "Blockfall - A falling-block puzzle in your terminal",
	Long: `Blockfall is a terminal falling-block puzzle game. Clear lines by
filling rows of the board with settling pieces.

Available commands:
  play     - Play the game
  list     - Show registered games
  serve    - Start SSH server for remote play
  settings - Show or change persisted settings

Examples:
  blockfall play
  blockfall play --seed 42
  blockfall serve --ssh :2222
  blockfall settings shadow piece`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blockfall/settings.db", "Path to settings database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(settingsCmd)
}
