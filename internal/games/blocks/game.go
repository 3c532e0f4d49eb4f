// Package blocks implements the falling-block puzzle game on top of the
// pure playfield engine. The engine owns legality and effects; this package
// owns the loop: gravity ticks, input mapping, settling, line clears and
// respawn.
package blocks

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/playfield"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/tetromino"
)

// Game implements the falling-blocks game.
type Game struct {
	cfg    config.BlocksConfig
	table  tetromino.Table
	seq    *tetromino.Sequence
	tick   uint64
	lines  int
	shadow config.ShadowStyle

	// Field state
	grid  playfield.Grid
	piece playfield.Piece

	gravityTicker int // Counts ticks until the next automatic descent

	// Layout
	boardOffsetX int
	boardOffsetY int
	hudHeight    int
	visibleTop   int // Topmost grid row drawn on screen
	screenW      int
	screenH      int

	// Game state flags
	gameOver bool
	paused   bool
	tooSmall bool
}

// Package-level overrides applied at Reset (set from the CLI before the
// game is created, like the other platform games do).
var (
	configPath     string
	shadowOverride config.ShadowStyle
)

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetShadowStyle overrides the configured ghost-piece style, typically from
// the persisted user setting. Empty means "use the config file".
func SetShadowStyle(style config.ShadowStyle) {
	shadowOverride = style
}

// spawnBuffer is the number of top field rows that may stay off screen.
// Pieces spawn there; cells in those rows are clipped, not drawn over the
// HUD.
const spawnBuffer = 2

// New creates a new falling-blocks game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("blocks", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "blocks"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Blockfall"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	loaded, err := config.LoadBlocks(configPath)
	if err != nil {
		loaded = config.DefaultBlocksConfig()
	}
	g.cfg = loaded
	g.shadow = loaded.Shadow
	if shadowOverride != "" {
		g.shadow = shadowOverride
	}

	g.seq = tetromino.NewSequence(cfg.Seed)
	g.tick = 0
	g.lines = 0
	g.gravityTicker = 0
	g.gameOver = false
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.hudHeight = 2

	g.grid = playfield.Empty(loaded.Board.Width, loaded.Board.Height)

	// Check if screen is too small: board plus border plus HUD. The top
	// spawnBuffer rows of the field may be cropped from display, so they
	// don't count against the required height.
	requiredW := g.grid.Width() + 2
	requiredH := g.grid.Height() - spawnBuffer + g.hudHeight + 2
	if g.screenW < requiredW || g.screenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	// Crop just enough of the spawn buffer to fit the screen.
	g.visibleTop = core.Max(0, g.grid.Height()+g.hudHeight+2-g.screenH)

	// Center the board horizontally
	g.boardOffsetX = (g.screenW - g.grid.Width()) / 2
	g.boardOffsetY = g.hudHeight + 1

	g.spawnNext()
}

// spawnNext brings the next piece of the sequence into play. A spawn that
// is immediately invalid means the stack has reached the top: game over.
func (g *Game) spawnNext() {
	g.piece = tetromino.Spawn(g.seq.Next(), g.grid.Width())
	if !playfield.IsValid(g.grid, g.table, g.piece) {
		g.gameOver = true
	}
}

// settle commits the falling piece into the grid, clears full lines and
// spawns the next piece.
func (g *Game) settle() {
	g.grid = g.grid.AddPiece(g.table, g.piece)
	count, compacted := g.grid.RemoveFullLines()
	g.grid = compacted
	g.lines += count
	g.gravityTicker = 0
	g.spawnNext()
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart
	if input.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:    g.seq.Reseed(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.processInput(input)
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Gravity: attempt a descent on the fixed interval; a rejected descent
	// means the piece is resting and must settle.
	g.gravityTicker++
	if g.gravityTicker >= g.cfg.GravityTicks {
		g.gravityTicker = 0
		if next, ok := playfield.MoveDown(g.grid, g.table, g.piece); ok {
			g.piece = next
		} else {
			g.settle()
		}
	}

	return core.StepResult{State: g.State()}
}

// processInput applies player actions through the validator, keeping the
// previous piece whenever a candidate is rejected.
func (g *Game) processInput(input core.InputFrame) {
	switch {
	case input.Has(core.ActionLeft):
		if next, ok := playfield.MoveLeft(g.grid, g.table, g.piece); ok {
			g.piece = next
		}
	case input.Has(core.ActionRight):
		if next, ok := playfield.MoveRight(g.grid, g.table, g.piece); ok {
			g.piece = next
		}
	}

	switch {
	case input.Has(core.ActionRotateCW):
		if next, ok := playfield.RotateCW(g.grid, g.table, g.piece); ok {
			g.piece = next
		}
	case input.Has(core.ActionRotateCCW):
		if next, ok := playfield.RotateCCW(g.grid, g.table, g.piece); ok {
			g.piece = next
		}
	}

	switch {
	case input.Has(core.ActionHardDrop):
		_, resting := playfield.Drop(g.grid, g.table, g.piece)
		g.piece = resting
		g.settle()
	case input.Has(core.ActionSoftDrop):
		if next, ok := playfield.MoveDown(g.grid, g.table, g.piece); ok {
			g.piece = next
			g.gravityTicker = 0
		} else {
			g.settle()
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Lines:    g.lines,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Grid exposes the settled field for rendering collaborators.
func (g *Game) Grid() playfield.Grid {
	return g.grid
}

// Piece exposes the falling piece for rendering collaborators.
func (g *Game) Piece() playfield.Piece {
	return g.piece
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	return fmt.Sprintf("Tick: %d, Lines: %d, Piece: %s at %s rot %s, GameOver: %v",
		g.tick, g.lines, tetromino.KindName(g.piece.Kind), g.piece.Offset, g.piece.Rot, g.gameOver)
}
