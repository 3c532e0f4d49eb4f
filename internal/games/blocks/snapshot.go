package blocks

import "github.com/vovakirdan/blockfall/internal/playfield"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateGameOver    GameStateType = "game_over"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the observable game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Lines    int
	Kind     playfield.Kind
	Rot      playfield.Rotation
	Row      int
	Col      int
	Settled  int // Number of settled cells in the grid
	State    GameStateType
	BoardW   int
	BoardH   int
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:    g.tick,
		Lines:   g.lines,
		Kind:    g.piece.Kind,
		Rot:     g.piece.Rot,
		Row:     g.piece.Offset.Row,
		Col:     g.piece.Offset.Col,
		Settled: g.grid.FilledCount(),
		State:   state,
		BoardW:  g.grid.Width(),
		BoardH:  g.grid.Height(),
	}
}
