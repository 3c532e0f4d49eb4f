package blocks

import (
	"strings"
	"testing"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/playfield"
	"github.com/vovakirdan/blockfall/internal/tetromino"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:    seed,
		ScreenW: 80,
		ScreenH: 24,
	}
}

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.Reset(testConfig(seed))
	if g.tooSmall {
		t.Fatal("80x24 screen should fit the default board")
	}
	return g
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and inputs should produce identical
	// snapshots
	g1 := New()
	g1.Reset(testConfig(12345))

	g2 := New()
	g2.Reset(testConfig(12345))

	input := core.NewInputFrame()
	for i := 0; i < 300; i++ {
		input.Clear()
		switch i {
		case 5:
			input.Set(core.ActionLeft)
		case 12:
			input.Set(core.ActionRotateCW)
		case 30:
			input.Set(core.ActionHardDrop)
		case 60:
			input.Set(core.ActionSoftDrop)
		case 90:
			input.Set(core.ActionRight)
		case 150:
			input.Set(core.ActionHardDrop)
		}

		g1.Step(input)
		g2.Step(input)
	}

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()

	if snap1 != snap2 {
		t.Errorf("Snapshot mismatch: %+v vs %+v", snap1, snap2)
	}
}

func TestSpawnCentered(t *testing.T) {
	g := newTestGame(t, 42)

	if g.piece.Offset.Row != 0 {
		t.Errorf("Spawn row = %d, expected 0", g.piece.Offset.Row)
	}
	expectedCol := (g.grid.Width() - g.table.Size(g.piece.Kind)) / 2
	if g.piece.Offset.Col != expectedCol {
		t.Errorf("Spawn col = %d, expected %d", g.piece.Offset.Col, expectedCol)
	}
	if !playfield.IsValid(g.grid, g.table, g.piece) {
		t.Error("Spawned piece should be valid on an empty board")
	}
}

func TestGravityDescends(t *testing.T) {
	g := newTestGame(t, 42)
	g.cfg.GravityTicks = 2

	startRow := g.piece.Offset.Row
	input := core.NewInputFrame()
	g.Step(input)
	if g.piece.Offset.Row != startRow {
		t.Errorf("Piece moved after 1 tick with gravity interval 2, row = %d", g.piece.Offset.Row)
	}
	g.Step(input)
	if g.piece.Offset.Row != startRow+1 {
		t.Errorf("Piece row = %d after gravity interval, expected %d", g.piece.Offset.Row, startRow+1)
	}
}

func TestGravitySettlesOnFloor(t *testing.T) {
	g := newTestGame(t, 42)
	g.cfg.GravityTicks = 1

	// More than enough ticks for the first piece to reach the floor and
	// settle
	input := core.NewInputFrame()
	for i := 0; i < g.grid.Height()+5; i++ {
		g.Step(input)
		if g.grid.FilledCount() > 0 {
			break
		}
	}

	snap := g.Snapshot()
	if snap.Settled != 4 {
		t.Errorf("Settled cells = %d, expected 4 after the first piece rested", snap.Settled)
	}
	if snap.Row != 0 {
		t.Errorf("New piece row = %d, expected a fresh spawn at 0", snap.Row)
	}
}

func TestHardDropSettlesImmediately(t *testing.T) {
	g := newTestGame(t, 42)

	input := core.NewInputFrame()
	input.Set(core.ActionHardDrop)
	g.Step(input)

	snap := g.Snapshot()
	if snap.Settled != 4 {
		t.Errorf("Settled cells = %d, expected 4 after hard drop", snap.Settled)
	}
	if snap.Row != 0 {
		t.Errorf("Piece row = %d, expected respawn at 0 after hard drop", snap.Row)
	}
	if snap.Lines != 0 {
		t.Errorf("Lines = %d, expected 0 from a single piece", snap.Lines)
	}
}

func TestSoftDropOnFloorSettles(t *testing.T) {
	g := newTestGame(t, 42)

	// Park the piece on the floor, then soft-drop once more
	_, resting := playfield.Drop(g.grid, g.table, g.piece)
	g.piece = resting

	input := core.NewInputFrame()
	input.Set(core.ActionSoftDrop)
	g.Step(input)

	if got := g.grid.FilledCount(); got != 4 {
		t.Errorf("Settled cells = %d, expected 4 after soft drop on the floor", got)
	}
}

func TestSoftDropResetsGravity(t *testing.T) {
	g := newTestGame(t, 42)
	g.cfg.GravityTicks = 3
	g.gravityTicker = 2

	input := core.NewInputFrame()
	input.Set(core.ActionSoftDrop)
	g.Step(input)

	if g.gravityTicker != 0 {
		t.Errorf("gravityTicker = %d after soft drop, expected 0", g.gravityTicker)
	}
}

func TestLineClear(t *testing.T) {
	g := newTestGame(t, 42)

	// Bottom row filled everywhere except where a flat I piece will land
	g.piece = tetromino.Spawn(tetromino.I, g.grid.Width())
	rows := g.grid.ToRows()
	bottom := rows[len(rows)-1]
	for col := range bottom {
		if col >= 3 && col <= 6 {
			continue
		}
		bottom[col] = playfield.FilledCell(tetromino.ColorRed)
	}
	filled, err := playfield.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	g.grid = filled

	input := core.NewInputFrame()
	input.Set(core.ActionHardDrop)
	g.Step(input)

	snap := g.Snapshot()
	if snap.Lines != 1 {
		t.Errorf("Lines = %d, expected 1 after completing the bottom row", snap.Lines)
	}
	if snap.Settled != 0 {
		t.Errorf("Settled cells = %d, expected 0 after the only row cleared", snap.Settled)
	}
}

func TestTopOut(t *testing.T) {
	g := newTestGame(t, 42)

	// Block the spawn area without completing any row
	rows := g.grid.ToRows()
	for row := 0; row < 2; row++ {
		for col := 0; col < g.grid.Width()-1; col++ {
			rows[row][col] = playfield.FilledCell(tetromino.ColorRed)
		}
	}
	filled, err := playfield.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	g.grid = filled

	g.spawnNext()
	if !g.gameOver {
		t.Error("Spawning into an occupied area should end the game")
	}
	if state := g.Snapshot().State; state != StateGameOver {
		t.Errorf("Snapshot state = %q, expected %q", state, StateGameOver)
	}
}

func TestPauseFreezesGravity(t *testing.T) {
	g := newTestGame(t, 42)
	g.cfg.GravityTicks = 1

	input := core.NewInputFrame()
	input.Set(core.ActionPause)
	g.Step(input)
	if !g.paused {
		t.Fatal("Expected game to pause")
	}

	startRow := g.piece.Offset.Row
	input.Clear()
	for i := 0; i < 5; i++ {
		g.Step(input)
	}
	if g.piece.Offset.Row != startRow {
		t.Errorf("Piece row = %d while paused, expected %d", g.piece.Offset.Row, startRow)
	}

	input.Set(core.ActionPause)
	g.Step(input)
	if g.paused {
		t.Error("Expected game to resume")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := newTestGame(t, 42)
	g.lines = 7
	g.gameOver = true

	input := core.NewInputFrame()
	input.Set(core.ActionRestart)
	g.Step(input)

	snap := g.Snapshot()
	if snap.State != StatePlaying {
		t.Errorf("State after restart = %q, expected %q", snap.State, StatePlaying)
	}
	if snap.Lines != 0 {
		t.Errorf("Lines after restart = %d, expected 0", snap.Lines)
	}
	if snap.Settled != 0 {
		t.Errorf("Settled cells after restart = %d, expected 0", snap.Settled)
	}
}

func TestWallStopsMovement(t *testing.T) {
	g := newTestGame(t, 42)
	g.cfg.GravityTicks = 1000 // keep the piece from descending during the test

	input := core.NewInputFrame()
	input.Set(core.ActionLeft)
	for i := 0; i < g.grid.Width(); i++ {
		g.Step(input)
	}

	atWall := g.piece.Offset.Col
	g.Step(input)
	if g.piece.Offset.Col != atWall {
		t.Errorf("Piece col = %d after pushing into the wall, expected %d", g.piece.Offset.Col, atWall)
	}
	if !playfield.IsValid(g.grid, g.table, g.piece) {
		t.Error("Piece should stay valid while pushed against the wall")
	}
}

func TestWindowTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 10, ScreenH: 8})

	if !g.tooSmall {
		t.Fatal("10x8 screen should be too small for the default board")
	}
	if state := g.Snapshot().State; state != StatePausedSmall {
		t.Errorf("Snapshot state = %q, expected %q", state, StatePausedSmall)
	}

	// Stepping a too-small game must be a no-op, not a crash
	tickBefore := g.tick
	g.Step(core.NewInputFrame())
	if g.tick != tickBefore+1 {
		t.Errorf("Tick = %d, expected %d", g.tick, tickBefore+1)
	}
}

func TestRenderSmoke(t *testing.T) {
	g := newTestGame(t, 42)

	// A freshly spawned piece sits in the cropped spawn buffer; bring it
	// into the visible area before rendering.
	_, resting := playfield.Drop(g.grid, g.table, g.piece)
	g.piece = resting

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "Blockfall") {
		t.Error("Rendered screen should contain the HUD title")
	}
	if !strings.Contains(out, string(blockRune)) {
		t.Error("Rendered screen should contain the falling piece")
	}
}

func TestRenderShadowStyles(t *testing.T) {
	g := newTestGame(t, 42)

	screen := core.NewScreen(80, 24)

	g.shadow = config.ShadowGray
	g.Render(screen)
	if !strings.Contains(screen.String(), string(shadowRune)) {
		t.Error("Gray shadow style should draw ghost cells")
	}

	g.shadow = config.ShadowOff
	g.Render(screen)
	if strings.Contains(screen.String(), string(shadowRune)) {
		t.Error("Disabled shadow style should not draw ghost cells")
	}
}
