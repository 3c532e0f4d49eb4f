package playfield

import "testing"

// stubSource is a synthetic shape table for exercising the playfield
// without the real piece catalog.
type stubSource struct {
	size  int
	cells map[Rotation][]Coord
}

func (s stubSource) Cells(_ Kind, r Rotation) []Coord { return s.cells[r] }
func (s stubSource) Size(_ Kind) int                  { return s.size }

// barSource is a 4-wide horizontal bar occupying the top row of a 4x4
// bounding box, at every rotation.
func barSource() stubSource {
	bar := []Coord{At(0, 0), At(0, 1), At(0, 2), At(0, 3)}
	return stubSource{
		size: 4,
		cells: map[Rotation][]Coord{
			R0: bar, RR: bar, R2: bar, RL: bar,
		},
	}
}

// dotSource is a single-cell piece at the bounding box origin.
func dotSource() stubSource {
	dot := []Coord{At(0, 0)}
	return stubSource{
		size: 1,
		cells: map[Rotation][]Coord{
			R0: dot, RR: dot, R2: dot, RL: dot,
		},
	}
}

// fillRow settles every column of the given row.
func fillRow(t *testing.T, g Grid, row int, color Color) Grid {
	t.Helper()
	rows := g.ToRows()
	for col := range rows[row] {
		rows[row][col] = FilledCell(color)
	}
	out, err := FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	return out
}

func TestEmptyGrid(t *testing.T) {
	g := Empty(DefaultWidth, DefaultHeight)

	if g.Width() != 10 || g.Height() != 22 {
		t.Errorf("dimensions = %dx%d, expected 10x22", g.Width(), g.Height())
	}
	if g.FilledCount() != 0 {
		t.Errorf("FilledCount() = %d, expected 0", g.FilledCount())
	}
	if g.Contains(At(0, 0)) {
		t.Error("empty grid should contain no settled cells")
	}
}

func TestContainsOutOfBounds(t *testing.T) {
	g := Empty(10, 22)
	for _, c := range []Coord{At(-1, 0), At(0, -1), At(22, 0), At(0, 10)} {
		if g.Contains(c) {
			t.Errorf("Contains(%v) = true for out-of-bounds coordinate", c)
		}
	}
}

func TestAddPiece(t *testing.T) {
	src := dotSource()
	g := Empty(10, 22)
	p := Piece{Kind: 0, Rot: R0, Offset: At(5, 4), Color: 3}

	g2 := g.AddPiece(src, p)

	if !g2.Contains(At(5, 4)) {
		t.Error("added cell should be settled in the new grid")
	}
	if got := g2.CellAt(At(5, 4)).Color; got != 3 {
		t.Errorf("settled color = %d, expected 3", got)
	}
	// Value semantics: the input grid is untouched.
	if g.Contains(At(5, 4)) {
		t.Error("AddPiece must not mutate its receiver")
	}
}

func TestAddPieceAboveField(t *testing.T) {
	// Cells above row 0 are simply dropped; the piece itself stays legal.
	src := dotSource()
	g := Empty(10, 22)
	p := Piece{Offset: At(-1, 4)}

	g2 := g.AddPiece(src, p)
	if g2.FilledCount() != 0 {
		t.Errorf("FilledCount() = %d, expected 0 for a cell above the field", g2.FilledCount())
	}
}

func TestRemoveFullLinesNone(t *testing.T) {
	g := Empty(10, 22)
	g = g.AddPiece(dotSource(), Piece{Offset: At(21, 0), Color: 1})

	count, g2 := g.RemoveFullLines()

	if count != 0 {
		t.Errorf("count = %d, expected 0", count)
	}
	if !g2.Equal(g) {
		t.Error("grid with no full rows should be structurally identical after RemoveFullLines")
	}
}

func TestRemoveFullLinesSingleBottomRow(t *testing.T) {
	// One fully settled bottom row and nothing else: the result is an
	// entirely empty grid of the same dimensions.
	g := Empty(10, 22)
	g = fillRow(t, g, 21, 2)

	count, g2 := g.RemoveFullLines()

	if count != 1 {
		t.Errorf("count = %d, expected 1", count)
	}
	if g2.Height() != 22 || g2.Width() != 10 {
		t.Errorf("dimensions = %dx%d, expected 10x22", g2.Width(), g2.Height())
	}
	if g2.FilledCount() != 0 {
		t.Errorf("FilledCount() = %d, expected 0 after clearing the only settled row", g2.FilledCount())
	}
}

func TestRemoveFullLinesCompaction(t *testing.T) {
	// Rows 19 and 21 full, row 20 holds a partial row. After clearing, the
	// partial row must sit at the bottom with two fresh empty rows on top.
	g := Empty(4, 6)
	g = fillRow(t, g, 3, 1)
	g = fillRow(t, g, 5, 1)
	g = g.AddPiece(dotSource(), Piece{Offset: At(4, 2), Color: 7})

	count, g2 := g.RemoveFullLines()

	if count != 2 {
		t.Fatalf("count = %d, expected 2", count)
	}
	if g2.Height() != 6 {
		t.Errorf("height = %d, expected 6", g2.Height())
	}
	if g2.FilledCount() != 1 {
		t.Errorf("FilledCount() = %d, expected 1", g2.FilledCount())
	}
	// The surviving row is displaced down to the bottom row.
	if !g2.Contains(At(5, 2)) {
		t.Error("surviving partial row should end up at the bottom")
	}
	if got := g2.CellAt(At(5, 2)).Color; got != 7 {
		t.Errorf("surviving cell color = %d, expected 7", got)
	}
}

func TestRemoveFullLinesPreservesOrder(t *testing.T) {
	// Two distinguishable partial rows separated by a full row keep their
	// relative order after compaction.
	g := Empty(3, 5)
	g = g.AddPiece(dotSource(), Piece{Offset: At(1, 0), Color: 1})
	g = fillRow(t, g, 2, 9)
	g = g.AddPiece(dotSource(), Piece{Offset: At(3, 1), Color: 2})

	count, g2 := g.RemoveFullLines()

	if count != 1 {
		t.Fatalf("count = %d, expected 1", count)
	}
	// Everything shifts down one row; color 1 stays above color 2.
	if got := g2.CellAt(At(2, 0)).Color; got != 1 {
		t.Errorf("cell (2,0) color = %d, expected 1", got)
	}
	if got := g2.CellAt(At(4, 1)).Color; got != 2 {
		t.Errorf("cell (4,1) color = %d, expected 2", got)
	}
}

func TestRowsRoundTrip(t *testing.T) {
	g := Empty(10, 22)
	g = g.AddPiece(dotSource(), Piece{Offset: At(21, 0), Color: 1})
	g = g.AddPiece(dotSource(), Piece{Offset: At(0, 9), Color: 5})
	g = g.AddPiece(dotSource(), Piece{Offset: At(11, 4), Color: 3})

	g2, err := FromRows(g.ToRows())
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	if !g2.Equal(g) {
		t.Error("FromRows(ToRows(g)) should equal g")
	}
}

func TestFromRowsEmpty(t *testing.T) {
	g, err := FromRows(nil)
	if err != nil {
		t.Fatalf("FromRows(nil): %v", err)
	}
	if g.Width() != 0 || g.Height() != 0 {
		t.Errorf("dimensions = %dx%d, expected 0x0", g.Width(), g.Height())
	}
}

func TestFromRowsRagged(t *testing.T) {
	rows := [][]Cell{
		make([]Cell, 4),
		make([]Cell, 3),
	}
	if _, err := FromRows(rows); err == nil {
		t.Error("FromRows should reject rows of unequal length")
	}
}
