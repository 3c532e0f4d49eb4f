// Package playfield implements the settled-block grid, the falling piece,
// movement/rotation validation and shadow projection for a falling-block
// puzzle game. It is UI-agnostic, deterministic, and value-semantic: every
// operation returns a new value instead of mutating its input, so a driver
// can hold "current" and "candidate" states without aliasing.
package playfield

import "fmt"

// Color is an opaque token identifying a cell's visual identity. It carries
// no game-logic meaning beyond being copied from a settled piece into the
// grid. The zero value is reserved for "no color" inside empty cells.
type Color uint8

// Cell is a single grid cell: either empty or settled with a color.
type Cell struct {
	Filled bool
	Color  Color // valid only when Filled is true
}

// EmptyCell returns an empty cell.
func EmptyCell() Cell {
	return Cell{}
}

// FilledCell returns a settled cell with the given color.
func FilledCell(c Color) Cell {
	return Cell{Filled: true, Color: c}
}

// Grid is the rectangular field of settled cells. It never contains the
// falling piece; only committed pieces become grid cells via AddPiece.
// Cells are stored dense in row-major order: index = row*width + col.
// The width and height are fixed at creation.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// DefaultWidth and DefaultHeight are the canonical field dimensions.
const (
	DefaultWidth  = 10
	DefaultHeight = 22
)

// Empty returns a Grid of the given dimensions with no settled cells.
func Empty(width, height int) Grid {
	return Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// Width returns the number of columns.
func (g Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g Grid) Height() int {
	return g.height
}

func (g Grid) index(c Coord) int {
	return c.Row*g.width + c.Col
}

// InBounds returns true if the coordinate lies within the grid rectangle.
func (g Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.height && c.Col >= 0 && c.Col < g.width
}

// Contains returns true if a settled cell occupies the coordinate.
// Out-of-bounds coordinates are never settled.
func (g Grid) Contains(c Coord) bool {
	return g.InBounds(c) && g.cells[g.index(c)].Filled
}

// CellAt returns the cell at the coordinate, or an empty cell when the
// coordinate is out of bounds.
func (g Grid) CellAt(c Coord) Cell {
	if !g.InBounds(c) {
		return EmptyCell()
	}
	return g.cells[g.index(c)]
}

// clone returns a deep copy sharing no cell storage with the receiver.
func (g Grid) clone() Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return Grid{width: g.width, height: g.height, cells: cells}
}

// AddPiece returns a new Grid with the piece's occupied cells settled into
// it, colored with the piece's color. Cells outside the grid rectangle are
// dropped; a coordinate already settled is silently overwritten (prior
// validation prevents that in practice).
func (g Grid) AddPiece(src ShapeSource, p Piece) Grid {
	out := g.clone()
	for _, c := range p.Cells(src) {
		if out.InBounds(c) {
			out.cells[out.index(c)] = FilledCell(p.Color)
		}
	}
	return out
}

// RemoveFullLines detects rows in which every column holds a settled cell,
// removes them, and prepends the same number of empty rows at the top so
// the rows above are displaced downward. The remaining non-full rows keep
// their original relative order. It returns the number of removed rows and
// the compacted grid; the receiver is left untouched.
func (g Grid) RemoveFullLines() (int, Grid) {
	rows := g.ToRows()

	rest := make([][]Cell, 0, len(rows))
	for _, row := range rows {
		if rowFull(row) {
			continue
		}
		rest = append(rest, row)
	}

	count := len(rows) - len(rest)
	if count == 0 {
		return 0, g.clone()
	}

	compacted := make([][]Cell, 0, len(rows))
	for range count {
		compacted = append(compacted, make([]Cell, g.width))
	}
	compacted = append(compacted, rest...)

	out, err := FromRows(compacted)
	if err != nil {
		// Rows produced by ToRows are rectangular by construction.
		panic(err)
	}
	return count, out
}

func rowFull(row []Cell) bool {
	for _, cell := range row {
		if !cell.Filled {
			return false
		}
	}
	return len(row) > 0
}

// ToRows converts the grid to its canonical row-major representation:
// one slice per row, top to bottom, each of length Width.
func (g Grid) ToRows() [][]Cell {
	rows := make([][]Cell, g.height)
	for r := range g.height {
		row := make([]Cell, g.width)
		copy(row, g.cells[r*g.width:(r+1)*g.width])
		rows[r] = row
	}
	return rows
}

// FromRows rebuilds a Grid from its row-major representation. Width is
// taken from the first row (0 when rows is empty) and height from the row
// count. All rows must share one common length; ragged input is rejected.
func FromRows(rows [][]Cell) (Grid, error) {
	width := 0
	if len(rows) > 0 {
		width = len(rows[0])
	}

	g := Empty(width, len(rows))
	for r, row := range rows {
		if len(row) != width {
			return Grid{}, fmt.Errorf("playfield: row %d has length %d, want %d", r, len(row), width)
		}
		copy(g.cells[r*width:(r+1)*width], row)
	}
	return g, nil
}

// Equal returns true if two grids have the same dimensions and cells.
func (g Grid) Equal(other Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i, cell := range g.cells {
		if cell != other.cells[i] {
			return false
		}
	}
	return true
}

// FilledCount returns the number of settled cells.
func (g Grid) FilledCount() int {
	count := 0
	for _, cell := range g.cells {
		if cell.Filled {
			count++
		}
	}
	return count
}
