package playfield

import "fmt"

// Coord represents a 2D position on the field.
// Row increases downward, Col increases rightward (screen coordinates).
// A Coord carries no bounds of its own; bounds are a Grid property.
type Coord struct {
	Row int
	Col int
}

// At is a convenience constructor for Coord.
func At(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns a new Coord offset by (dRow, dCol).
func (c Coord) Add(dRow, dCol int) Coord {
	return Coord{Row: c.Row + dRow, Col: c.Col + dCol}
}

// AddCoord returns the component-wise sum of two coordinates.
func (c Coord) AddCoord(other Coord) Coord {
	return Coord{Row: c.Row + other.Row, Col: c.Col + other.Col}
}
