package playfield

// Kind identifies a piece shape. The playfield is agnostic to the catalog
// of shapes; kinds are resolved through a ShapeSource.
type Kind uint8

// ShapeSource is the capability interface through which the playfield
// consumes the piece shape table. Cells returns the relative coordinates a
// kind occupies at a given rotation; Size returns the kind's bounding
// square size, used only for spawn centering. Implementations must be pure:
// same inputs, same outputs.
type ShapeSource interface {
	Cells(k Kind, r Rotation) []Coord
	Size(k Kind) int
}

// Piece is the transient state of the currently falling piece. It is an
// immutable value: movement and rotation produce new Piece values, and a
// Piece is never stored inside a Grid. Offset is the top-left reference
// point added to every relative cell of the shape.
type Piece struct {
	Kind   Kind
	Rot    Rotation
	Offset Coord
	Color  Color
}

// Spawn creates a piece at the top of a field of the given width: row 0,
// horizontally centered by bounding size (integer division).
func Spawn(src ShapeSource, k Kind, color Color, gridWidth int) Piece {
	return Piece{
		Kind:   k,
		Rot:    R0,
		Offset: At(0, (gridWidth-src.Size(k))/2),
		Color:  color,
	}
}

// Cells returns the absolute coordinates the piece occupies: every relative
// cell of the shape at the piece's rotation, translated by its offset.
func (p Piece) Cells(src ShapeSource) []Coord {
	rel := src.Cells(p.Kind, p.Rot)
	abs := make([]Coord, len(rel))
	for i, c := range rel {
		abs[i] = c.AddCoord(p.Offset)
	}
	return abs
}
