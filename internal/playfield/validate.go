package playfield

// Verdict classifies a falling piece's position against a grid.
type Verdict uint8

const (
	// Valid means every occupied cell is inside the side and bottom bounds
	// and clear of settled cells.
	Valid Verdict = iota
	// OutOfBounds means some occupied cell has row >= height, col < 0 or
	// col >= width. Rows above the field (row < 0) are deliberately NOT
	// out of bounds: pieces may spawn or rotate partially above row 0.
	OutOfBounds
	// Intersects means some occupied cell coincides with a settled cell.
	Intersects
)

// String returns the verdict name.
func (v Verdict) String() string {
	switch v {
	case Valid:
		return "Valid"
	case OutOfBounds:
		return "OutOfBounds"
	case Intersects:
		return "Intersects"
	default:
		return "Unknown"
	}
}

// Check classifies the piece's position. Out-of-bounds takes precedence
// over intersection; both conditions are tested over all occupied cells.
func Check(g Grid, src ShapeSource, p Piece) Verdict {
	cells := p.Cells(src)
	for _, c := range cells {
		if c.Row >= g.Height() || c.Col < 0 || c.Col >= g.Width() {
			return OutOfBounds
		}
	}
	for _, c := range cells {
		if g.Contains(c) {
			return Intersects
		}
	}
	return Valid
}

// IsValid reports whether the piece may occupy its current position.
func IsValid(g Grid, src ShapeSource, p Piece) bool {
	return Check(g, src, p) == Valid
}

// attempt validates a candidate piece, returning the candidate and true on
// acceptance, or the zero candidate and false on rejection. Rejection is an
// expected outcome (wall hit, floor hit, blocked rotation), not an error;
// the caller keeps its previous piece value.
func attempt(g Grid, src ShapeSource, candidate Piece) (Piece, bool) {
	if !IsValid(g, src, candidate) {
		return Piece{}, false
	}
	return candidate, true
}

// MoveLeft attempts to shift the piece one column left.
func MoveLeft(g Grid, src ShapeSource, p Piece) (Piece, bool) {
	p.Offset = p.Offset.Add(0, -1)
	return attempt(g, src, p)
}

// MoveRight attempts to shift the piece one column right.
func MoveRight(g Grid, src ShapeSource, p Piece) (Piece, bool) {
	p.Offset = p.Offset.Add(0, 1)
	return attempt(g, src, p)
}

// MoveDown attempts to shift the piece one row down.
func MoveDown(g Grid, src ShapeSource, p Piece) (Piece, bool) {
	p.Offset = p.Offset.Add(1, 0)
	return attempt(g, src, p)
}

// RotateCW attempts to rotate the piece one step clockwise in place.
// No wall-kick correction is applied: if the rotated shape collides or
// leaves the side/bottom bounds, the rotation is rejected.
func RotateCW(g Grid, src ShapeSource, p Piece) (Piece, bool) {
	p.Rot = p.Rot.CW()
	return attempt(g, src, p)
}

// RotateCCW attempts to rotate the piece one step counter-clockwise in
// place, with the same rejection rule as RotateCW.
func RotateCCW(g Grid, src ShapeSource, p Piece) (Piece, bool) {
	p.Rot = p.Rot.CCW()
	return attempt(g, src, p)
}
