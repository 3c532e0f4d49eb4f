package playfield

// Drop projects where the piece would come to rest if moved straight down,
// without mutating anything. It returns the number of rows traversed and
// the resting piece (same kind, rotation and color, offset advanced by the
// distance). A distance of 0 is a valid result meaning the piece cannot
// move down from its current position; it is not an error. The resting
// piece is never committed to the grid here; settling is the driver's
// responsibility.
func Drop(g Grid, src ShapeSource, p Piece) (int, Piece) {
	distance := 0
	resting := p
	for {
		next, ok := MoveDown(g, src, resting)
		if !ok {
			return distance, resting
		}
		resting = next
		distance++
	}
}
