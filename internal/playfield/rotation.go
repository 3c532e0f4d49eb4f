package playfield

// Rotation is one of the four discrete orientations of a piece.
// The clockwise cycle is R0 -> RR -> R2 -> RL -> R0; the counter-clockwise
// cycle is the mirrored traversal of the same four states. No numeric
// angle is modeled, only the symbolic state.
type Rotation uint8

const (
	R0 Rotation = iota // spawn orientation
	RR                 // one clockwise turn from spawn
	R2                 // two turns in either direction
	RL                 // one counter-clockwise turn from spawn
)

// CW returns the next rotation one step clockwise.
func (r Rotation) CW() Rotation {
	switch r {
	case R0:
		return RR
	case RR:
		return R2
	case R2:
		return RL
	case RL:
		return R0
	default:
		return r
	}
}

// CCW returns the next rotation one step counter-clockwise.
func (r Rotation) CCW() Rotation {
	switch r {
	case R0:
		return RL
	case RL:
		return R2
	case R2:
		return RR
	case RR:
		return R0
	default:
		return r
	}
}

// String returns the symbolic name of the rotation.
func (r Rotation) String() string {
	switch r {
	case R0:
		return "R0"
	case RR:
		return "RR"
	case R2:
		return "R2"
	case RL:
		return "RL"
	default:
		return "Unknown"
	}
}
