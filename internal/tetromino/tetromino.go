// Package tetromino provides the standard seven-piece shape catalog for the
// playfield: per-rotation occupied-cell tables, bounding sizes and colors.
// The playfield consumes it through the playfield.ShapeSource interface and
// stays agnostic to how the catalog is built.
package tetromino

import (
	"math/rand"

	"github.com/vovakirdan/blockfall/internal/playfield"
)

// The seven standard piece kinds.
const (
	I playfield.Kind = iota
	O
	T
	S
	Z
	J
	L

	// KindCount is the number of kinds, for iteration.
	KindCount = 7
)

// KindName returns the conventional one-letter name of a kind.
func KindName(k playfield.Kind) string {
	switch k {
	case I:
		return "I"
	case O:
		return "O"
	case T:
		return "T"
	case S:
		return "S"
	case Z:
		return "Z"
	case J:
		return "J"
	case L:
		return "L"
	default:
		return "?"
	}
}

// Opaque color tokens per kind, following the conventional palette.
const (
	ColorCyan playfield.Color = iota + 1
	ColorYellow
	ColorPurple
	ColorGreen
	ColorRed
	ColorBlue
	ColorOrange
)

var kindColors = [KindCount]playfield.Color{
	I: ColorCyan,
	O: ColorYellow,
	T: ColorPurple,
	S: ColorGreen,
	Z: ColorRed,
	J: ColorBlue,
	L: ColorOrange,
}

// ColorOf returns the color token for a kind.
func ColorOf(k playfield.Kind) playfield.Color {
	return kindColors[k]
}

// at is shorthand to keep the shape tables readable.
func at(row, col int) playfield.Coord {
	return playfield.At(row, col)
}

// shapes holds the relative occupied cells for each kind at each rotation,
// indexed [kind][rotation]. Coordinates are relative to the piece's
// top-left reference point within its bounding square. The I piece rotates
// inside a 4x4 box, O inside 2x2, all others inside 3x3.
var shapes = [KindCount][4][]playfield.Coord{
	I: {
		playfield.R0: {at(1, 0), at(1, 1), at(1, 2), at(1, 3)},
		playfield.RR: {at(0, 2), at(1, 2), at(2, 2), at(3, 2)},
		playfield.R2: {at(2, 0), at(2, 1), at(2, 2), at(2, 3)},
		playfield.RL: {at(0, 1), at(1, 1), at(2, 1), at(3, 1)},
	},
	O: {
		playfield.R0: {at(0, 0), at(0, 1), at(1, 0), at(1, 1)},
		playfield.RR: {at(0, 0), at(0, 1), at(1, 0), at(1, 1)},
		playfield.R2: {at(0, 0), at(0, 1), at(1, 0), at(1, 1)},
		playfield.RL: {at(0, 0), at(0, 1), at(1, 0), at(1, 1)},
	},
	T: {
		playfield.R0: {at(0, 1), at(1, 0), at(1, 1), at(1, 2)},
		playfield.RR: {at(0, 1), at(1, 1), at(1, 2), at(2, 1)},
		playfield.R2: {at(1, 0), at(1, 1), at(1, 2), at(2, 1)},
		playfield.RL: {at(0, 1), at(1, 0), at(1, 1), at(2, 1)},
	},
	S: {
		playfield.R0: {at(0, 1), at(0, 2), at(1, 0), at(1, 1)},
		playfield.RR: {at(0, 1), at(1, 1), at(1, 2), at(2, 2)},
		playfield.R2: {at(1, 1), at(1, 2), at(2, 0), at(2, 1)},
		playfield.RL: {at(0, 0), at(1, 0), at(1, 1), at(2, 1)},
	},
	Z: {
		playfield.R0: {at(0, 0), at(0, 1), at(1, 1), at(1, 2)},
		playfield.RR: {at(0, 2), at(1, 1), at(1, 2), at(2, 1)},
		playfield.R2: {at(1, 0), at(1, 1), at(2, 1), at(2, 2)},
		playfield.RL: {at(0, 1), at(1, 0), at(1, 1), at(2, 0)},
	},
	J: {
		playfield.R0: {at(0, 0), at(1, 0), at(1, 1), at(1, 2)},
		playfield.RR: {at(0, 1), at(0, 2), at(1, 1), at(2, 1)},
		playfield.R2: {at(1, 0), at(1, 1), at(1, 2), at(2, 2)},
		playfield.RL: {at(0, 1), at(1, 1), at(2, 0), at(2, 1)},
	},
	L: {
		playfield.R0: {at(0, 2), at(1, 0), at(1, 1), at(1, 2)},
		playfield.RR: {at(0, 1), at(1, 1), at(2, 1), at(2, 2)},
		playfield.R2: {at(1, 0), at(1, 1), at(1, 2), at(2, 0)},
		playfield.RL: {at(0, 0), at(0, 1), at(1, 1), at(2, 1)},
	},
}

var sizes = [KindCount]int{
	I: 4,
	O: 2,
	T: 3,
	S: 3,
	Z: 3,
	J: 3,
	L: 3,
}

// Table is the standard shape catalog. The zero value is ready to use and
// implements playfield.ShapeSource.
type Table struct{}

// Cells returns the relative cells of a kind at a rotation. The returned
// slice is shared; callers must not modify it.
func (Table) Cells(k playfield.Kind, r playfield.Rotation) []playfield.Coord {
	return shapes[k][r]
}

// Size returns the bounding square size of a kind.
func (Table) Size(k playfield.Kind) int {
	return sizes[k]
}

var _ playfield.ShapeSource = Table{}

// Spawn creates a freshly spawned piece of the given kind, horizontally
// centered at the top of a field of the given width, with the kind's color.
func Spawn(k playfield.Kind, gridWidth int) playfield.Piece {
	return playfield.Spawn(Table{}, k, ColorOf(k), gridWidth)
}

// Sequence is a deterministic stream of piece kinds using the seven-bag
// rule: each run of seven contains every kind exactly once, in an order
// drawn from the seeded RNG.
type Sequence struct {
	rng *rand.Rand
	bag []playfield.Kind
}

// NewSequence creates a sequence seeded for reproducible games.
func NewSequence(seed int64) *Sequence {
	return &Sequence{rng: rand.New(rand.NewSource(seed))}
}

// Reseed draws a fresh seed from the sequence's RNG, used to seed the
// sequence of a restarted game.
func (s *Sequence) Reseed() int64 {
	return s.rng.Int63()
}

// Next returns the next kind in the stream.
func (s *Sequence) Next() playfield.Kind {
	if len(s.bag) == 0 {
		s.bag = []playfield.Kind{I, O, T, S, Z, J, L}
		s.rng.Shuffle(len(s.bag), func(i, j int) {
			s.bag[i], s.bag[j] = s.bag[j], s.bag[i]
		})
	}
	k := s.bag[0]
	s.bag = s.bag[1:]
	return k
}
