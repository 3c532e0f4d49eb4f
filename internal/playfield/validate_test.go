package playfield

import "testing"

func TestCheckVerdicts(t *testing.T) {
	src := dotSource()
	g := Empty(10, 22)

	tests := []struct {
		name     string
		offset   Coord
		expected Verdict
	}{
		{"inside", At(5, 5), Valid},
		{"left wall", At(5, -1), OutOfBounds},
		{"right wall", At(5, 10), OutOfBounds},
		{"below floor", At(22, 5), OutOfBounds},
		{"on floor row", At(21, 5), Valid},
		{"above field", At(-3, 5), Valid}, // rows above the field are legal
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := Check(g, src, Piece{Offset: tc.offset})
			if v != tc.expected {
				t.Errorf("Check() = %v, expected %v", v, tc.expected)
			}
		})
	}
}

func TestCheckIntersects(t *testing.T) {
	src := dotSource()
	g := Empty(10, 22).AddPiece(src, Piece{Offset: At(10, 5), Color: 1})

	if v := Check(g, src, Piece{Offset: At(10, 5)}); v != Intersects {
		t.Errorf("Check() = %v, expected Intersects", v)
	}
	if v := Check(g, src, Piece{Offset: At(9, 5)}); v != Valid {
		t.Errorf("Check() = %v, expected Valid above the settled cell", v)
	}
}

func TestNegativeRowLeniency(t *testing.T) {
	// A piece occupying only rows < 0 with legal columns is valid against
	// an empty grid of any size.
	src := barSource()
	for _, dims := range [][2]int{{10, 22}, {4, 4}, {6, 1}} {
		g := Empty(dims[0], dims[1])
		p := Piece{Offset: At(-4, 0)}
		if !IsValid(g, src, p) {
			t.Errorf("piece above a %dx%d field should be valid", dims[0], dims[1])
		}
	}
}

func TestMoves(t *testing.T) {
	src := dotSource()
	g := Empty(10, 22)

	p := Piece{Offset: At(5, 5)}

	left, ok := MoveLeft(g, src, p)
	if !ok || left.Offset != At(5, 4) {
		t.Errorf("MoveLeft = %v/%v, expected (5,4)/true", left.Offset, ok)
	}
	right, ok := MoveRight(g, src, p)
	if !ok || right.Offset != At(5, 6) {
		t.Errorf("MoveRight = %v/%v, expected (5,6)/true", right.Offset, ok)
	}
	down, ok := MoveDown(g, src, p)
	if !ok || down.Offset != At(6, 5) {
		t.Errorf("MoveDown = %v/%v, expected (6,5)/true", down.Offset, ok)
	}
}

func TestMoveRejections(t *testing.T) {
	src := dotSource()
	g := Empty(10, 22)

	if _, ok := MoveLeft(g, src, Piece{Offset: At(5, 0)}); ok {
		t.Error("MoveLeft at the left wall should be rejected")
	}
	if _, ok := MoveRight(g, src, Piece{Offset: At(5, 9)}); ok {
		t.Error("MoveRight at the right wall should be rejected")
	}
	if _, ok := MoveDown(g, src, Piece{Offset: At(21, 5)}); ok {
		t.Error("MoveDown on the floor row should be rejected")
	}
}

func TestMoveDownToFloorScenario(t *testing.T) {
	// 4-wide bar spawned on an empty 10x22 field: centered at column 3,
	// 21 successful descents, the 22nd rejected at the floor.
	src := barSource()
	g := Empty(10, 22)
	p := Spawn(src, 0, 1, g.Width())

	if p.Offset != At(0, 3) {
		t.Fatalf("spawn offset = %v, expected (0,3)", p.Offset)
	}

	for i := range 21 {
		next, ok := MoveDown(g, src, p)
		if !ok {
			t.Fatalf("MoveDown %d should be accepted", i+1)
		}
		p = next
	}
	if p.Offset.Row != 21 {
		t.Fatalf("offset row = %d after 21 descents, expected 21", p.Offset.Row)
	}
	if _, ok := MoveDown(g, src, p); ok {
		t.Error("22nd MoveDown should be rejected at the floor")
	}
}

func TestRotate(t *testing.T) {
	// An asymmetric two-cell piece: vertical at R0/R2, horizontal at RR/RL.
	vertical := []Coord{At(0, 0), At(1, 0)}
	horizontal := []Coord{At(0, 0), At(0, 1)}
	src := stubSource{
		size: 2,
		cells: map[Rotation][]Coord{
			R0: vertical, R2: vertical,
			RR: horizontal, RL: horizontal,
		},
	}
	g := Empty(10, 22)
	p := Piece{Offset: At(5, 5)}

	cw, ok := RotateCW(g, src, p)
	if !ok {
		t.Fatal("free rotation should be accepted")
	}
	if cw.Rot != RR {
		t.Errorf("rotation = %v, expected RR", cw.Rot)
	}
	if cw.Offset != p.Offset {
		t.Errorf("offset changed on rotation: %v -> %v", p.Offset, cw.Offset)
	}

	ccw, ok := RotateCCW(g, src, p)
	if !ok {
		t.Fatal("free rotation should be accepted")
	}
	if ccw.Rot != RL {
		t.Errorf("rotation = %v, expected RL", ccw.Rot)
	}
}

func TestRotateRejectedLeavesCallerValue(t *testing.T) {
	// The rotated shape would intersect a settled cell; the caller's piece
	// must keep its pre-rotation state since no candidate is returned.
	vertical := []Coord{At(0, 0), At(1, 0)}
	horizontal := []Coord{At(0, 0), At(0, 1)}
	src := stubSource{
		size: 2,
		cells: map[Rotation][]Coord{
			R0: vertical, R2: vertical,
			RR: horizontal, RL: horizontal,
		},
	}

	g := Empty(10, 22).AddPiece(dotSource(), Piece{Offset: At(5, 6), Color: 1})
	p := Piece{Offset: At(5, 5)}

	if _, ok := RotateCW(g, src, p); ok {
		t.Fatal("rotation into a settled cell should be rejected")
	}
	if p.Rot != R0 || p.Offset != At(5, 5) {
		t.Errorf("caller-held piece changed after rejected rotation: %+v", p)
	}
}

func TestRotateRejectedAtWall(t *testing.T) {
	// No wall kick: a rotation that would poke through the right wall is
	// rejected outright.
	vertical := []Coord{At(0, 0), At(1, 0)}
	horizontal := []Coord{At(0, 0), At(0, 1)}
	src := stubSource{
		size: 2,
		cells: map[Rotation][]Coord{
			R0: vertical, R2: vertical,
			RR: horizontal, RL: horizontal,
		},
	}

	g := Empty(10, 22)
	p := Piece{Offset: At(5, 9)}

	if !IsValid(g, src, p) {
		t.Fatal("vertical piece against the wall should be valid")
	}
	if _, ok := RotateCW(g, src, p); ok {
		t.Error("rotation through the wall should be rejected")
	}
}
