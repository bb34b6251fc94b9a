package cubie

// Face identifies one of the 6 faces in move-generation order.
type Face int

const (
	FaceU Face = iota
	FaceR
	FaceF
	FaceD
	FaceL
	FaceB
)

// NumFaces is the number of faces.
const NumFaces = 6

func (f Face) String() string {
	return [NumFaces]string{"U", "R", "F", "D", "L", "B"}[f]
}

// BasicMoves holds the cubie-level clockwise quarter-turn for each face,
// indexed by Face. Half-turn and counter-clockwise variants are obtained
// by repeated composition (only ever needed at table-build time).
var BasicMoves = [NumFaces]Cube{
	FaceU: {
		CP: [NumCorners]Corner{UBR, URF, UFL, ULB, DFR, DLF, DBL, DRB},
		CO: [NumCorners]int8{0, 0, 0, 0, 0, 0, 0, 0},
		EP: [NumEdges]Edge{UB, UR, UF, UL, DR, DF, DL, DB, FR, FL, BL, BR},
		EO: [NumEdges]int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	FaceR: {
		CP: [NumCorners]Corner{DFR, UFL, ULB, URF, DRB, DLF, DBL, UBR},
		CO: [NumCorners]int8{2, 0, 0, 1, 1, 0, 0, 2},
		EP: [NumEdges]Edge{FR, UF, UL, UB, BR, DF, DL, DB, DR, FL, BL, UR},
		EO: [NumEdges]int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	FaceF: {
		CP: [NumCorners]Corner{UFL, DLF, ULB, UBR, URF, DFR, DBL, DRB},
		CO: [NumCorners]int8{1, 2, 0, 0, 2, 1, 0, 0},
		EP: [NumEdges]Edge{UR, FL, UL, UB, DR, FR, DL, DB, UF, DF, BL, BR},
		EO: [NumEdges]int8{0, 1, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0},
	},
	FaceD: {
		CP: [NumCorners]Corner{URF, UFL, ULB, UBR, DLF, DBL, DRB, DFR},
		CO: [NumCorners]int8{0, 0, 0, 0, 0, 0, 0, 0},
		EP: [NumEdges]Edge{UR, UF, UL, UB, DF, DL, DB, DR, FR, FL, BL, BR},
		EO: [NumEdges]int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	FaceL: {
		CP: [NumCorners]Corner{URF, ULB, DBL, UBR, DFR, UFL, DLF, DRB},
		CO: [NumCorners]int8{0, 1, 2, 0, 0, 2, 1, 0},
		EP: [NumEdges]Edge{UR, UF, BL, UB, DR, DF, FL, DB, FR, UL, DL, BR},
		EO: [NumEdges]int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	FaceB: {
		CP: [NumCorners]Corner{URF, UFL, UBR, DRB, DFR, DLF, ULB, DBL},
		CO: [NumCorners]int8{0, 0, 1, 2, 0, 0, 2, 1},
		EP: [NumEdges]Edge{UR, UF, UL, BR, DR, DF, DL, BL, FR, FL, UB, DB},
		EO: [NumEdges]int8{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 1, 1},
	},
}

// NumMoves is the size of the 18-move alphabet: 6 faces x 3 powers.
const NumMoves = 18

// MoveIndex packs a face and a power (1=CW, 2=half turn, 3=CCW) into
// the spec's 0..17 move index: 3*face + power-1.
func MoveIndex(face Face, power int) int {
	return 3*int(face) + power - 1
}

// MoveCube returns the cubie-level transform for move index mv by
// repeating the basic clockwise move `power` times. Used only when
// building the move tables: table lookups never call this at
// search time.
func MoveCube(mv int) Cube {
	face := Face(mv / 3)
	power := mv%3 + 1
	c := Solved()
	for k := 0; k < power; k++ {
		c.Multiply(BasicMoves[face])
	}
	return c
}
