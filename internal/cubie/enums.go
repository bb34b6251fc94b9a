// Package cubie implements the cubie-level cube model: fixed piece
// enumerations, permutation/orientation state, composition, and the
// validity check that every parsed scramble must pass before search.
//
// The piece orderings and move definitions follow the conventions
// described at http://kociemba.org/cube.htm.
package cubie

// Corner identifies one of the 8 corner slots, in a fixed order.
type Corner int

const (
	URF Corner = iota
	UFL
	ULB
	UBR
	DFR
	DLF
	DBL
	DRB
)

// NumCorners is the number of corner slots.
const NumCorners = 8

func (c Corner) String() string {
	return [NumCorners]string{"URF", "UFL", "ULB", "UBR", "DFR", "DLF", "DBL", "DRB"}[c]
}

// Edge identifies one of the 12 edge slots, in a fixed order.
type Edge int

const (
	UR Edge = iota
	UF
	UL
	UB
	DR
	DF
	DL
	DB
	FR
	FL
	BL
	BR
)

// NumEdges is the number of edge slots.
const NumEdges = 12

func (e Edge) String() string {
	return [NumEdges]string{"UR", "UF", "UL", "UB", "DR", "DF", "DL", "DB", "FR", "FL", "BL", "BR"}[e]
}

// Color identifies a face color, reindexed by the sticker's center face.
type Color int

const (
	U Color = iota
	R
	F
	D
	L
	B
)

func (c Color) String() string {
	return [6]string{"U", "R", "F", "D", "L", "B"}[c]
}

// Facelet identifies one of the 54 sticker positions. Faces are ordered
// U, R, F, D, L, B; within a face, positions are numbered in reading
// order 0..8 (row-major), so facelet index = 9*face + row*3 + col.
type Facelet int

// NumFacelets is the number of stickers on the cube.
const NumFacelets = 54
