// Package facelet converts between the 54-sticker surface
// representation of a cube and the internal/cubie piece model, per
// the corner/edge facelet tables described at http://kociemba.org/cube.htm.
package facelet

import "github.com/jrwhitlock/gocube-solve/internal/cubie"

// Named facelet indices, one per sticker, following cubie.Facelet's
// U,R,F,D,L,B face order and row-major numbering within a face.
const (
	U1 cubie.Facelet = iota
	U2
	U3
	U4
	U5
	U6
	U7
	U8
	U9
	R1
	R2
	R3
	R4
	R5
	R6
	R7
	R8
	R9
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	D1
	D2
	D3
	D4
	D5
	D6
	D7
	D8
	D9
	L1
	L2
	L3
	L4
	L5
	L6
	L7
	L8
	L9
	B1
	B2
	B3
	B4
	B5
	B6
	B7
	B8
	B9
)

// cornerFacelet[c] lists the 3 sticker positions of corner c, in a
// fixed clockwise order starting from the sticker on the U or D face.
var cornerFacelet = [cubie.NumCorners][3]cubie.Facelet{
	{U9, R1, F3}, {U7, F1, L3}, {U1, L1, B3}, {U3, B1, R3},
	{D3, F9, R7}, {D1, L9, F7}, {D7, B9, L7}, {D9, R9, B7},
}

// edgeFacelet[e] lists the 2 sticker positions of edge e.
var edgeFacelet = [cubie.NumEdges][2]cubie.Facelet{
	{U6, R2}, {U8, F2}, {U4, L2}, {U2, B2}, {D6, R8}, {D2, F8},
	{D4, L8}, {D8, B8}, {F6, R4}, {F4, L6}, {B6, L4}, {B4, R6},
}

// cornerColour[c] lists the colours corner c shows, in the same
// clockwise order as cornerFacelet.
var cornerColour = [cubie.NumCorners][3]cubie.Color{
	{cubie.U, cubie.R, cubie.F}, {cubie.U, cubie.F, cubie.L}, {cubie.U, cubie.L, cubie.B}, {cubie.U, cubie.B, cubie.R},
	{cubie.D, cubie.F, cubie.R}, {cubie.D, cubie.L, cubie.F}, {cubie.D, cubie.B, cubie.L}, {cubie.D, cubie.R, cubie.B},
}

// edgeColour[e] lists the colours edge e shows.
var edgeColour = [cubie.NumEdges][2]cubie.Color{
	{cubie.U, cubie.R}, {cubie.U, cubie.F}, {cubie.U, cubie.L}, {cubie.U, cubie.B}, {cubie.D, cubie.R}, {cubie.D, cubie.F},
	{cubie.D, cubie.L}, {cubie.D, cubie.B}, {cubie.F, cubie.R}, {cubie.F, cubie.L}, {cubie.B, cubie.L}, {cubie.B, cubie.R},
}
