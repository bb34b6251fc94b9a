// Package tables builds and holds the move and pruning tables the
// two-phase search runs against: for every independent coordinate, the
// effect of each of the 18 moves, and four BFS-built admissible
// distance tables. Construction happens once, lazily, behind sync.Once
// gates, following spec.md §9's "process-wide immutable globals"
// guidance; nothing here is ever written to after Init returns.
package tables

import (
	"sync"

	"github.com/jrwhitlock/gocube-solve/internal/coord"
	"github.com/jrwhitlock/gocube-solve/internal/cubie"
)

// Twist, Flip, Parity, FRtoBR, URFtoDLF, URtoDF, URtoUL, UBtoDF hold
// move_C[c][m]: the coordinate reached by applying move m to any
// cubie state whose C-coordinate is c.
var (
	Twist    [coord.NumTwist][cubie.NumMoves]uint16
	Flip     [coord.NumFlip][cubie.NumMoves]uint16
	Parity   [2][cubie.NumMoves]uint8
	FRtoBR   [coord.NumFRtoBR][cubie.NumMoves]uint16
	URFtoDLF [coord.NumURFtoDLF][cubie.NumMoves]uint16
	URtoDF   [coord.NumURtoDF][cubie.NumMoves]uint16
	URtoUL   [coord.NumURtoUL][cubie.NumMoves]uint16
	UBtoDF   [coord.NumUBtoDF][cubie.NumMoves]uint16
)

var moveTablesOnce sync.Once

func buildMoveTables() {
	moveCubes := [cubie.NumMoves]cubie.Cube{}
	for m := 0; m < cubie.NumMoves; m++ {
		moveCubes[m] = cubie.MoveCube(m)
	}

	for t := 0; t < coord.NumTwist; t++ {
		var c cubie.Cube
		coord.SetTwist(&c, t)
		for m := 0; m < cubie.NumMoves; m++ {
			n := c
			n.MultiplyCorners(moveCubes[m])
			Twist[t][m] = uint16(coord.Twist(n))
		}
	}

	for f := 0; f < coord.NumFlip; f++ {
		var c cubie.Cube
		coord.SetFlip(&c, f)
		for m := 0; m < cubie.NumMoves; m++ {
			n := c
			n.MultiplyEdges(moveCubes[m])
			Flip[f][m] = uint16(coord.Flip(n))
		}
	}

	// Every quarter turn flips parity; every half turn preserves it.
	for p := 0; p < 2; p++ {
		for m := 0; m < cubie.NumMoves; m++ {
			if m%3 == 1 {
				Parity[p][m] = uint8(p)
			} else {
				Parity[p][m] = uint8(1 - p)
			}
		}
	}

	for s := 0; s < coord.NumFRtoBR; s++ {
		var c cubie.Cube
		coord.SetFRtoBR(&c, s)
		for m := 0; m < cubie.NumMoves; m++ {
			n := c
			n.MultiplyEdges(moveCubes[m])
			FRtoBR[s][m] = uint16(coord.FRtoBR(n))
		}
	}

	for x := 0; x < coord.NumURFtoDLF; x++ {
		var c cubie.Cube
		coord.SetURFtoDLF(&c, x)
		for m := 0; m < cubie.NumMoves; m++ {
			n := c
			n.MultiplyCorners(moveCubes[m])
			URFtoDLF[x][m] = uint16(coord.URFtoDLF(n))
		}
	}

	for x := 0; x < coord.NumURtoDF; x++ {
		var c cubie.Cube
		coord.SetURtoDF(&c, x)
		for m := 0; m < cubie.NumMoves; m++ {
			n := c
			n.MultiplyEdges(moveCubes[m])
			URtoDF[x][m] = uint16(coord.URtoDF(n))
		}
	}

	for x := 0; x < coord.NumURtoUL; x++ {
		var c cubie.Cube
		coord.SetURtoUL(&c, x)
		for m := 0; m < cubie.NumMoves; m++ {
			n := c
			n.MultiplyEdges(moveCubes[m])
			URtoUL[x][m] = uint16(coord.URtoUL(n))
		}
	}

	for x := 0; x < coord.NumUBtoDF; x++ {
		var c cubie.Cube
		coord.SetUBtoDF(&c, x)
		for m := 0; m < cubie.NumMoves; m++ {
			n := c
			n.MultiplyEdges(moveCubes[m])
			UBtoDF[x][m] = uint16(coord.UBtoDF(n))
		}
	}
}

// initMoveTables triggers move table construction exactly once, even
// if called concurrently from multiple first-observers.
func initMoveTables() {
	moveTablesOnce.Do(buildMoveTables)
}
