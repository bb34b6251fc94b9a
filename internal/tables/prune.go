package tables

import (
	"sync"

	"github.com/jrwhitlock/gocube-solve/internal/coord"
	"github.com/jrwhitlock/gocube-solve/internal/cubie"
)

// NumSlicePos is the position-only slice coordinate used by the
// phase-1 pruning tables: FRtoBR ÷ 24, ignoring the order of the 4
// slice edges among themselves.
const NumSlicePos = coord.NumFRtoBR / 24

// sentinel marks a not-yet-visited nibble during BFS construction. The
// diameter of both phase graphs is well under 15, so no real distance
// can collide with it.
const sentinel = 15

// nibbleTable is a 4-bit-per-entry packed distance table: two entries
// per byte, low nibble first.
type nibbleTable []byte

func newNibbleTable(n int) nibbleTable {
	t := make(nibbleTable, (n+1)/2)
	for i := range t {
		t[i] = 0xFF
	}
	return t
}

func (t nibbleTable) get(i int) int {
	b := t[i/2]
	if i%2 == 0 {
		return int(b & 0x0F)
	}
	return int(b >> 4)
}

func (t nibbleTable) set(i, v int) {
	idx := i / 2
	if i%2 == 0 {
		t[idx] = (t[idx] &^ 0x0F) | byte(v)
	} else {
		t[idx] = (t[idx] &^ 0xF0) | byte(v<<4)
	}
}

// SliceTwistPrune and SliceFlipPrune are phase-1 heuristics indexed by
// twist*NumSlicePos+slice and flip*NumSlicePos+slice respectively.
var (
	SliceTwistPrune nibbleTable
	SliceFlipPrune  nibbleTable
)

// NumSliceSub24 is the within-H slice coordinate used by the phase-2
// pruning tables: once the search has entered H the slice position is
// fixed at 0, so only the order of the 4 slice edges (0..23) varies.
const NumSliceSub24 = 24

// SliceURFtoDLFParityPrune and SliceURtoDFParityPrune are phase-2
// heuristics indexed by (corner*NumSliceSub24+slice)*2+parity, where
// slice is the raw FRtoBR coordinate (always < 24 once inside H).
var (
	SliceURFtoDLFParityPrune nibbleTable
	SliceURtoDFParityPrune   nibbleTable
)

var pruneTablesOnce sync.Once

// phase2Moves lists the 10 moves legal in phase 2: U/D any power,
// R/F/L/B only power 2 (half turns), matching cubie.MoveIndex(face,2)
// for the side faces plus all three powers for U and D.
var phase2Moves = buildPhase2Moves()

func buildPhase2Moves() []int {
	var moves []int
	for face := cubie.Face(0); face < cubie.NumFaces; face++ {
		if face == cubie.FaceU || face == cubie.FaceD {
			for p := 1; p <= 3; p++ {
				moves = append(moves, cubie.MoveIndex(face, p))
			}
		} else {
			moves = append(moves, cubie.MoveIndex(face, 2))
		}
	}
	return moves
}

func buildPruneTables() {
	initMoveTables()

	SliceTwistPrune = buildSliceOrientPrune(NumSlicePos*coord.NumTwist, coord.NumTwist, Twist[:])
	SliceFlipPrune = buildSliceOrientPrune(NumSlicePos*coord.NumFlip, coord.NumFlip, Flip[:])
	SliceURFtoDLFParityPrune = buildPhase2Prune(coord.NumURFtoDLF, URFtoDLF[:])
	SliceURtoDFParityPrune = buildPhase2Prune(coord.NumURtoDF, URtoDF[:])
}

// buildSliceOrientPrune builds one of the two phase-1 tables: indexed
// by orient*NumSlicePos+slice, using FRtoBR's move table at
// slice*24 divided back down to the position-only coordinate.
func buildSliceOrientPrune(size, orientSize int, orientMove [][cubie.NumMoves]uint16) nibbleTable {
	t := newNibbleTable(size)
	t.set(0, 0)
	filled := 1

	for d := 0; filled < size; d++ {
		for slice := 0; slice < NumSlicePos; slice++ {
			for orient := 0; orient < orientSize; orient++ {
				idx := orient*NumSlicePos + slice
				if t.get(idx) != d {
					continue
				}
				for m := 0; m < cubie.NumMoves; m++ {
					nOrient := int(orientMove[orient][m])
					nSlice := int(FRtoBR[slice*24][m]) / 24
					nIdx := nOrient*NumSlicePos + nSlice
					if t.get(nIdx) == sentinel {
						t.set(nIdx, d+1)
						filled++
					}
				}
			}
		}
	}
	return t
}

// buildPhase2Prune builds one of the two phase-2 tables, indexed by
// (corner*NumSliceSub24+slice)*2+parity, restricted to the 10 moves of
// H. slice is the raw FRtoBR coordinate: H's generators never move a
// slice edge out of the slice, so it never leaves the 0..23 range.
func buildPhase2Prune(cornerSize int, cornerMove [][cubie.NumMoves]uint16) nibbleTable {
	size := cornerSize * NumSliceSub24 * 2
	t := newNibbleTable(size)
	t.set(0, 0)
	filled := 1

	for d := 0; filled < size; d++ {
		for corner := 0; corner < cornerSize; corner++ {
			for slice := 0; slice < NumSliceSub24; slice++ {
				for parity := 0; parity < 2; parity++ {
					idx := (corner*NumSliceSub24+slice)*2 + parity
					if t.get(idx) != d {
						continue
					}
					for _, m := range phase2Moves {
						nCorner := int(cornerMove[corner][m])
						nSlice := int(FRtoBR[slice][m])
						nParity := int(Parity[parity][m])
						nIdx := (nCorner*NumSliceSub24+nSlice)*2 + nParity
						if t.get(nIdx) == sentinel {
							t.set(nIdx, d+1)
							filled++
						}
					}
				}
			}
		}
	}
	return t
}

// initPruneTables triggers pruning table construction exactly once.
func initPruneTables() {
	pruneTablesOnce.Do(buildPruneTables)
}
