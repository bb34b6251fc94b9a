package tables

// Init blocks until the move and pruning tables are fully built. The
// two-phase search calls it once at startup (or relies on an earlier
// caller having done so); concurrent first-observers all block on the
// same sync.Once and see a fully-initialized table set.
func Init() {
	initPruneTables()
}

// H1 returns the phase-1 admissible heuristic for a given
// (twist, flip, slicePos) tuple: the larger of the two orientation
// pruning tables' lower bounds.
func H1(twist, flip, slicePos int) int {
	fromTwist := SliceTwistPrune.get(twist*NumSlicePos + slicePos)
	fromFlip := SliceFlipPrune.get(flip*NumSlicePos + slicePos)
	if fromTwist > fromFlip {
		return fromTwist
	}
	return fromFlip
}

// H2 returns the phase-2 admissible heuristic for a given
// (urfToDLF, urToDF, slice, parity) tuple, where slice is the raw
// FRtoBR coordinate (0..23) and both pruning tables share it.
func H2(urfToDLF, urToDF, slice, parity int) int {
	fromCorner := SliceURFtoDLFParityPrune.get((urfToDLF*NumSliceSub24+slice)*2 + parity)
	fromEdge := SliceURtoDFParityPrune.get((urToDF*NumSliceSub24+slice)*2 + parity)
	if fromCorner > fromEdge {
		return fromCorner
	}
	return fromEdge
}

// PermittedPhase2Moves returns the 10 moves legal during phase 2: all
// three powers of U and D, only the half turn of R, F, L, B.
func PermittedPhase2Moves() []int {
	return phase2Moves
}
