package search

import (
	"time"

	"github.com/jrwhitlock/gocube-solve/internal/coord"
	"github.com/jrwhitlock/gocube-solve/internal/cubie"
	"github.com/jrwhitlock/gocube-solve/internal/tables"
)

// tryPhase2 reseeds the phase-2 coordinates by replaying the accepted
// phase-1 prefix s.axis[0:n]/s.power[0:n] through the move tables
// (URtoDF is rebuilt by merging the replayed URtoUL and UBtoDF, since
// the start cube need not lie in H), then iteratively deepens depth2
// up to min(10, maxDepth-depth1).
// prevAxis is the last phase-1 move's face. Phase 2's first move is not
// restricted by it; instead a completion longer than depth1 whose first
// phase-2 move is redundant after prevAxis is rejected, so phase 1 goes
// on to find the shorter split.
func (s *solver) tryPhase2(n int, prevAxis cubie.Face) ([]int, bool) {
	urf := s.initURFtoDLF
	frToBR := s.initFRtoBR
	parity := s.initParity
	var start cubie.Cube
	coord.SetURtoDF(&start, s.initURtoDF)
	urToUL, ubToDF := coord.URtoUL(start), coord.UBtoDF(start)

	for i := 0; i < n; i++ {
		mv := cubie.MoveIndex(s.axis[i], s.power[i])
		urf = int(tables.URFtoDLF[urf][mv])
		frToBR = int(tables.FRtoBR[frToBR][mv])
		parity = int(tables.Parity[parity][mv])
		urToUL = int(tables.URtoUL[urToUL][mv])
		ubToDF = int(tables.UBtoDF[ubToDF][mv])
	}
	urToDF := coord.MergeURtoDF(urToUL, ubToDF)

	maxDepth2 := s.maxDepth - s.depth1
	if maxDepth2 > 10 {
		maxDepth2 = 10
	}
	if maxDepth2 < 0 {
		return nil, false
	}

	for depth2 := 0; depth2 <= maxDepth2; depth2++ {
		if moves, ok := s.searchPhase2(0, depth2, urf, urToDF, frToBR, parity, -1); ok {
			if n+len(moves) > s.depth1 && redundant(prevAxis, s.axis2[0]) {
				return nil, false
			}
			full := make([]int, 0, n+len(moves))
			for i := 0; i < n; i++ {
				full = append(full, cubie.MoveIndex(s.axis[i], s.power[i]))
			}
			full = append(full, moves...)
			return full, true
		}
		if s.timedOut {
			return nil, false
		}
	}
	return nil, false
}

// searchPhase2 extends the phase-2 prefix recorded in s.axis2/s.power2
// up to depth2, restricted to the 10 moves legal within H.
func (s *solver) searchPhase2(n, depth2, urf, urToDF, slice, parity int, prevAxis cubie.Face) ([]int, bool) {
	h2 := tables.H2(urf, urToDF, slice, parity)
	if h2 == 0 {
		moves := make([]int, n)
		for i := 0; i < n; i++ {
			moves[i] = cubie.MoveIndex(s.axis2[i], s.power2[i])
		}
		return moves, true
	}

	if n == depth2 {
		return nil, false
	}

	for _, face := range phase1Faces {
		if redundant(prevAxis, face) {
			continue
		}
		for _, power := range phase2PowersFor(face) {
			mv := cubie.MoveIndex(face, power)
			nURF := int(tables.URFtoDLF[urf][mv])
			nURtoDF := int(tables.URtoDF[urToDF][mv])
			nSlice := int(tables.FRtoBR[slice][mv])
			nParity := int(tables.Parity[parity][mv])

			if depth2-(n+1) < tables.H2(nURF, nURtoDF, nSlice, nParity) {
				continue
			}

			s.axis2[n] = face
			s.power2[n] = power
			if moves, ok := s.searchPhase2(n+1, depth2, nURF, nURtoDF, nSlice, nParity, face); ok {
				return moves, true
			}
			if s.timedOut {
				return nil, false
			}
		}
	}

	if time.Now().After(s.deadline) {
		s.timedOut = true
	}
	return nil, false
}
