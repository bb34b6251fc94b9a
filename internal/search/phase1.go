package search

import (
	"time"

	"github.com/jrwhitlock/gocube-solve/internal/cubie"
	"github.com/jrwhitlock/gocube-solve/internal/tables"
)

// searchPhase1 extends the phase-1 prefix recorded in s.axis/s.power
// up to depth1, trying a phase-2 completion from every node whose
// heuristic reaches 0 within 5 plies of the bound. prevAxis is the
// face of the move that led to this node, or -1 at the root.
func (s *solver) searchPhase1(n, depth1, twist, flip, slicePos int, prevAxis cubie.Face) ([]int, bool) {
	h1 := tables.H1(twist, flip, slicePos)

	if h1 == 0 && n >= depth1-5 {
		if moves, ok := s.tryPhase2(n, prevAxis); ok {
			return moves, true
		}
		if s.timedOut {
			return nil, false
		}
	}

	if n == depth1 {
		return nil, false
	}

	for _, face := range phase1Faces {
		if redundant(prevAxis, face) {
			continue
		}
		for power := 1; power <= 3; power++ {
			mv := cubie.MoveIndex(face, power)
			nTwist := int(tables.Twist[twist][mv])
			nFlip := int(tables.Flip[flip][mv])
			nFRtoBR := int(tables.FRtoBR[slicePos*24][mv])
			nSlicePos := nFRtoBR / 24

			if depth1-(n+1) < tables.H1(nTwist, nFlip, nSlicePos) {
				continue
			}

			s.axis[n] = face
			s.power[n] = power
			if moves, ok := s.searchPhase1(n+1, depth1, nTwist, nFlip, nSlicePos, face); ok {
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
