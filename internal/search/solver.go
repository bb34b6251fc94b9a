// Package search implements the two-phase IDA* engine: a phase-1
// iterative-deepening search into the subgroup H = <U,D,R²,L²,F²,B²>
// followed by a phase-2 search to the identity within H, per
// http://kociemba.org/cube.htm.
package search

import (
	"time"

	"github.com/jrwhitlock/gocube-solve/internal/coord"
	"github.com/jrwhitlock/gocube-solve/internal/cubie"
	"github.com/jrwhitlock/gocube-solve/internal/tables"
)

// MaxStackDepth bounds the search stack. Phase-1's lookahead trigger
// (h1 reaching 0 up to 5 plies before depth1 is exhausted) can briefly
// push the live path a few moves past the eventual solution length, so
// this must exceed any maxDepth the caller accepts by a comfortable
// margin.
const MaxStackDepth = 40

// ErrorCode is the numeric "Error N" tag from spec.md §6/§7.
type ErrorCode int

const (
	ErrCodeDuplicateEdge     ErrorCode = 2
	ErrCodeEdgeParity        ErrorCode = 3
	ErrCodeDuplicateCorner   ErrorCode = 4
	ErrCodeCornerTwist       ErrorCode = 5
	ErrCodePermutationParity ErrorCode = 6
	ErrCodeMaxDepthExceeded  ErrorCode = 7
	ErrCodeTimeout           ErrorCode = 8
)

// SolveError reports why Solve could not produce a move sequence.
type SolveError struct {
	Code ErrorCode
}

func (e *SolveError) Error() string {
	switch e.Code {
	case ErrCodeDuplicateEdge:
		return "duplicate or missing edge"
	case ErrCodeEdgeParity:
		return "edge orientation parity violated"
	case ErrCodeDuplicateCorner:
		return "duplicate or missing corner"
	case ErrCodeCornerTwist:
		return "corner twist parity violated"
	case ErrCodePermutationParity:
		return "permutation parity mismatch"
	case ErrCodeMaxDepthExceeded:
		return "no solution within max depth"
	case ErrCodeTimeout:
		return "search timed out"
	default:
		return "unknown solve error"
	}
}

// verifyErrorCode maps cubie.Cube.Verify's negative tags to ErrorCode.
func verifyErrorCode(v int) ErrorCode {
	return ErrorCode(-v)
}

// solver owns one search's mutable state: the manual move stack and
// the coordinate trace needed to reseed phase 2 without rebuilding a
// cubie.Cube from scratch. Each call to Solve gets its own solver, so
// concurrent solves never share mutable state.
type solver struct {
	deadline time.Time
	timedOut bool

	// Phase-1 move stack: axis[n]/power[n] hold the move taken to reach
	// depth n+1 from depth n. The coordinate trace itself is threaded
	// through the recursive calls as parameters rather than stored
	// here, since each depth's coordinates are fully determined by its
	// parent's coordinates plus the move — no backtracking ever needs
	// to re-read an ancestor's stored value.
	axis  [MaxStackDepth]cubie.Face
	power [MaxStackDepth]int

	// Phase-2 move stack, valid only once a phase-1 prefix has been
	// accepted and phase 2 has started searching.
	axis2  [MaxStackDepth]cubie.Face
	power2 [MaxStackDepth]int

	// Initial phase-2 coordinates of the input cube, used to reseed
	// phase 2 by replaying the accepted phase-1 prefix.
	initURFtoDLF int
	initFRtoBR   int
	initParity   int
	initURtoDF   int

	depth1 int
	maxDepth int
}

// Solve searches for a move sequence that returns c to the solved
// state, within maxDepth face turns and timeout wall-clock time. It
// returns the move indices of the solution (cubie.MoveIndex encoding)
// in order, or a *SolveError. maxDepth bounds the number of move
// indices, where a half turn or a counter-clockwise turn counts as one;
// the quarter-turn count of the solution can exceed maxDepth.
func Solve(c cubie.Cube, maxDepth int, timeout time.Duration) ([]int, error) {
	tables.Init()

	if v := c.Verify(); v != 0 {
		return nil, &SolveError{Code: verifyErrorCode(v)}
	}

	s := &solver{
		deadline: time.Now().Add(timeout),
		maxDepth: maxDepth,
	}
	s.initURFtoDLF = coord.URFtoDLF(c)
	s.initFRtoBR = coord.FRtoBR(c)
	s.initParity = coord.Parity(c)
	s.initURtoDF = coord.URtoDF(c)

	twist0 := coord.Twist(c)
	flip0 := coord.Flip(c)
	slice0 := s.initFRtoBR / 24

	for depth1 := 0; depth1 <= maxDepth; depth1++ {
		s.depth1 = depth1
		if moves, ok := s.searchPhase1(0, depth1, twist0, flip0, slice0, -1); ok {
			return moves, nil
		}
		if s.timedOut {
			return nil, &SolveError{Code: ErrCodeTimeout}
		}
	}
	return nil, &SolveError{Code: ErrCodeMaxDepthExceeded}
}
