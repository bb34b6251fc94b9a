// Package verify replays a proposed solution against the scramble it
// was computed for and checks that it actually reaches the solved
// state. It exists because Solver.java's TestCorrectSolve once caught
// a translation bug that the coordinate search itself could not
// detect, so every solve applies this check by default.
package verify

import (
	"errors"

	cube "github.com/jrwhitlock/gocube-solve"
	"github.com/jrwhitlock/gocube-solve/internal/facelet"
)

// ErrSolutionIncorrect means the solution, replayed against the
// scramble, did not reach the solved state.
var ErrSolutionIncorrect = errors.New("verify: solution does not solve the scramble")

// Solution applies moveIndices (cubie.MoveIndex encoding) to a naive
// facelet model of scramble and reports whether the result is solved.
func Solution(scramble facelet.Cube, moveIndices []int) error {
	c := cube.FromFacelet(scramble)
	for _, mv := range moveIndices {
		c.ApplyMoveIndex(mv)
	}
	if !c.IsSolved() {
		return ErrSolutionIncorrect
	}
	return nil
}
