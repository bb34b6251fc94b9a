package search

import (
	"errors"
	"testing"
	"time"

	"github.com/jrwhitlock/gocube-solve/internal/cubie"
)

func TestSolveSolvedCubeReturnsEmptySolution(t *testing.T) {
	moves, err := Solve(cubie.Solved(), 21, 10*time.Second)
	if err != nil {
		t.Fatalf("Solve(solved) returned error: %v", err)
	}
	if len(moves) != 0 {
		t.Errorf("Solve(solved) returned %d moves, want 0", len(moves))
	}
}

func TestSolveSingleMoveScramble(t *testing.T) {
	c := cubie.Solved()
	c.Multiply(cubie.MoveCube(cubie.MoveIndex(cubie.FaceR, 1)))

	moves, err := Solve(c, 21, 10*time.Second)
	if err != nil {
		t.Fatalf("Solve(R) returned error: %v", err)
	}
	if len(moves) != 1 {
		t.Fatalf("Solve(R) returned %d moves, want 1: %v", len(moves), moves)
	}

	result := c
	result.Multiply(cubie.MoveCube(moves[0]))
	if !result.IsSolved() {
		t.Errorf("applying returned solution %v to R-scrambled cube did not solve it", moves)
	}
}

func TestSolveHarderScramble(t *testing.T) {
	c := cubie.Solved()
	for _, mv := range []int{
		cubie.MoveIndex(cubie.FaceR, 1),
		cubie.MoveIndex(cubie.FaceU, 2),
		cubie.MoveIndex(cubie.FaceF, 3),
		cubie.MoveIndex(cubie.FaceL, 1),
		cubie.MoveIndex(cubie.FaceD, 1),
		cubie.MoveIndex(cubie.FaceB, 2),
	} {
		c.Multiply(cubie.MoveCube(mv))
	}

	moves, err := Solve(c, 21, 10*time.Second)
	if err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}

	result := c
	for _, mv := range moves {
		result.Multiply(cubie.MoveCube(mv))
	}
	if !result.IsSolved() {
		t.Errorf("applying returned solution %v did not solve the scramble", moves)
	}
}

func TestSolveRejectsDuplicateEdge(t *testing.T) {
	c := cubie.Solved()
	c.EP[1] = c.EP[0]

	_, err := Solve(c, 21, 10*time.Second)
	assertSolveErrorCode(t, err, ErrCodeDuplicateEdge)
}

func TestSolveRejectsDuplicateCorner(t *testing.T) {
	c := cubie.Solved()
	c.CP[1] = c.CP[0]

	_, err := Solve(c, 21, 10*time.Second)
	assertSolveErrorCode(t, err, ErrCodeDuplicateCorner)
}

func TestSolveRejectsEdgeParity(t *testing.T) {
	c := cubie.Solved()
	c.EO[0] = 1

	_, err := Solve(c, 21, 10*time.Second)
	assertSolveErrorCode(t, err, ErrCodeEdgeParity)
}

func TestSolveRejectsCornerTwist(t *testing.T) {
	c := cubie.Solved()
	c.CO[0] = 1

	_, err := Solve(c, 21, 10*time.Second)
	assertSolveErrorCode(t, err, ErrCodeCornerTwist)
}

func TestSolveRejectsPermutationParity(t *testing.T) {
	c := cubie.Solved()
	c.CP[0], c.CP[1] = c.CP[1], c.CP[0]

	_, err := Solve(c, 21, 10*time.Second)
	assertSolveErrorCode(t, err, ErrCodePermutationParity)
}

func TestSolveTimesOutImmediately(t *testing.T) {
	c := cubie.Solved()
	c.Multiply(cubie.MoveCube(cubie.MoveIndex(cubie.FaceR, 1)))
	c.Multiply(cubie.MoveCube(cubie.MoveIndex(cubie.FaceU, 1)))

	_, err := Solve(c, 21, 0)
	assertSolveErrorCode(t, err, ErrCodeTimeout)
}

func assertSolveErrorCode(t *testing.T, err error, want ErrorCode) {
	t.Helper()
	if err == nil {
		t.Fatal("Solve returned nil error, want a SolveError")
	}
	var se *SolveError
	if !errors.As(err, &se) {
		t.Fatalf("Solve returned %T, want *SolveError", err)
	}
	if se.Code != want {
		t.Errorf("Solve error code = %v, want %v", se.Code, want)
	}
}
