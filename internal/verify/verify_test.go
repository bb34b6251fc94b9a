package verify

import (
	"testing"

	"github.com/jrwhitlock/gocube-solve/internal/cubie"
	"github.com/jrwhitlock/gocube-solve/internal/facelet"
)

func TestSolutionAcceptsCorrectReplay(t *testing.T) {
	c := cubie.Solved()
	scrambleMove := cubie.MoveIndex(cubie.FaceR, 1)
	c.Multiply(cubie.MoveCube(scrambleMove))

	scramble := facelet.FromCubieCube(c)
	solution := []int{cubie.MoveIndex(cubie.FaceR, 3)} // R' undoes R

	if err := Solution(scramble, solution); err != nil {
		t.Errorf("Solution() returned %v, want nil", err)
	}
}

func TestSolutionRejectsWrongReplay(t *testing.T) {
	c := cubie.Solved()
	c.Multiply(cubie.MoveCube(cubie.MoveIndex(cubie.FaceR, 1)))

	scramble := facelet.FromCubieCube(c)
	wrongSolution := []int{cubie.MoveIndex(cubie.FaceU, 1)} // does not undo R

	if err := Solution(scramble, wrongSolution); err != ErrSolutionIncorrect {
		t.Errorf("Solution() = %v, want ErrSolutionIncorrect", err)
	}
}

func TestSolutionAcceptsEmptySolutionOnSolvedScramble(t *testing.T) {
	scramble := facelet.FromCubieCube(cubie.Solved())
	if err := Solution(scramble, nil); err != nil {
		t.Errorf("Solution() on an already-solved scramble with no moves = %v, want nil", err)
	}
}
