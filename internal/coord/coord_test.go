package coord

import (
	"testing"

	"github.com/jrwhitlock/gocube-solve/internal/cubie"
)

func TestTwistRoundTrip(t *testing.T) {
	for _, x := range []int{0, 1, 2186, 1093, 17} {
		var c cubie.Cube
		SetTwist(&c, x)
		if got := Twist(c); got != x {
			t.Errorf("Twist(SetTwist(_, %d)) = %d, want %d", x, got, x)
		}
	}
}

func TestFlipRoundTrip(t *testing.T) {
	for _, x := range []int{0, 1, 2047, 1024, 99} {
		var c cubie.Cube
		SetFlip(&c, x)
		if got := Flip(c); got != x {
			t.Errorf("Flip(SetFlip(_, %d)) = %d, want %d", x, got, x)
		}
	}
}

func TestFRtoBRRoundTrip(t *testing.T) {
	for _, x := range []int{0, 1, 11879, 5940, 23} {
		var c cubie.Cube
		SetFRtoBR(&c, x)
		if got := FRtoBR(c); got != x {
			t.Errorf("FRtoBR(SetFRtoBR(_, %d)) = %d, want %d", x, got, x)
		}
	}
}

func TestURFtoDLFRoundTrip(t *testing.T) {
	for _, x := range []int{0, 1, 20159, 10080, 719} {
		var c cubie.Cube
		SetURFtoDLF(&c, x)
		if got := URFtoDLF(c); got != x {
			t.Errorf("URFtoDLF(SetURFtoDLF(_, %d)) = %d, want %d", x, got, x)
		}
	}
}

func TestURtoDFRoundTrip(t *testing.T) {
	for _, x := range []int{0, 1, 20159, 10080, 719} {
		var c cubie.Cube
		SetURtoDF(&c, x)
		if got := URtoDF(c); got != x {
			t.Errorf("URtoDF(SetURtoDF(_, %d)) = %d, want %d", x, got, x)
		}
	}
}

func TestSolvedCoordinatesAreZero(t *testing.T) {
	c := cubie.Solved()
	if Twist(c) != 0 {
		t.Errorf("Twist(solved) = %d, want 0", Twist(c))
	}
	if Flip(c) != 0 {
		t.Errorf("Flip(solved) = %d, want 0", Flip(c))
	}
	if Parity(c) != 0 {
		t.Errorf("Parity(solved) = %d, want 0", Parity(c))
	}
	if FRtoBR(c)/24 != 0 {
		t.Errorf("solved cube's slice coordinate should be 0, got %d", FRtoBR(c)/24)
	}
}

func TestMergeURtoDFAgreesWithDirect(t *testing.T) {
	c := cubie.Solved()
	c.Multiply(cubie.MoveCube(cubie.MoveIndex(cubie.FaceR, 2)))
	c.Multiply(cubie.MoveCube(cubie.MoveIndex(cubie.FaceU, 2)))

	want := URtoDF(c)
	got := MergeURtoDF(URtoUL(c), UBtoDF(c))
	if got != want {
		t.Errorf("MergeURtoDF(URtoUL(c), UBtoDF(c)) = %d, want %d", got, want)
	}
}

func TestMergeURtoDFDetectsCollision(t *testing.T) {
	// Two partial assignments that both claim the same slot must be
	// reported as irreconcilable, not silently merged.
	if got := MergeURtoDF(0, 0); got != -1 {
		t.Errorf("MergeURtoDF(0, 0) = %d, want -1 (colliding assignments)", got)
	}
}

func TestMoveChangesCoordinateConsistentlyWithMoveCube(t *testing.T) {
	// get_c(s*m) must equal get_c computed directly on the product state.
	start := cubie.Solved()
	start.Multiply(cubie.MoveCube(cubie.MoveIndex(cubie.FaceF, 1)))
	start.Multiply(cubie.MoveCube(cubie.MoveIndex(cubie.FaceR, 1)))
	for mv := 0; mv < cubie.NumMoves; mv++ {
		c := start
		c.Multiply(cubie.MoveCube(mv))

		direct := Twist(c)

		// Rebuild the start state from its twist coordinate alone.
		replay := cubie.Solved()
		SetTwist(&replay, Twist(start))
		replay.Multiply(cubie.MoveCube(mv))
		if got := Twist(replay); got != direct {
			t.Errorf("move %d: Twist of replayed product = %d, want %d", mv, got, direct)
		}
	}
}
