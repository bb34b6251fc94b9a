package cube

import "testing"

func TestNewCubeIsSolved(t *testing.T) {
	c := NewCube()
	if !c.IsSolved() {
		t.Error("NewCube() should be solved")
	}
}

func TestApplyMoveBreaksSolved(t *testing.T) {
	c := NewCube()
	c.ApplyMove(R)
	if c.IsSolved() {
		t.Error("a single move should break solved state")
	}
}

func TestFourQuarterTurnsReturnToSolved(t *testing.T) {
	for _, face := range []CubeFace{CubeFaceU, CubeFaceD, CubeFaceF, CubeFaceB, CubeFaceR, CubeFaceL} {
		c := NewCube()
		for i := 0; i < 4; i++ {
			c.MoveFace(face, 1)
		}
		if !c.IsSolved() {
			t.Errorf("four clockwise turns of %v should return to solved", face)
		}
	}
}

func TestMoveThenInverseReturnsToSolved(t *testing.T) {
	for _, m := range []Move{R, U, F, D, L, B} {
		c := NewCube()
		c.ApplyMove(m)
		c.ApplyMove(m.Inverse())
		if !c.IsSolved() {
			t.Errorf("%v followed by its inverse should return to solved", m)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	c := NewCube()
	clone := c.Clone()
	clone.ApplyMove(R)
	if !c.IsSolved() {
		t.Error("mutating a clone should not affect the original")
	}
	if clone.IsSolved() {
		t.Error("clone should have been scrambled by the move")
	}
}

func TestApplyMoveIndexAgreesWithApplyMove(t *testing.T) {
	for _, m := range []Move{R, RPrime, R2, U, UPrime, U2, F, FPrime, F2, D, DPrime, D2, L, LPrime, L2, B, BPrime, B2} {
		viaMove := NewCube()
		viaMove.ApplyMove(m)

		viaIndex := NewCube()
		viaIndex.ApplyMoveIndex(cubieMoveIndex(m.Face, m.Turn))

		if *viaMove != *viaIndex {
			t.Errorf("ApplyMoveIndex disagreed with ApplyMove for %v", m)
		}
	}
}

func TestToFaceletFromFaceletRoundTrip(t *testing.T) {
	c := NewCube()
	c.ApplyMoves([]Move{R, U, FPrime, L2, D})

	fc := c.ToFacelet()
	back := FromFacelet(fc)

	if *back != *c {
		t.Error("ToFacelet then FromFacelet should round-trip a scrambled cube")
	}
}

func TestToFaceletSolvedMatchesNewCube(t *testing.T) {
	c := NewCube()
	back := FromFacelet(c.ToFacelet())
	if !back.IsSolved() {
		t.Error("round-tripping a solved cube through facelet conversion should stay solved")
	}
}
