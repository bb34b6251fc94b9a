package facelet

import (
	"testing"

	"github.com/jrwhitlock/gocube-solve/internal/cubie"
)

// solvedLines is a 9-line sticker net for a solved cube, using the
// orange-up/white-front physical colour scheme that colourMap expects.
var solvedLines = [9]string{
	"   OOO",
	"   OOO",
	"   OOO",
	"GGGWWWBBBYYY",
	"GGGWWWBBBYYY",
	"GGGWWWBBBYYY",
	"   RRR",
	"   RRR",
	"   RRR",
}

func TestParseSolvedLayout(t *testing.T) {
	fc, err := Parse(solvedLines)
	if err != nil {
		t.Fatalf("Parse(solved) returned error: %v", err)
	}

	c, err := fc.ToCubieCube()
	if err != nil {
		t.Fatalf("ToCubieCube() returned error: %v", err)
	}
	if !c.IsSolved() {
		t.Error("solved sticker layout should reduce to a solved cubie.Cube")
	}
}

func TestParseInvalidColourLetter(t *testing.T) {
	lines := solvedLines
	lines[0] = "   XOO"
	if _, err := Parse(lines); err != ErrInvalidColour {
		t.Errorf("Parse with unknown colour letter = %v, want ErrInvalidColour", err)
	}
}

func TestParseLineTooShort(t *testing.T) {
	lines := solvedLines
	lines[0] = "  "
	if _, err := Parse(lines); err != ErrBadLayout {
		t.Errorf("Parse with truncated line = %v, want ErrBadLayout", err)
	}
}

func TestToCubieCubeRejectsGarbageLayout(t *testing.T) {
	var fc Cube
	// Every facelet the same colour can't correspond to any corner or
	// edge entry in the colour tables.
	for i := range fc.Colours {
		fc.Colours[i] = cubie.U
	}
	if _, err := fc.ToCubieCube(); err != ErrMalformedFacelets {
		t.Errorf("ToCubieCube() on an all-one-colour layout = %v, want ErrMalformedFacelets", err)
	}
}

func TestFromCubieCubeRoundTripSolved(t *testing.T) {
	c := cubie.Solved()
	fc := FromCubieCube(c)
	back, err := fc.ToCubieCube()
	if err != nil {
		t.Fatalf("ToCubieCube() returned error: %v", err)
	}
	if back != c {
		t.Error("FromCubieCube then ToCubieCube should round-trip the solved cube")
	}
}

func TestFromCubieCubeRoundTripScrambled(t *testing.T) {
	c := cubie.Solved()
	for _, mv := range []int{
		cubie.MoveIndex(cubie.FaceR, 1),
		cubie.MoveIndex(cubie.FaceU, 2),
		cubie.MoveIndex(cubie.FaceF, 3),
		cubie.MoveIndex(cubie.FaceL, 1),
	} {
		c.Multiply(cubie.MoveCube(mv))
	}

	fc := FromCubieCube(c)
	back, err := fc.ToCubieCube()
	if err != nil {
		t.Fatalf("ToCubieCube() returned error: %v", err)
	}
	if back != c {
		t.Error("FromCubieCube then ToCubieCube should round-trip a scrambled cube")
	}
}
