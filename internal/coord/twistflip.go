package coord

import "github.com/jrwhitlock/gocube-solve/internal/cubie"

// NumTwist is the size of the corner-orientation coordinate (3^7).
const NumTwist = 2187

// NumFlip is the size of the edge-orientation coordinate (2^11).
const NumFlip = 2048

// Twist packs the 7 independent corner orientations into 0..2186; the
// 8th (DRB) is determined by the sum-to-0-mod-3 invariant and is not
// stored separately.
func Twist(c cubie.Cube) int {
	twist := 0
	for i := cubie.URF; i < cubie.DRB; i++ {
		twist = 3*twist + int(c.CO[i])
	}
	return twist
}

// SetTwist writes a Twist coordinate into c, filling CO[0..6] from the
// base-3 digits of twist and CO[DRB] from the parity invariant.
func SetTwist(c *cubie.Cube, twist int) {
	sum := 0
	for i := int(cubie.DRB) - 1; i >= int(cubie.URF); i-- {
		d := int8(twist % 3)
		c.CO[i] = d
		sum += int(d)
		twist /= 3
	}
	c.CO[cubie.DRB] = int8((3 - sum%3) % 3)
}

// Flip packs the 11 independent edge orientations into 0..2047; the
// 12th (BR) is determined by the sum-to-0-mod-2 invariant.
func Flip(c cubie.Cube) int {
	flip := 0
	for i := cubie.UR; i < cubie.BR; i++ {
		flip = 2*flip + int(c.EO[i])
	}
	return flip
}

// SetFlip writes a Flip coordinate into c.
func SetFlip(c *cubie.Cube, flip int) {
	sum := 0
	for i := int(cubie.BR) - 1; i >= int(cubie.UR); i-- {
		d := int8(flip % 2)
		c.EO[i] = d
		sum += int(d)
		flip /= 2
	}
	c.EO[cubie.BR] = int8((2 - sum%2) % 2)
}

// Parity is the shared permutation-parity coordinate: 0 or 1. The
// search replays it over the phase-1 prefix when phase 2 starts and
// tracks it alongside FRtoBR during phase 2; a legal cube always has
// Parity(c) == c.CornerParity() == c.EdgeParity().
func Parity(c cubie.Cube) int {
	return c.CornerParity()
}
