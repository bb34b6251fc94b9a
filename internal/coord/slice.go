package coord

import "github.com/jrwhitlock/gocube-solve/internal/cubie"

// NumFRtoBR is the size of the slice-edge coordinate: C(12,4) choices
// of which 4 slots hold {FR,FL,BL,BR} times 4! orderings among them.
const NumFRtoBR = 11880

// FRtoBR tracks the positions and relative order of the four slice
// edges FR, FL, BL, BR among all 12 edge slots.
func FRtoBR(c cubie.Cube) int {
	a, x := 0, 0
	var arr [4]cubie.Edge

	for j := int(cubie.BR); j >= int(cubie.UR); j-- {
		e := c.EP[j]
		if cubie.FR <= e && e <= cubie.BR {
			a += Binomial(11-j, x+1)
			arr[3-x] = e
			x++
		}
	}

	b := 0
	for j := 3; j > 0; j-- {
		k := 0
		for int(arr[j]) != j+8 {
			rotateLeftEdges(arr[:], 0, j)
			k++
		}
		b = (j+1)*b + k
	}
	return 24*a + b
}

// SetFRtoBR writes an FRtoBR coordinate into c. The remaining 8 slots
// receive UR, UF, UL, UB, DR, DF, DL, DB in slot order; callers that
// need a particular permutation of those edges set it separately.
func SetFRtoBR(c *cubie.Cube, idx int) {
	sliceEdges := [4]cubie.Edge{cubie.FR, cubie.FL, cubie.BL, cubie.BR}
	otherEdges := [8]cubie.Edge{cubie.UR, cubie.UF, cubie.UL, cubie.UB, cubie.DR, cubie.DF, cubie.DL, cubie.DB}

	permIdx := idx % 24
	combIdx := idx / 24

	for i := range c.EP {
		c.EP[i] = cubie.DB
	}

	for j := 1; j < 4; j++ {
		k := permIdx % (j + 1)
		permIdx /= j + 1
		for ; k > 0; k-- {
			rotateRightEdges(sliceEdges[:], 0, j)
		}
	}

	x := 3
	for j := int(cubie.UR); j <= int(cubie.BR); j++ {
		if combIdx-Binomial(11-j, x+1) >= 0 {
			c.EP[j] = sliceEdges[3-x]
			combIdx -= Binomial(11-j, x+1)
			x--
		}
	}

	x = 0
	for j := int(cubie.UR); j <= int(cubie.BR); j++ {
		if c.EP[j] == cubie.DB {
			c.EP[j] = otherEdges[x]
			x++
		}
	}
}
