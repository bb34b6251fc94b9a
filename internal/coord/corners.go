package coord

import "github.com/jrwhitlock/gocube-solve/internal/cubie"

// NumURFtoDLF is the size of the 6-corner coordinate: C(8,6) * 6!.
const NumURFtoDLF = 20160

// URFtoDLF tracks the positions and relative order of the 6 corners
// URF, UFL, ULB, UBR, DFR, DLF among the 8 corner slots. The remaining
// two corners (DBL, DRB) are pinned by the other coordinates' target
// subgroup membership and are not tracked here.
func URFtoDLF(c cubie.Cube) int {
	a, x := 0, 0
	var arr [6]cubie.Corner

	for j := int(cubie.URF); j <= int(cubie.DRB); j++ {
		cp := c.CP[j]
		if cp <= cubie.DLF {
			a += Binomial(j, x+1)
			arr[x] = cp
			x++
		}
	}

	b := 0
	for j := 5; j > 0; j-- {
		k := 0
		for int(arr[j]) != j {
			rotateLeftCorners(arr[:], 0, j)
			k++
		}
		b = (j+1)*b + k
	}
	return 720*a + b
}

// SetURFtoDLF writes a URFtoDLF coordinate into c.
func SetURFtoDLF(c *cubie.Cube, idx int) {
	corners := [6]cubie.Corner{cubie.URF, cubie.UFL, cubie.ULB, cubie.UBR, cubie.DFR, cubie.DLF}
	others := [2]cubie.Corner{cubie.DBL, cubie.DRB}

	permIdx := idx % 720
	combIdx := idx / 720

	for i := range c.CP {
		c.CP[i] = cubie.DRB
	}

	for j := 1; j < 6; j++ {
		k := permIdx % (j + 1)
		permIdx /= j + 1
		for ; k > 0; k-- {
			rotateRightCorners(corners[:], 0, j)
		}
	}

	x := 5
	for j := int(cubie.DRB); j >= 0; j-- {
		if combIdx-Binomial(j, x+1) >= 0 {
			c.CP[j] = corners[x]
			combIdx -= Binomial(j, x+1)
			x--
		}
	}

	x = 0
	for j := int(cubie.URF); j <= int(cubie.DRB); j++ {
		if c.CP[j] == cubie.DRB {
			c.CP[j] = others[x]
			x++
		}
	}
}
