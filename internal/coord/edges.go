package coord

import "github.com/jrwhitlock/gocube-solve/internal/cubie"

// NumURtoDF is the size of the phase-2 edge coordinate: C(8,6) * 6!,
// the six edges ranging over the 8 U/D slots, which holds inside H.
// URtoDF of a cube outside H can exceed this range, so search only
// indexes URtoDF tables with values merged from URtoUL and UBtoDF.
const NumURtoDF = 20160

// URtoDF tracks the 6 edges UR, UF, UL, UB, DR, DF among the 12 edge
// slots. It is valid only once a cube lies in phase 2's subgroup H;
// it replaces URtoUL/UBtoDF once the search enters phase 2.
func URtoDF(c cubie.Cube) int {
	a, x := 0, 0
	var arr [6]cubie.Edge

	for j := int(cubie.UR); j <= int(cubie.BR); j++ {
		e := c.EP[j]
		if e <= cubie.DF {
			a += Binomial(j, x+1)
			arr[x] = e
			x++
		}
	}

	b := 0
	for j := 5; j > 0; j-- {
		k := 0
		for int(arr[j]) != j {
			rotateLeftEdges(arr[:], 0, j)
			k++
		}
		b = (j+1)*b + k
	}
	return 720*a + b
}

// SetURtoDF writes a URtoDF coordinate into c.
func SetURtoDF(c *cubie.Cube, idx int) {
	edges := [6]cubie.Edge{cubie.UR, cubie.UF, cubie.UL, cubie.UB, cubie.DR, cubie.DF}
	others := [6]cubie.Edge{cubie.DL, cubie.DB, cubie.FR, cubie.FL, cubie.BL, cubie.BR}

	permIdx := idx % 720
	combIdx := idx / 720

	for i := range c.EP {
		c.EP[i] = cubie.BR
	}

	for j := 1; j < 6; j++ {
		k := permIdx % (j + 1)
		permIdx /= j + 1
		for ; k > 0; k-- {
			rotateRightEdges(edges[:], 0, j)
		}
	}

	x := 5
	for j := int(cubie.BR); j >= 0; j-- {
		if combIdx-Binomial(j, x+1) >= 0 {
			c.EP[j] = edges[x]
			combIdx -= Binomial(j, x+1)
			x--
		}
	}

	x = 0
	for j := int(cubie.UR); j <= int(cubie.BR); j++ {
		if c.EP[j] == cubie.BR {
			c.EP[j] = others[x]
			x++
		}
	}
}

// NumURtoUL is the size of the {UR,UF,UL} sub-coordinate: C(12,3) * 3!.
const NumURtoUL = 1320

// URtoUL tracks UR, UF, UL among the 12 edge slots. Used during
// phase-1-to-phase-2 handoff: merged with UBtoDF via MergeURtoDF to
// reconstruct the full URtoDF coordinate without rebuilding a cube.
func URtoUL(c cubie.Cube) int {
	a, x := 0, 0
	var arr [3]cubie.Edge

	for j := int(cubie.UR); j <= int(cubie.BR); j++ {
		e := c.EP[j]
		if e <= cubie.UL {
			a += Binomial(j, x+1)
			arr[x] = e
			x++
		}
	}

	b := 0
	for j := 2; j > 0; j-- {
		k := 0
		for int(arr[j]) != j {
			rotateLeftEdges(arr[:], 0, j)
			k++
		}
		b = (j+1)*b + k
	}
	return 6*a + b
}

// SetURtoUL writes a URtoUL coordinate into c, leaving every slot not
// among UR/UF/UL set to the sentinel cubie.BR.
func SetURtoUL(c *cubie.Cube, idx int) {
	edges := [3]cubie.Edge{cubie.UR, cubie.UF, cubie.UL}

	permIdx := idx % 6
	combIdx := idx / 6

	for i := range c.EP {
		c.EP[i] = cubie.BR
	}

	for j := 1; j < 3; j++ {
		k := permIdx % (j + 1)
		permIdx /= j + 1
		for ; k > 0; k-- {
			rotateRightEdges(edges[:], 0, j)
		}
	}

	x := 2
	for j := int(cubie.BR); j >= 0; j-- {
		if combIdx-Binomial(j, x+1) >= 0 {
			c.EP[j] = edges[x]
			combIdx -= Binomial(j, x+1)
			x--
		}
	}
}

// NumUBtoDF is the size of the {UB,DR,DF} sub-coordinate: C(12,3) * 3!.
const NumUBtoDF = 1320

// UBtoDF tracks UB, DR, DF among the 12 edge slots.
func UBtoDF(c cubie.Cube) int {
	a, x := 0, 0
	var arr [3]cubie.Edge

	for j := int(cubie.UR); j <= int(cubie.BR); j++ {
		e := c.EP[j]
		if cubie.UB <= e && e <= cubie.DF {
			a += Binomial(j, x+1)
			arr[x] = e
			x++
		}
	}

	b := 0
	for j := 2; j > 0; j-- {
		k := 0
		for int(arr[j]) != int(cubie.UB)+j {
			rotateLeftEdges(arr[:], 0, j)
			k++
		}
		b = (j+1)*b + k
	}
	return 6*a + b
}

// SetUBtoDF writes a UBtoDF coordinate into c, leaving every slot not
// among UB/DR/DF set to the sentinel cubie.BR.
func SetUBtoDF(c *cubie.Cube, idx int) {
	edges := [3]cubie.Edge{cubie.UB, cubie.DR, cubie.DF}

	permIdx := idx % 6
	combIdx := idx / 6

	for i := range c.EP {
		c.EP[i] = cubie.BR
	}

	for j := 1; j < 3; j++ {
		k := permIdx % (j + 1)
		permIdx /= j + 1
		for ; k > 0; k-- {
			rotateRightEdges(edges[:], 0, j)
		}
	}

	x := 2
	for j := int(cubie.BR); j >= 0; j-- {
		if combIdx-Binomial(j, x+1) >= 0 {
			c.EP[j] = edges[x]
			combIdx -= Binomial(j, x+1)
			x--
		}
	}
}

// MergeURtoDF combines a URtoUL coordinate and a UBtoDF coordinate,
// each built against a disjoint sentinel-filled cube, into the single
// URtoDF coordinate phase 2 searches on. It returns -1 if the two
// partial assignments collide (claim the same slot), which signals
// that idx1/idx2 cannot both hold in any one real cube.
func MergeURtoDF(idx1, idx2 int) int {
	var a, b cubie.Cube
	SetURtoUL(&a, idx1)
	SetUBtoDF(&b, idx2)

	for i := 0; i < 8; i++ {
		if a.EP[i] != cubie.BR {
			if b.EP[i] != cubie.BR {
				return -1
			}
			b.EP[i] = a.EP[i]
		}
	}
	return URtoDF(b)
}
