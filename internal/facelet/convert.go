package facelet

import "github.com/jrwhitlock/gocube-solve/internal/cubie"

// ToCubieCube reduces fc's stickers to a cubie.Cube by matching each
// corner's and edge's visible colours against the cornerColour and
// edgeColour tables. It returns ErrMalformedFacelets if any position's
// colours match no table entry, which can only happen for a sticker
// layout that was never a legal scramble of a physical cube.
func (fc Cube) ToCubieCube() (cubie.Cube, error) {
	var c cubie.Cube

	for i := cubie.Corner(0); i < cubie.NumCorners; i++ {
		orientation := 0
		for ; orientation < 3; orientation++ {
			col := fc.Colours[cornerFacelet[i][orientation]]
			if col == cubie.U || col == cubie.D {
				break
			}
		}
		if orientation == 3 {
			return cubie.Cube{}, ErrMalformedFacelets
		}

		col1 := fc.Colours[cornerFacelet[i][(orientation+1)%3]]
		col2 := fc.Colours[cornerFacelet[i][(orientation+2)%3]]

		found := false
		for j := cubie.Corner(0); j < cubie.NumCorners; j++ {
			if col1 == cornerColour[j][1] && col2 == cornerColour[j][2] {
				c.CP[i] = j
				c.CO[i] = int8(orientation)
				found = true
				break
			}
		}
		if !found {
			return cubie.Cube{}, ErrMalformedFacelets
		}
	}

	for i := cubie.Edge(0); i < cubie.NumEdges; i++ {
		found := false
		for j := cubie.Edge(0); j < cubie.NumEdges; j++ {
			a, b := fc.Colours[edgeFacelet[i][0]], fc.Colours[edgeFacelet[i][1]]
			switch {
			case a == edgeColour[j][0] && b == edgeColour[j][1]:
				c.EP[i] = j
				c.EO[i] = 0
				found = true
			case a == edgeColour[j][1] && b == edgeColour[j][0]:
				c.EP[i] = j
				c.EO[i] = 1
				found = true
			}
			if found {
				break
			}
		}
		if !found {
			return cubie.Cube{}, ErrMalformedFacelets
		}
	}

	return c, nil
}

// FromCubieCube renders c's piece state back onto the 54-sticker
// surface. It is the inverse used by the replay verifier and the TUI:
// every piece paints its own stickers at its current position, rotated
// by its orientation.
func FromCubieCube(c cubie.Cube) Cube {
	var fc Cube

	for f := 0; f < cubie.NumFaces; f++ {
		fc.Colours[9*f+4] = cubie.Color(f)
	}

	for i := cubie.Corner(0); i < cubie.NumCorners; i++ {
		j := c.CP[i]
		ori := int(c.CO[i])
		for k := 0; k < 3; k++ {
			faceletIdx := cornerFacelet[i][(k+ori)%3]
			fc.Colours[faceletIdx] = cornerColour[j][k]
		}
	}

	for i := cubie.Edge(0); i < cubie.NumEdges; i++ {
		j := c.EP[i]
		ori := int(c.EO[i])
		for k := 0; k < 2; k++ {
			faceletIdx := edgeFacelet[i][(k+ori)%2]
			fc.Colours[faceletIdx] = edgeColour[j][k]
		}
	}

	return fc
}
