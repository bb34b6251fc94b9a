package facelet

import "github.com/jrwhitlock/gocube-solve/internal/cubie"

// Cube is the naive 54-sticker surface representation: Colours[f] is
// the cubie.Color (reindexed to the sticker's own face, not its
// physical colour) shown at facelet position f.
type Cube struct {
	Colours [cubie.NumFacelets]cubie.Color
}

// faceSlice describes where one face's 3x3 block of stickers sits in
// the 9-line net accepted by Parse, and where it lands in Colours.
type faceSlice struct {
	startLine, startChar, offset int
}

// faceSlices mirrors FaceletCube's parseFace call sequence: U, R, F, D, L, B.
var faceSlices = [cubie.NumFaces]faceSlice{
	{0, 3, 0},  // U
	{3, 6, 9},  // R
	{3, 3, 18}, // F
	{6, 3, 27}, // D
	{3, 0, 36}, // L
	{3, 9, 45}, // B
}

// colourMap translates a physical sticker letter to the face it
// represents on a solved cube, per the standard Western colour scheme
// with orange up: O->U, B->R, W->F, R->D, G->L, Y->B.
var colourMap = map[byte]cubie.Color{
	'O': cubie.U,
	'B': cubie.R,
	'W': cubie.F,
	'R': cubie.D,
	'G': cubie.L,
	'Y': cubie.B,
}

// Parse reads a 9-line sticker net (U net row; L F R B band; D net row,
// each a 3x3 block of colour letters at the column offsets above) into
// a Cube. It returns ErrBadLayout if lines is not exactly 9 entries or
// a line is too short for the slice being read, and ErrInvalidColour
// on an unrecognised letter.
func Parse(lines [9]string) (Cube, error) {
	var fc Cube
	for _, fs := range faceSlices {
		if err := parseFaceSlice(&fc, lines, fs); err != nil {
			return Cube{}, err
		}
	}
	return fc, nil
}

func parseFaceSlice(fc *Cube, lines [9]string, fs faceSlice) error {
	for i := 0; i < 3; i++ {
		line := lines[fs.startLine+i]
		for j := 0; j < 3; j++ {
			col := fs.startChar + j
			if col >= len(line) {
				return ErrBadLayout
			}
			colour, ok := colourMap[line[col]]
			if !ok {
				return ErrInvalidColour
			}
			fc.Colours[fs.offset+i*3+j] = colour
		}
	}
	return nil
}
