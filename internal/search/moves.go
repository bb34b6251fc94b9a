package search

import "github.com/jrwhitlock/gocube-solve/internal/cubie"

// redundant reports whether a move on face is pointless right after a
// move on prevFace: either the same face again (trivially mergeable
// into one move) or the opposite face on the same physical axis (the
// two moves commute, so canonical ordering requires the lower-indexed
// face first). prevFace of -1 means there is no previous move.
func redundant(prevFace cubie.Face, face cubie.Face) bool {
	if prevFace < 0 {
		return false
	}
	return face == prevFace || int(face) == int(prevFace)-3
}

// phase1Faces is every face, in the canonical U,R,F,D,L,B order used
// by move generation at every phase-1 depth.
var phase1Faces = [cubie.NumFaces]cubie.Face{
	cubie.FaceU, cubie.FaceR, cubie.FaceF, cubie.FaceD, cubie.FaceL, cubie.FaceB,
}

// phase2PowersFor returns the powers permitted on face during phase 2:
// all three for U/D, only the half turn for R/F/L/B.
func phase2PowersFor(face cubie.Face) []int {
	if face == cubie.FaceU || face == cubie.FaceD {
		return []int{1, 2, 3}
	}
	return []int{2}
}
