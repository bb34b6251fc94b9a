package coord

import "github.com/jrwhitlock/gocube-solve/internal/cubie"

// rotateLeftCorners cyclically shifts s[l..r] one step left: the piece
// at l moves to r, everything else shifts down by one. Mirrors the
// Java reference's generic Object[] rotateLeft, specialised per type
// since this codebase does not use generics for small helpers like this.
func rotateLeftCorners(s []cubie.Corner, l, r int) {
	tmp := s[l]
	for i := l; i < r; i++ {
		s[i] = s[i+1]
	}
	s[r] = tmp
}

// rotateRightCorners cyclically shifts s[l..r] one step right.
func rotateRightCorners(s []cubie.Corner, l, r int) {
	tmp := s[r]
	for i := r; i > l; i-- {
		s[i] = s[i-1]
	}
	s[l] = tmp
}

// rotateLeftEdges is the edge-slice analogue of rotateLeftCorners.
func rotateLeftEdges(s []cubie.Edge, l, r int) {
	tmp := s[l]
	for i := l; i < r; i++ {
		s[i] = s[i+1]
	}
	s[r] = tmp
}

// rotateRightEdges is the edge-slice analogue of rotateRightCorners.
func rotateRightEdges(s []cubie.Edge, l, r int) {
	tmp := s[r]
	for i := r; i > l; i-- {
		s[i] = s[i-1]
	}
	s[l] = tmp
}
