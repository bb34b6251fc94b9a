// Package cube is the public surface of the solver: standard cube
// notation, the naive 54-sticker model used for replay verification
// and the terminal visualizer, and the C7 quarter-turn-repetition move
// encoding the core search emits.
package cube

import (
	"strings"

	"github.com/jrwhitlock/gocube-solve/internal/cubie"
)

// Face represents a cube face in standard notation.
type Face string

const (
	FaceR Face = "R"
	FaceL Face = "L"
	FaceU Face = "U"
	FaceD Face = "D"
	FaceF Face = "F"
	FaceB Face = "B"
)

// Turn represents the direction and magnitude of a face turn.
type Turn int

const (
	CW     Turn = 1
	CCW    Turn = -1
	Double Turn = 2
)

// Move represents a single cube move with face and turn.
type Move struct {
	Face Face
	Turn Turn
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2, U, U', U2
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn {
	case CCW:
		suffix = "'"
	case Double:
		suffix = "2"
	}
	return string(m.Face) + suffix
}

func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the inverse of this move: R becomes R', R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
	}
	return inv
}

// ParseMove parses a standard notation string (R, R', R2, ...) into a Move.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, ErrInvalidNotation
	}

	var face Face
	switch s[0] {
	case 'R', 'r':
		face = FaceR
	case 'L', 'l':
		face = FaceL
	case 'U', 'u':
		face = FaceU
	case 'D', 'd':
		face = FaceD
	case 'F', 'f':
		face = FaceF
	case 'B', 'b':
		face = FaceB
	default:
		return Move{}, ErrInvalidNotation
	}

	turn := CW
	if len(s) > 1 {
		switch s[1:] {
		case "'", "`":
			turn = CCW
		case "2":
			turn = Double
		default:
			return Move{}, ErrInvalidNotation
		}
	}

	return Move{Face: face, Turn: turn}, nil
}

// ParseMoves parses a space-separated sequence of moves; invalid
// tokens are skipped.
func ParseMoves(s string) []Move {
	fields := strings.Fields(s)
	moves := make([]Move, 0, len(fields))
	for _, f := range fields {
		m, err := ParseMove(f)
		if err != nil {
			continue
		}
		moves = append(moves, m)
	}
	return moves
}

// FormatMoves formats moves as a space-separated standard-notation string.
func FormatMoves(moves []Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}
	return strings.Join(parts, " ")
}

// faceToCubieFace maps standard notation Face to the search engine's
// cubie.Face enumeration.
func faceToCubieFace(f Face) cubie.Face {
	switch f {
	case FaceU:
		return cubie.FaceU
	case FaceR:
		return cubie.FaceR
	case FaceF:
		return cubie.FaceF
	case FaceD:
		return cubie.FaceD
	case FaceL:
		return cubie.FaceL
	case FaceB:
		return cubie.FaceB
	default:
		return cubie.FaceU
	}
}

// EncodeSolution renders a sequence of move indices (cubie.MoveIndex
// encoding, as returned by internal/search.Solve) into the C7
// quarter-turn-repetition alphabet: a face letter repeated once per
// quarter turn, no primes or digits. U U U encodes what standard
// notation would call U'.
func EncodeSolution(moveIndices []int) string {
	var b strings.Builder
	for _, mv := range moveIndices {
		face := cubie.Face(mv / 3)
		power := mv%3 + 1
		for i := 0; i < power; i++ {
			b.WriteString(face.String())
		}
	}
	return b.String()
}

// DecodeSolution parses the C7 letter-repetition alphabet back into
// move indices, for the replay verifier and the TUI.
func DecodeSolution(s string) ([]int, error) {
	var moves []int
	i := 0
	for i < len(s) {
		face, err := parseFaceLetter(s[i])
		if err != nil {
			return nil, err
		}
		power := 1
		j := i + 1
		for j < len(s) && s[j] == s[i] {
			power++
			j++
		}
		if power > 3 {
			return nil, ErrInvalidNotation
		}
		moves = append(moves, cubie.MoveIndex(face, power))
		i = j
	}
	return moves, nil
}

func parseFaceLetter(b byte) (cubie.Face, error) {
	switch b {
	case 'U':
		return cubie.FaceU, nil
	case 'R':
		return cubie.FaceR, nil
	case 'F':
		return cubie.FaceF, nil
	case 'D':
		return cubie.FaceD, nil
	case 'L':
		return cubie.FaceL, nil
	case 'B':
		return cubie.FaceB, nil
	default:
		return 0, ErrInvalidNotation
	}
}
