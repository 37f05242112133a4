// Package move defines the cube move alphabet used by the solver and its
// public, notation-facing representation.
//
// Internally the solver indexes moves 0..17 in the order U, U2, U', R, R2,
// R', F, F2, F', D, D2, D', L, L2, L', B, B2, B' — six faces in U,R,F,D,L,B
// order, each contributing its clockwise, half, and counter-clockwise turn.
// Move and Index/FromIndex exist to translate between that dense index and
// the face/turn pair the CLI, storage layer, and BLE decoder all speak.
package move

import (
	"fmt"
	"strings"
)

// Face identifies one of the six cube faces.
type Face int

const (
	U Face = iota
	R
	F
	D
	L
	B
)

func (f Face) String() string {
	switch f {
	case U:
		return "U"
	case R:
		return "R"
	case F:
		return "F"
	case D:
		return "D"
	case L:
		return "L"
	case B:
		return "B"
	default:
		return "?"
	}
}

// Turn is the direction and magnitude of a face turn.
type Turn int

const (
	CW     Turn = 1  // quarter turn clockwise
	Half   Turn = 2  // half turn
	CCW    Turn = 3  // quarter turn counter-clockwise (equivalently -1)
)

// Move is a single face turn in the spec's user-facing notation.
type Move struct {
	Face Face
	Turn Turn
}

// Notation returns WCA-style notation: R, R2, R'.
func (m Move) Notation() string {
	switch m.Turn {
	case Half:
		return m.Face.String() + "2"
	case CCW:
		return m.Face.String() + "'"
	default:
		return m.Face.String()
	}
}

func (m Move) String() string { return m.Notation() }

// Inverse returns the move that undoes m.
func (m Move) Inverse() Move {
	switch m.Turn {
	case CW:
		return Move{Face: m.Face, Turn: CCW}
	case CCW:
		return Move{Face: m.Face, Turn: CW}
	default:
		return m
	}
}

// faceOrder fixes the U,R,F,D,L,B ordering the solver's move index relies on.
var faceOrder = [6]Face{U, R, F, D, L, B}

// N is the size of the full 18-move alphabet.
const N = 18

// NP2 is the size of the phase-2 move subset.
const NP2 = 10

// names holds the 18 move names in index order, matching faceOrder.
var names = [N]string{
	"U", "U2", "U'",
	"R", "R2", "R'",
	"F", "F2", "F'",
	"D", "D2", "D'",
	"L", "L2", "L'",
	"B", "B2", "B'",
}

// Phase2 lists the 10 moves that preserve the G1 subgroup: quarter and
// half turns of U/D, half turns only of R/L/F/B, in the order U, U2, U',
// D, D2, D', R2, L2, F2, B2.
var Phase2 = [NP2]int{0, 1, 2, 9, 10, 11, 4, 13, 7, 16}

// Index converts a Move to its 0..17 solver index.
func Index(m Move) int {
	var faceSlot int
	for i, f := range faceOrder {
		if f == m.Face {
			faceSlot = i
			break
		}
	}
	turnSlot := 0
	switch m.Turn {
	case CW:
		turnSlot = 0
	case Half:
		turnSlot = 1
	case CCW:
		turnSlot = 2
	}
	return faceSlot*3 + turnSlot
}

// FromIndex converts a 0..17 solver index back to a Move.
func FromIndex(idx int) Move {
	face := faceOrder[idx/3]
	switch idx % 3 {
	case 0:
		return Move{Face: face, Turn: CW}
	case 1:
		return Move{Face: face, Turn: Half}
	default:
		return Move{Face: face, Turn: CCW}
	}
}

// Name returns the WCA notation for a solver move index.
func Name(idx int) string { return names[idx] }

// FaceOf returns which of the six faces a solver move index turns.
func FaceOf(idx int) Face { return faceOrder[idx/3] }

// SameFace reports whether two move indices turn the same face.
func SameFace(a, b int) bool { return FaceOf(a) == FaceOf(b) }

// opposite pairs up faces that sit on opposite sides of the cube.
func opposite(f Face) Face {
	switch f {
	case U:
		return D
	case D:
		return U
	case R:
		return L
	case L:
		return R
	case F:
		return B
	case B:
		return F
	default:
		return f
	}
}

// IsOpposite reports whether a and b turn opposite faces (e.g. U and D).
func IsOpposite(a, b int) bool { return opposite(FaceOf(a)) == FaceOf(b) }

// canonicalFirst reports whether face f must come before its opposite when
// both appear consecutively in a search branch — fixes U before D, R before
// L, F before B so commuting opposite-face pairs are only explored in one
// order.
func canonicalFirst(f Face) bool {
	switch f {
	case U, R, F:
		return true
	default:
		return false
	}
}

// Allowed applies the search's redundancy pruning rule: a move following
// prev is never explored if it repeats prev's face (redundant with a
// different turn of the same face) or if it turns the opposite face in the
// non-canonical order (R after L instead of L after R, etc, which the other
// order already covers since opposite-face turns commute).
func Allowed(prev, next int) bool {
	if SameFace(prev, next) {
		return false
	}
	if IsOpposite(prev, next) && !canonicalFirst(FaceOf(prev)) {
		return false
	}
	return true
}

// ParseMove parses WCA notation ("R", "R2", "R'") into a Move.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Move{}, fmt.Errorf("move: empty token")
	}
	var f Face
	switch s[0] {
	case 'U', 'u':
		f = U
	case 'R', 'r':
		f = R
	case 'F', 'f':
		f = F
	case 'D', 'd':
		f = D
	case 'L', 'l':
		f = L
	case 'B', 'b':
		f = B
	default:
		return Move{}, fmt.Errorf("move: unknown face in %q", s)
	}
	turn := CW
	switch s[1:] {
	case "":
		turn = CW
	case "2":
		turn = Half
	case "'", "`":
		turn = CCW
	default:
		return Move{}, fmt.Errorf("move: unknown turn suffix in %q", s)
	}
	return Move{Face: f, Turn: turn}, nil
}

// ParseSequence parses a whitespace-separated sequence of WCA-notation moves.
func ParseSequence(s string) ([]Move, error) {
	fields := strings.Fields(s)
	out := make([]Move, 0, len(fields))
	for _, f := range fields {
		m, err := ParseMove(f)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

// FormatSequence renders moves as space-separated WCA notation.
func FormatSequence(ms []Move) string {
	parts := make([]string, len(ms))
	for i, m := range ms {
		parts[i] = m.Notation()
	}
	return strings.Join(parts, " ")
}
