// Package notation formats and parses move sequences in the two forms
// the system boundary needs: the spec's literal wire format (repeated
// face letters, half turns doubled and counter-clockwise turns tripled)
// and compact WCA-style notation (U2, U') for interoperability with other
// tools and for the CLI/storage layer.
package notation

import (
	"strings"

	"github.com/aaf1007/rubiks-cube-solver/internal/move"
)

// ParseMove and ParseSequence parse compact WCA notation; re-exported
// here so callers only need to import notation, not move, at the system
// boundary.
func ParseMove(s string) (move.Move, error) { return move.ParseMove(s) }

func ParseSequence(s string) ([]move.Move, error) { return move.ParseSequence(s) }

// FormatSequence renders moves as space-separated compact WCA notation:
// "R U2 F'".
func FormatSequence(ms []move.Move) string { return move.FormatSequence(ms) }

// FormatSpec renders moves in the reference solver's literal output
// format: each move is a raw face letter, with half turns expanded to two
// repetitions and counter-clockwise turns to three, all whitespace
// separated (so U2 becomes "U U" and U' becomes "U U U").
func FormatSpec(ms []move.Move) string {
	var b strings.Builder
	first := true
	for _, m := range ms {
		reps := 1
		switch m.Turn {
		case move.Half:
			reps = 2
		case move.CCW:
			reps = 3
		}
		for i := 0; i < reps; i++ {
			if !first {
				b.WriteByte(' ')
			}
			b.WriteString(m.Face.String())
			first = false
		}
	}
	return b.String()
}

// ParseSpec parses the reference solver's literal output format back into
// moves, collapsing consecutive repetitions of the same face letter into
// the equivalent single/half/counter-clockwise turn. Malformed input (a
// face repeated more than three times in a row, or a token that isn't a
// single face letter) is reported as an error.
func ParseSpec(s string) ([]move.Move, error) {
	fields := strings.Fields(s)
	out := make([]move.Move, 0, len(fields))
	i := 0
	for i < len(fields) {
		tok := fields[i]
		if len(tok) != 1 {
			return nil, &ParseError{Token: tok}
		}
		face := tok
		run := 1
		for i+run < len(fields) && fields[i+run] == face {
			run++
		}
		if run > 3 {
			return nil, &ParseError{Token: tok}
		}
		m, err := move.ParseMove(faceLetterToWCA(face, run))
		if err != nil {
			return nil, &ParseError{Token: tok}
		}
		out = append(out, m)
		i += run
	}
	return out, nil
}

func faceLetterToWCA(face string, run int) string {
	switch run {
	case 2:
		return face + "2"
	case 3:
		return face + "'"
	default:
		return face
	}
}

// ParseError reports an unparseable token in ParseSpec.
type ParseError struct{ Token string }

func (e *ParseError) Error() string { return "notation: unparseable token " + e.Token }
