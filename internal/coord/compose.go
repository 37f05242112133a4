package coord

import "github.com/aaf1007/rubiks-cube-solver/internal/cube"

// Compose synthesizes a full cube from an abstract corner/edge piece
// arrangement: cornerPerm[pos]/edgePerm[pos] name which reference piece
// (0..7, 0..11) sits at position pos, and cornerOrient[pos]/edgeOrient[pos]
// its orientation there.
//
// tables builds each move-transition table by composing a cube for every
// value of the coordinate being tabulated, applying the real move via
// cube.Apply, and reading the resulting coordinate back out — the same
// technique original_source/RubiksCube.java uses only for its flip-move
// table, generalized here to all six coordinates so no move-effect table
// needs to be transcribed by hand.
func Compose(cornerPerm, cornerOrient [8]int, edgePerm, edgeOrient [12]int) *cube.Cube {
	c := cube.New()
	for pos := 0; pos < 8; pos++ {
		ref := refCornerColors[cornerPerm[pos]]
		var placed [3]cube.Color
		switch cornerOrient[pos] % 3 {
		case 0:
			placed = [3]cube.Color{ref[0], ref[1], ref[2]}
		case 1:
			placed = [3]cube.Color{ref[2], ref[0], ref[1]}
		default:
			placed = [3]cube.Color{ref[1], ref[2], ref[0]}
		}
		c.SetCornerAt(pos, placed)
	}
	for pos := 0; pos < 12; pos++ {
		ref := refEdgeColors[edgePerm[pos]]
		var placed [2]cube.Color
		if edgeOrient[pos]%2 == 0 {
			placed = [2]cube.Color{ref[0], ref[1]}
		} else {
			placed = [2]cube.Color{ref[1], ref[0]}
		}
		c.SetEdgeAt(pos, placed)
	}
	return c
}

// DecodeTwist inverts Twist, inferring the 8th corner's orientation so
// the sum of all 8 is 0 mod 3.
func DecodeTwist(t int) [8]int {
	var o [8]int
	sum := 0
	for pos := 6; pos >= 0; pos-- {
		o[pos] = t % 3
		sum += o[pos]
		t /= 3
	}
	o[7] = (3 - sum%3) % 3
	return o
}

// DecodeFlip inverts Flip, inferring the 12th edge's orientation so the
// sum of all 12 is 0 mod 2.
func DecodeFlip(f int) [12]int {
	var o [12]int
	sum := 0
	for pos := 10; pos >= 0; pos-- {
		o[pos] = f % 2
		sum += o[pos]
		f /= 2
	}
	o[11] = sum % 2
	return o
}

// DecodeSlice inverts Slice, returning which 4 of the 12 edge positions
// hold the slice pieces (FR, FL, BR, BL), in increasing position order.
func DecodeSlice(s int) [4]int {
	chosen := DecodeCombination(s, 12, 4)
	var out [4]int
	copy(out[:], chosen)
	return out
}

// IdentityCornerPerm and IdentityEdgePerm are the solved arrangement,
// convenient starting points when only some coordinates of a synthesized
// cube matter.
func IdentityCornerPerm() [8]int {
	var p [8]int
	for i := range p {
		p[i] = i
	}
	return p
}

func IdentityEdgePerm() [12]int {
	var p [12]int
	for i := range p {
		p[i] = i
	}
	return p
}

func ZeroCornerOrient() [8]int  { return [8]int{} }
func ZeroEdgeOrient() [12]int   { return [12]int{} }
