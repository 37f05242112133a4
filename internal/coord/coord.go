// Package coord converts between a full cube.Cube and the six Kociemba
// coordinates the solver searches over: twist and flip (corner/edge
// orientation), slice (which positions hold the four equatorial edges),
// and the three permutation coordinates (cornerPerm, udEdgePerm,
// slicePerm) used once the cube is reduced to the G1 subgroup.
//
// Orientation follows the standard Kociemba definition: a corner's
// orientation is the index, in its clockwise facelet order starting at
// the U/D facelet (cube.CornerCells), of the facelet currently carrying
// the piece's U- or D-colored sticker. An edge's is 0 or 1 depending on
// whether the position's reference facelet (U/D for the eight UD-edge
// positions, F/B for the four slice positions) carries the piece's
// reference color: its U/D color if it has one, else its F/B color.
// TestIsReachableAfterScramble (coord_test.go) checks, through
// IsReachable, the one fact that matters for the reduced twist/flip
// encodings: the sum of all 8 (or 12) orientations is always 0 mod 3 (or
// mod 2).
package coord

import (
	"github.com/aaf1007/rubiks-cube-solver/internal/cube"
)

// Coordinate space sizes.
const (
	NTwist      = 2187 // 3^7
	NFlip       = 2048 // 2^11
	NSlice      = 495  // C(12,4)
	NPerm8      = 40320
	NPerm4      = 24
)

var (
	refCornerColors [8][3]cube.Color
	refEdgeColors   [12][2]cube.Color
)

func init() {
	solved := cube.New()
	for i := 0; i < 8; i++ {
		refCornerColors[i] = solved.CornerAt(i)
	}
	for i := 0; i < 12; i++ {
		refEdgeColors[i] = solved.EdgeAt(i)
	}
}

func sameSet3(a, b [3]cube.Color) bool {
	used := [3]bool{}
	for _, x := range a {
		found := false
		for i, y := range b {
			if !used[i] && x == y {
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func sameSet2(a, b [2]cube.Color) bool {
	return (a[0] == b[0] && a[1] == b[1]) || (a[0] == b[1] && a[1] == b[0])
}

// identifyCorner returns which of the 8 reference corner pieces currently
// occupies a position, given its (unordered) facelet colors.
func identifyCorner(colors [3]cube.Color) int {
	for i, ref := range refCornerColors {
		if sameSet3(colors, ref) {
			return i
		}
	}
	return -1
}

// identifyEdge returns which of the 12 reference edge pieces currently
// occupies a position, given its (unordered) facelet colors.
func identifyEdge(colors [2]cube.Color) int {
	for i, ref := range refEdgeColors {
		if sameSet2(colors, ref) {
			return i
		}
	}
	return -1
}

// CornerOrientation returns the 0..2 orientation of whatever piece
// currently sits at corner position pos.
func CornerOrientation(c *cube.Cube, pos int) int {
	triple := c.CornerAt(pos)
	for i, col := range triple {
		if cube.IsUDColor(col) {
			return i
		}
	}
	return 0
}

// EdgeOrientation returns the 0..1 orientation of whatever piece
// currently sits at edge position pos. Positions 0..7 are UD-edges (their
// index-0 facelet is on U or D); positions 8..11 are the four slice
// edges (their index-0 facelet is on F or B). The orientation is 0 when
// that index-0 facelet carries the piece's U/D color, or, for a piece
// without one, its F/B color.
func EdgeOrientation(c *cube.Cube, pos int) int {
	pair := c.EdgeAt(pos)
	if cube.IsUDColor(pair[0]) {
		return 0
	}
	if cube.IsUDColor(pair[1]) {
		return 1
	}
	if cube.IsFBColor(pair[0]) {
		return 0
	}
	return 1
}

// Twist packs the 8 corner orientations into a base-3 number 0..2186. The
// 8th orientation is omitted; it is always determined by the other 7
// since the sum of all 8 is invariant mod 3.
func Twist(c *cube.Cube) int {
	t := 0
	for pos := 0; pos < 7; pos++ {
		t = t*3 + CornerOrientation(c, pos)
	}
	return t
}

// Flip packs 11 of the 12 edge orientations into a base-2 number
// 0..2047. The 12th is omitted; the sum of all 12 is invariant mod 2.
func Flip(c *cube.Cube) int {
	f := 0
	for pos := 0; pos < 11; pos++ {
		f = f*2 + EdgeOrientation(c, pos)
	}
	return f
}

// Slice encodes, as a combinatorial index 0..494, which 4 of the 12 edge
// positions currently hold one of the four slice-edge pieces (FR, FL,
// BR, BL — reference indices 8..11).
func Slice(c *cube.Cube) int {
	occupied := make([]int, 0, 4)
	for pos := 0; pos < 12; pos++ {
		id := identifyEdge(c.EdgeAt(pos))
		if id >= 8 {
			occupied = append(occupied, pos)
		}
	}
	return EncodeCombination(occupied, 12)
}

// SliceGoal is the Slice coordinate of the G1 subgroup: the slice edges
// occupy exactly positions 8..11 (their own reference positions), giving
// C(8,1)+C(9,2)+C(10,3)+C(11,4) = 494, not 0. original_source/TwoPhaseSolver.java
// computes this the same way (encodeSlice({8,9,10,11})) rather than
// assuming the solved value is 0.
var SliceGoal = EncodeCombination([]int{8, 9, 10, 11}, 12)

// CornerPerm encodes the permutation of the 8 corners as a Lehmer-code
// index 0..40319.
func CornerPerm(c *cube.Cube) int {
	var perm [8]int
	for pos := 0; pos < 8; pos++ {
		perm[pos] = identifyCorner(c.CornerAt(pos))
	}
	return EncodePerm(perm[:])
}

// UDEdgePerm encodes the permutation of the 8 UD-layer edges (positions
// 0..7) as a Lehmer-code index 0..40319. Only meaningful once the cube is
// in G1 (the four slice edges are in the slice), so that positions 0..7
// are occupied exactly by reference pieces 0..7.
func UDEdgePerm(c *cube.Cube) int {
	var perm [8]int
	for pos := 0; pos < 8; pos++ {
		perm[pos] = identifyEdge(c.EdgeAt(pos))
	}
	return EncodePerm(perm[:])
}

// SlicePerm encodes the relative order of the four slice-edge pieces
// among positions 8..11 as a Lehmer-code index 0..23. Only meaningful
// once those four pieces occupy exactly those four positions.
func SlicePerm(c *cube.Cube) int {
	var perm [4]int
	for i, pos := 0, 8; pos < 12; i, pos = i+1, pos+1 {
		perm[i] = identifyEdge(c.EdgeAt(pos)) - 8
	}
	return EncodePerm(perm[:])
}
