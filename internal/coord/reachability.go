package coord

import "github.com/aaf1007/rubiks-cube-solver/internal/cube"

// permParity returns 0 for an even permutation, 1 for odd, counted by
// inversions.
func permParity(perm []int) int {
	inversions := 0
	for i := 0; i < len(perm); i++ {
		for j := i + 1; j < len(perm); j++ {
			if perm[i] > perm[j] {
				inversions++
			}
		}
	}
	return inversions % 2
}

// IsReachable reports whether c's facelet layout can result from some
// sequence of legal moves applied to a solved cube. A cube assembled by
// peeling and re-sticking labels can violate any of three invariants
// that move sequences always preserve: total corner twist sums to 0 mod
// 3, total edge flip sums to 0 mod 2, and corner/edge permutation parity
// match.
func IsReachable(c *cube.Cube) bool {
	cornerSum := 0
	var cornerPerm [8]int
	for pos := 0; pos < 8; pos++ {
		colors := c.CornerAt(pos)
		id := identifyCorner(colors)
		if id < 0 {
			return false
		}
		cornerPerm[pos] = id
		cornerSum += CornerOrientation(c, pos)
	}
	if cornerSum%3 != 0 {
		return false
	}

	edgeSum := 0
	var edgePerm [12]int
	for pos := 0; pos < 12; pos++ {
		colors := c.EdgeAt(pos)
		id := identifyEdge(colors)
		if id < 0 {
			return false
		}
		edgePerm[pos] = id
		edgeSum += EdgeOrientation(c, pos)
	}
	if edgeSum%2 != 0 {
		return false
	}

	return permParity(cornerPerm[:]) == permParity(edgePerm[:])
}
