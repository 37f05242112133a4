// Package prune builds the search's admissible-heuristic tables: for
// each pair of coordinates that together bound a phase's remaining
// depth, a breadth-first exploration outward from the solved state over
// the move-transition tables records, for every combined state, the
// minimum number of moves needed to reach it — which by symmetry of the
// move graph is also the minimum number of moves needed to solve it.
package prune

import (
	"github.com/aaf1007/rubiks-cube-solver/internal/coord"
	"github.com/aaf1007/rubiks-cube-solver/internal/move"
	"github.com/aaf1007/rubiks-cube-solver/internal/tables"
)

// unfilled marks a prune table entry that BFS has not yet reached.
const unfilled = 0xFF

// Tables holds the phase-1 and phase-2 pruning tables.
type Tables struct {
	TwistSlice [coord.NTwist * coord.NSlice]uint8
	FlipSlice  [coord.NFlip * coord.NSlice]uint8

	CornerSlicePerm [coord.NPerm8 * coord.NPerm4]uint8
	UDEdgeSlicePerm [coord.NPerm8 * coord.NPerm4]uint8
}

// Build runs the BFS passes over t and returns the pruning tables.
func Build(t *tables.Tables) *Tables {
	p := &Tables{}
	buildPhase1(p, t)
	buildPhase2(p, t)
	return p
}

func fill(table []uint8) {
	for i := range table {
		table[i] = unfilled
	}
}

// buildPhase1 explores the full 18-move graph over (twist, slice) and
// (flip, slice) independently; the phase-1 heuristic is the max of the
// two lookups for a given full state. The goal state has slice ==
// coord.SliceGoal (494), not 0 — the slice edges' solved positions are
// 8..11, not 0..3 — so the BFS seeds from that state rather than index 0.
func buildPhase1(p *Tables, t *tables.Tables) {
	fill(p.TwistSlice[:])
	bfsPair(p.TwistSlice[:], coord.NTwist, coord.NSlice, 0*coord.NSlice+coord.SliceGoal, func(twist, slice, m int) (int, int) {
		return int(t.Twist[twist][m]), int(t.Slice[slice][m])
	}, move.N)

	fill(p.FlipSlice[:])
	bfsPair(p.FlipSlice[:], coord.NFlip, coord.NSlice, 0*coord.NSlice+coord.SliceGoal, func(flip, slice, m int) (int, int) {
		return int(t.Flip[flip][m]), int(t.Slice[slice][m])
	}, move.N)
}

// buildPhase2 explores only the 10 G1-preserving moves over
// (cornerPerm, slicePerm) and (udEdgePerm, slicePerm). Both permutation
// coordinates are 0 at the solved state, so the BFS seeds from index 0.
func buildPhase2(p *Tables, t *tables.Tables) {
	fill(p.CornerSlicePerm[:])
	bfsPair(p.CornerSlicePerm[:], coord.NPerm8, coord.NPerm4, 0, func(cp, sp, slot int) (int, int) {
		m := move.Phase2[slot]
		return int(t.CornerPerm[cp][m]), int(t.SlicePerm[sp][slot])
	}, move.NP2)

	fill(p.UDEdgeSlicePerm[:])
	bfsPair(p.UDEdgeSlicePerm[:], coord.NPerm8, coord.NPerm4, 0, func(ep, sp, slot int) (int, int) {
		return int(t.UDEdgePerm[ep][slot]), int(t.SlicePerm[sp][slot])
	}, move.NP2)
}

// bfsPair performs a breadth-first fill of a combined (a, b) state space
// of size na*nb, where next(a, b, move) returns the successor coordinate
// pair for a given move index in 0..nMoves-1. table is indexed a*nb+b.
// seed is the index of the goal state the BFS expands outward from.
func bfsPair(table []uint8, na, nb int, seed int, next func(a, b, m int) (int, int), nMoves int) {
	table[seed] = 0
	frontier := []int{seed}
	depth := uint8(0)
	for len(frontier) > 0 {
		var nextFrontier []int
		for _, state := range frontier {
			a, b := state/nb, state%nb
			for m := 0; m < nMoves; m++ {
				na2, nb2 := next(a, b, m)
				idx := na2*nb + nb2
				if table[idx] == unfilled {
					table[idx] = depth + 1
					nextFrontier = append(nextFrontier, idx)
				}
			}
		}
		frontier = nextFrontier
		depth++
	}
}
