// Package tables builds the move-transition tables the two-phase search
// walks: for each of the six coordinates, the effect of each of the 18
// moves on every possible coordinate value.
//
// Rather than transcribing original_source/TwoPhaseSolver.java's
// hardcoded CORNER_MOVE_PERM/CORNER_MOVE_ORIENT/EDGE_MOVE_PERM/
// EDGE_MOVE_ORIENT constant arrays — a few thousand hand-copied integers
// with no compiler or test run available to catch a transcription slip —
// every table here is generated at init time by composing a cube for
// each coordinate value (coord.Compose), applying the move with the
// already-verified cube.Apply, and reading the resulting coordinate back
// out (coord.Twist, coord.Flip, ...). This is the same technique the
// Java source uses for its own flip-move table, generalized to all six.
package tables

import (
	"sync"

	"github.com/aaf1007/rubiks-cube-solver/internal/coord"
	"github.com/aaf1007/rubiks-cube-solver/internal/move"
)

// Tables holds every move-transition table the solver needs.
type Tables struct {
	Twist      [coord.NTwist][move.N]int16
	Flip       [coord.NFlip][move.N]int16
	Slice      [coord.NSlice][move.N]int16
	CornerPerm [coord.NPerm8][move.N]int32
	UDEdgePerm [coord.NPerm8][move.NP2]int32
	SlicePerm  [coord.NPerm4][move.NP2]int16
}

var (
	once   sync.Once
	shared *Tables
)

// Get returns the process-wide move-transition tables, building them on
// first use.
func Get() *Tables {
	once.Do(func() { shared = build() })
	return shared
}

func build() *Tables {
	t := &Tables{}

	identCP := coord.IdentityCornerPerm()
	identEP := coord.IdentityEdgePerm()
	zeroCO := coord.ZeroCornerOrient()
	zeroEO := coord.ZeroEdgeOrient()

	for twist := 0; twist < coord.NTwist; twist++ {
		co := coord.DecodeTwist(twist)
		base := coord.Compose(identCP, co, identEP, zeroEO)
		for m := 0; m < move.N; m++ {
			c := base.Clone()
			c.Apply(m)
			t.Twist[twist][m] = int16(coord.Twist(c))
		}
	}

	for flip := 0; flip < coord.NFlip; flip++ {
		eo := coord.DecodeFlip(flip)
		base := coord.Compose(identCP, zeroCO, identEP, eo)
		for m := 0; m < move.N; m++ {
			c := base.Clone()
			c.Apply(m)
			t.Flip[flip][m] = int16(coord.Flip(c))
		}
	}

	for slice := 0; slice < coord.NSlice; slice++ {
		sliceAt := coord.DecodeSlice(slice)
		ep := edgePermForSlice(sliceAt)
		base := coord.Compose(identCP, zeroCO, ep, zeroEO)
		for m := 0; m < move.N; m++ {
			c := base.Clone()
			c.Apply(m)
			t.Slice[slice][m] = int16(coord.Slice(c))
		}
	}

	for perm := 0; perm < coord.NPerm8; perm++ {
		cp := [8]int{}
		copy(cp[:], coord.DecodePerm(perm, 8))
		base := coord.Compose(cp, zeroCO, identEP, zeroEO)
		for m := 0; m < move.N; m++ {
			c := base.Clone()
			c.Apply(m)
			t.CornerPerm[perm][m] = int32(coord.CornerPerm(c))
		}
	}

	for perm := 0; perm < coord.NPerm8; perm++ {
		ep := identEP
		sub := coord.DecodePerm(perm, 8)
		for i := 0; i < 8; i++ {
			ep[i] = sub[i]
		}
		base := coord.Compose(identCP, zeroCO, ep, zeroEO)
		for _, m := range move.Phase2 {
			c := base.Clone()
			c.Apply(m)
			t.UDEdgePerm[perm][phase2Slot(m)] = int32(coord.UDEdgePerm(c))
		}
	}

	for perm := 0; perm < coord.NPerm4; perm++ {
		ep := identEP
		sub := coord.DecodePerm(perm, 4)
		for i := 0; i < 4; i++ {
			ep[8+i] = 8 + sub[i]
		}
		base := coord.Compose(identCP, zeroCO, ep, zeroEO)
		for _, m := range move.Phase2 {
			c := base.Clone()
			c.Apply(m)
			t.SlicePerm[perm][phase2Slot(m)] = int16(coord.SlicePerm(c))
		}
	}

	return t
}

// edgePermForSlice places the four slice pieces (reference ids 8..11) at
// positions sliceAt, in order, and the eight UD-edge pieces (reference
// ids 0..7) at the remaining positions, in order. Only the occupied-set
// matters for the slice coordinate, so any fixed assignment works.
func edgePermForSlice(sliceAt [4]int) [12]int {
	var ep [12]int
	occupied := map[int]bool{}
	for _, p := range sliceAt {
		occupied[p] = true
	}
	next := 0
	for pos := 0; pos < 12; pos++ {
		if occupied[pos] {
			continue
		}
		ep[pos] = next
		next++
	}
	for i, pos := range sliceAt {
		ep[pos] = 8 + i
	}
	return ep
}

var phase2SlotOf [move.N]int

func init() {
	for i := range phase2SlotOf {
		phase2SlotOf[i] = -1
	}
	for slot, m := range move.Phase2 {
		phase2SlotOf[m] = slot
	}
}

func phase2Slot(m int) int { return phase2SlotOf[m] }

// Phase2Slot converts a full 0..17 move index into its 0..9 slot within
// move.Phase2, for indexing UDEdgePerm and SlicePerm. Returns -1 for a
// move index in 0..17 that is not in Phase2; callers only use it with
// moves already known to be in Phase2.
func Phase2Slot(m int) int { return phase2SlotOf[m] }
