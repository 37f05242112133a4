package solver

import (
	"github.com/aaf1007/rubiks-cube-solver/internal/coord"
	"github.com/aaf1007/rubiks-cube-solver/internal/move"
	"github.com/aaf1007/rubiks-cube-solver/internal/prune"
	"github.com/aaf1007/rubiks-cube-solver/internal/tables"
)

// phase1MaxDepth bounds the IDA* search for reducing to the G1 subgroup.
// Kociemba's algorithm guarantees a phase-1 solution of at most 12 moves
// from any reachable state.
const phase1MaxDepth = 12

func phase1Heuristic(p *prune.Tables, twist, flip, slice int) int {
	a := int(p.TwistSlice[twist*coord.NSlice+slice])
	b := int(p.FlipSlice[flip*coord.NSlice+slice])
	if a > b {
		return a
	}
	return b
}

// solvePhase1 finds a move sequence (as solver move indices) taking
// (twist, flip, slice) to (0, 0, coord.SliceGoal), iteratively deepening the bound
// until one is found or phase1MaxDepth is exceeded.
func solvePhase1(t *tables.Tables, p *prune.Tables, twist, flip, slice int) ([]int, bool) {
	bound := phase1Heuristic(p, twist, flip, slice)
	for bound <= phase1MaxDepth {
		path := make([]int, 0, bound)
		found, next := dfsPhase1(t, p, twist, flip, slice, 0, bound, -1, &path)
		if found {
			return path, true
		}
		if next > bound {
			bound = next
		} else {
			bound++
		}
	}
	return nil, false
}

func dfsPhase1(t *tables.Tables, p *prune.Tables, twist, flip, slice, g, bound, prev int, path *[]int) (bool, int) {
	h := phase1Heuristic(p, twist, flip, slice)
	if g+h > bound {
		return false, g + h
	}
	if twist == 0 && flip == 0 && slice == coord.SliceGoal {
		return true, g
	}
	minNext := 1 << 30
	for m := 0; m < move.N; m++ {
		if prev >= 0 && !move.Allowed(prev, m) {
			continue
		}
		nt := int(t.Twist[twist][m])
		nf := int(t.Flip[flip][m])
		ns := int(t.Slice[slice][m])
		*path = append(*path, m)
		found, cost := dfsPhase1(t, p, nt, nf, ns, g+1, bound, m, path)
		if found {
			return true, cost
		}
		*path = (*path)[:len(*path)-1]
		if cost < minNext {
			minNext = cost
		}
	}
	return false, minNext
}
