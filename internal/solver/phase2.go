package solver

import (
	"github.com/aaf1007/rubiks-cube-solver/internal/coord"
	"github.com/aaf1007/rubiks-cube-solver/internal/move"
	"github.com/aaf1007/rubiks-cube-solver/internal/prune"
	"github.com/aaf1007/rubiks-cube-solver/internal/tables"
)

// phase2MaxDepth bounds the IDA* search within G1. 18 is a safe ceiling;
// in practice phase-2 solutions from a phase-1-reduced state are short.
const phase2MaxDepth = 18

func phase2Heuristic(p *prune.Tables, cornerPerm, udEdgePerm, slicePerm int) int {
	a := int(p.CornerSlicePerm[cornerPerm*coord.NPerm4+slicePerm])
	b := int(p.UDEdgeSlicePerm[udEdgePerm*coord.NPerm4+slicePerm])
	if a > b {
		return a
	}
	return b
}

// solvePhase2 finds a move sequence, drawn only from move.Phase2, taking
// (cornerPerm, udEdgePerm, slicePerm) to (0, 0, 0).
func solvePhase2(t *tables.Tables, p *prune.Tables, cornerPerm, udEdgePerm, slicePerm int) ([]int, bool) {
	bound := phase2Heuristic(p, cornerPerm, udEdgePerm, slicePerm)
	for bound <= phase2MaxDepth {
		path := make([]int, 0, bound)
		found, next := dfsPhase2(t, p, cornerPerm, udEdgePerm, slicePerm, 0, bound, -1, &path)
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

func dfsPhase2(t *tables.Tables, p *prune.Tables, cornerPerm, udEdgePerm, slicePerm, g, bound, prev int, path *[]int) (bool, int) {
	h := phase2Heuristic(p, cornerPerm, udEdgePerm, slicePerm)
	if g+h > bound {
		return false, g + h
	}
	if cornerPerm == 0 && udEdgePerm == 0 && slicePerm == 0 {
		return true, g
	}
	minNext := 1 << 30
	for _, m := range move.Phase2 {
		if prev >= 0 && !move.Allowed(prev, m) {
			continue
		}
		slot := tables.Phase2Slot(m)
		ncp := int(t.CornerPerm[cornerPerm][m])
		nep := int(t.UDEdgePerm[udEdgePerm][slot])
		nsp := int(t.SlicePerm[slicePerm][slot])
		*path = append(*path, m)
		found, cost := dfsPhase2(t, p, ncp, nep, nsp, g+1, bound, m, path)
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
