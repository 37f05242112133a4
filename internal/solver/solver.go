// Package solver implements the two-phase search: phase 1 reduces an
// arbitrary cube to the G1 subgroup (all corners correctly twisted, all
// edges correctly flipped, the four equatorial edges in the equatorial
// slice); phase 2 solves the rest using only moves that preserve G1.
package solver

import (
	"sync"
	"time"

	"github.com/aaf1007/rubiks-cube-solver/internal/coord"
	"github.com/aaf1007/rubiks-cube-solver/internal/cube"
	"github.com/aaf1007/rubiks-cube-solver/internal/move"
	"github.com/aaf1007/rubiks-cube-solver/internal/prune"
	"github.com/aaf1007/rubiks-cube-solver/internal/tables"
)

var (
	initOnce sync.Once
	moveTbls *tables.Tables
	pruneTbl *prune.Tables
)

func ensureTables() {
	initOnce.Do(func() {
		moveTbls = tables.Get()
		pruneTbl = prune.Build(moveTbls)
	})
}

// Solve returns a move sequence that solves c, searched in two phases.
// It does not mutate c.
func Solve(c *cube.Cube) ([]move.Move, error) {
	result, err := SolveTimed(c)
	if err != nil {
		return nil, err
	}
	return result.Moves, nil
}

// Result carries a found solution alongside how long each phase's search
// took, for callers (such as solve logging) that want to record the two
// separately rather than just the combined wall-clock time.
type Result struct {
	Moves          []move.Move
	Phase1Duration time.Duration
	Phase2Duration time.Duration
}

// SolveTimed behaves like Solve but also reports how long each phase's
// IDA* search took.
func SolveTimed(c *cube.Cube) (Result, error) {
	if !coord.IsReachable(c) {
		return Result{}, ErrInconsistentCube
	}
	ensureTables()

	working := c.Clone()
	twist, flip, slice := coord.Twist(working), coord.Flip(working), coord.Slice(working)

	phase1Start := time.Now()
	phase1Moves, ok := solvePhase1(moveTbls, pruneTbl, twist, flip, slice)
	phase1Duration := time.Since(phase1Start)
	if !ok {
		return Result{}, ErrSearchExhausted
	}
	working.ApplyAll(phase1Moves)

	cornerPerm := coord.CornerPerm(working)
	udEdgePerm := coord.UDEdgePerm(working)
	slicePerm := coord.SlicePerm(working)

	phase2Start := time.Now()
	phase2Moves, ok := solvePhase2(moveTbls, pruneTbl, cornerPerm, udEdgePerm, slicePerm)
	phase2Duration := time.Since(phase2Start)
	if !ok {
		return Result{}, ErrSearchExhausted
	}

	all := make([]move.Move, 0, len(phase1Moves)+len(phase2Moves))
	for _, idx := range phase1Moves {
		all = append(all, move.FromIndex(idx))
	}
	for _, idx := range phase2Moves {
		all = append(all, move.FromIndex(idx))
	}
	return Result{
		Moves:          collapse(all),
		Phase1Duration: phase1Duration,
		Phase2Duration: phase2Duration,
	}, nil
}

// collapse merges consecutive same-face moves that phase boundaries can
// introduce (e.g. phase 1 ending in R, phase 2 starting with R2) into a
// single equivalent turn, dropping any that cancel to nothing.
func collapse(ms []move.Move) []move.Move {
	out := make([]move.Move, 0, len(ms))
	for _, m := range ms {
		if len(out) > 0 && out[len(out)-1].Face == m.Face {
			combined := (int(out[len(out)-1].Turn) + int(m.Turn)) % 4
			out = out[:len(out)-1]
			if combined != 0 {
				out = append(out, move.Move{Face: m.Face, Turn: move.Turn(combined)})
			}
			continue
		}
		out = append(out, m)
	}
	return out
}
