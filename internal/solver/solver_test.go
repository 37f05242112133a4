package solver

import (
	"testing"

	"github.com/aaf1007/rubiks-cube-solver/internal/cube"
	"github.com/aaf1007/rubiks-cube-solver/internal/move"
)

func applySolution(t *testing.T, c *cube.Cube, solution []move.Move) *cube.Cube {
	t.Helper()
	out := c.Clone()
	for _, m := range solution {
		out.Apply(move.Index(m))
	}
	return out
}

func TestSolveAlreadySolved(t *testing.T) {
	c := cube.New()
	solution, err := Solve(c)
	if err != nil {
		t.Fatalf("Solve(solved) returned an error: %v", err)
	}
	if !applySolution(t, c, solution).IsSolved() {
		t.Error("applying the solution to an already-solved cube should stay solved")
	}
}

func TestSolveSingleMoveScramble(t *testing.T) {
	scrambled := cube.New()
	scrambled.Apply(move.Index(move.Move{Face: move.R, Turn: move.CW}))

	solution, err := Solve(scrambled)
	if err != nil {
		t.Fatalf("Solve returned an error: %v", err)
	}
	if !applySolution(t, scrambled, solution).IsSolved() {
		t.Errorf("solution %v did not solve a single R scramble", solution)
	}
}

func TestSolveShortScramble(t *testing.T) {
	scrambled := cube.New()
	seq := []move.Move{
		{Face: move.R, Turn: move.CW},
		{Face: move.U, Turn: move.Half},
		{Face: move.F, Turn: move.CCW},
		{Face: move.L, Turn: move.CW},
		{Face: move.D, Turn: move.CCW},
		{Face: move.B, Turn: move.Half},
	}
	for _, m := range seq {
		scrambled.Apply(move.Index(m))
	}

	solution, err := Solve(scrambled)
	if err != nil {
		t.Fatalf("Solve returned an error: %v", err)
	}
	if !applySolution(t, scrambled, solution).IsSolved() {
		t.Errorf("solution %v did not solve scramble %v", solution, seq)
	}
}

func TestSolveRejectsInconsistentCube(t *testing.T) {
	c := cube.New()
	c.SetCornerAt(0, [3]cube.Color{cube.Red, cube.Red, cube.Red})
	if _, err := Solve(c); err != ErrInconsistentCube {
		t.Errorf("Solve(inconsistent cube) error = %v, want ErrInconsistentCube", err)
	}
}

func TestSolveTimedReportsBothPhases(t *testing.T) {
	scrambled := cube.New()
	seq := []move.Move{
		{Face: move.R, Turn: move.CW},
		{Face: move.U, Turn: move.Half},
		{Face: move.F, Turn: move.CCW},
	}
	for _, m := range seq {
		scrambled.Apply(move.Index(m))
	}

	result, err := SolveTimed(scrambled)
	if err != nil {
		t.Fatalf("SolveTimed returned an error: %v", err)
	}
	if result.Phase1Duration < 0 || result.Phase2Duration < 0 {
		t.Errorf("phase durations must not be negative: phase1=%v phase2=%v", result.Phase1Duration, result.Phase2Duration)
	}
	if !applySolution(t, scrambled, result.Moves).IsSolved() {
		t.Errorf("SolveTimed solution %v did not solve scramble %v", result.Moves, seq)
	}
}
