package cli

import (
	"testing"

	"github.com/aaf1007/rubiks-cube-solver/internal/move"
)

func TestSplitPhasesAllPhase2(t *testing.T) {
	solution := []move.Move{move.FromIndex(move.Phase2[0]), move.FromIndex(move.Phase2[1])}
	phase1, phase2 := splitPhases(solution)
	if phase1 != 0 || phase2 != 2 {
		t.Fatalf("expected phase1=0 phase2=2, got phase1=%d phase2=%d", phase1, phase2)
	}
}

func TestSplitPhasesMixed(t *testing.T) {
	solution := []move.Move{
		{Face: move.F, Turn: move.CW}, // not in phase2 move set
		move.FromIndex(move.Phase2[0]),
		move.FromIndex(move.Phase2[1]),
	}
	phase1, phase2 := splitPhases(solution)
	if phase1 != 1 || phase2 != 2 {
		t.Fatalf("expected phase1=1 phase2=2, got phase1=%d phase2=%d", phase1, phase2)
	}
}

func TestSplitPhasesTrailingPhase1Move(t *testing.T) {
	solution := []move.Move{
		move.FromIndex(move.Phase2[0]),
		{Face: move.F, Turn: move.CW},
	}
	phase1, phase2 := splitPhases(solution)
	if phase1 != 2 || phase2 != 0 {
		t.Fatalf("expected the whole sequence to count as phase1 when it ends on a non-phase2 move, got phase1=%d phase2=%d", phase1, phase2)
	}
}
