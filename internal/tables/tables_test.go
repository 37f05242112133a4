package tables

import (
	"testing"

	"github.com/aaf1007/rubiks-cube-solver/internal/coord"
	"github.com/aaf1007/rubiks-cube-solver/internal/cube"
	"github.com/aaf1007/rubiks-cube-solver/internal/move"
)

// TestMoveTablesMatchDirectApplication cross-checks every table entry for
// the solved state against applying the move directly to a real cube —
// the same ground truth the tables are generated from, so this mainly
// guards against an indexing mistake in build() rather than re-deriving
// correctness from scratch.
func TestMoveTablesMatchDirectApplication(t *testing.T) {
	tb := Get()
	for m := 0; m < move.N; m++ {
		c := cube.New()
		c.Apply(m)
		if got, want := int(tb.Twist[0][m]), coord.Twist(c); got != want {
			t.Errorf("Twist[0][%s] = %d, want %d", move.Name(m), got, want)
		}
		if got, want := int(tb.Flip[0][m]), coord.Flip(c); got != want {
			t.Errorf("Flip[0][%s] = %d, want %d", move.Name(m), got, want)
		}
		if got, want := int(tb.Slice[coord.SliceGoal][m]), coord.Slice(c); got != want {
			t.Errorf("Slice[%d][%s] = %d, want %d", coord.SliceGoal, move.Name(m), got, want)
		}
		if got, want := int(tb.CornerPerm[0][m]), coord.CornerPerm(c); got != want {
			t.Errorf("CornerPerm[0][%s] = %d, want %d", move.Name(m), got, want)
		}
	}
}

func TestPhase2TablesMatchDirectApplication(t *testing.T) {
	tb := Get()
	for _, m := range move.Phase2 {
		slot := Phase2Slot(m)
		c := cube.New()
		c.Apply(m)
		if got, want := int(tb.UDEdgePerm[0][slot]), coord.UDEdgePerm(c); got != want {
			t.Errorf("UDEdgePerm[0][%s] = %d, want %d", move.Name(m), got, want)
		}
		if got, want := int(tb.SlicePerm[0][slot]), coord.SlicePerm(c); got != want {
			t.Errorf("SlicePerm[0][%s] = %d, want %d", move.Name(m), got, want)
		}
	}
}
