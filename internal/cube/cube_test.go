package cube

import (
	"testing"

	"github.com/aaf1007/rubiks-cube-solver/internal/move"
)

func TestNewCubeIsSolved(t *testing.T) {
	c := New()
	if !c.IsSolved() {
		t.Error("New cube should be solved")
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	c := New()
	c.Apply(move.Index(move.Move{Face: move.R, Turn: move.CW}))
	if c.IsSolved() {
		t.Error("Cube should not be solved after R move")
	}
}

func TestQuarterTurnOrderFour(t *testing.T) {
	faces := []move.Face{move.U, move.D, move.F, move.B, move.R, move.L}
	for _, f := range faces {
		c := New()
		idx := move.Index(move.Move{Face: f, Turn: move.CW})
		for i := 0; i < 4; i++ {
			c.Apply(idx)
		}
		if !c.IsSolved() {
			t.Errorf("%v x 4 should return to solved", f)
			t.Log(c.String())
		}
	}
}

func TestHalfTurnOrderTwo(t *testing.T) {
	faces := []move.Face{move.U, move.D, move.F, move.B, move.R, move.L}
	for _, f := range faces {
		c := New()
		idx := move.Index(move.Move{Face: f, Turn: move.Half})
		c.Apply(idx)
		c.Apply(idx)
		if !c.IsSolved() {
			t.Errorf("%v2 x 2 should return to solved", f)
		}
	}
}

func TestMoveThenInverseRestoresSolved(t *testing.T) {
	for idx := 0; idx < move.N; idx++ {
		c := New()
		inv := move.Index(move.FromIndex(idx).Inverse())
		c.Apply(idx)
		c.Apply(inv)
		if !c.IsSolved() {
			t.Errorf("%s followed by its inverse should restore solved state", move.Name(idx))
		}
	}
}

func TestSexyMoveSixTimesReturnsToSolved(t *testing.T) {
	c := New()
	r := move.Index(move.Move{Face: move.R, Turn: move.CW})
	u := move.Index(move.Move{Face: move.U, Turn: move.CW})
	rp := move.Index(move.Move{Face: move.R, Turn: move.CCW})
	up := move.Index(move.Move{Face: move.U, Turn: move.CCW})
	for i := 0; i < 6; i++ {
		c.Apply(r)
		c.Apply(u)
		c.Apply(rp)
		c.Apply(up)
	}
	if !c.IsSolved() {
		t.Error("(R U R' U') x 6 should return to solved")
		t.Log(c.String())
	}
}

func TestParseRoundTrip(t *testing.T) {
	c := New()
	parsed, err := Parse(c.String())
	if err != nil {
		t.Fatalf("Parse of a freshly-rendered solved cube failed: %v", err)
	}
	if !parsed.IsSolved() {
		t.Error("round-tripped solved cube should still be solved")
	}
	if parsed.String() != c.String() {
		t.Error("round-tripped cube grid should match the original")
	}
}

func TestParseRejectsWrongLineCount(t *testing.T) {
	_, err := Parse("   WWW\n   WWW\n")
	if err == nil {
		t.Fatal("expected an error for a grid with too few lines")
	}
}

func TestParseRejectsBadColorCounts(t *testing.T) {
	bad := New().String()
	// Flip one sticker to an otherwise-valid color, breaking the 9-per-color
	// invariant without breaking line structure.
	bad = bad[:10] + "Y" + bad[11:]
	_, err := Parse(bad)
	if err == nil {
		t.Fatal("expected an error for unbalanced color counts")
	}
}

func TestCornerAndEdgeCellsCoverDistinctStickers(t *testing.T) {
	seen := map[[2]int]bool{}
	for _, cells := range CornerCells {
		for _, cl := range cells {
			key := [2]int{cl.row, cl.col}
			if seen[key] {
				t.Fatalf("corner cell (%d,%d) referenced more than once", cl.row, cl.col)
			}
			seen[key] = true
		}
	}
	for _, cells := range EdgeCells {
		for _, cl := range cells {
			key := [2]int{cl.row, cl.col}
			if seen[key] {
				t.Fatalf("edge cell (%d,%d) referenced more than once", cl.row, cl.col)
			}
			seen[key] = true
		}
	}
}
