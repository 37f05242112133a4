package coord

import (
	"testing"

	"github.com/aaf1007/rubiks-cube-solver/internal/cube"
	"github.com/aaf1007/rubiks-cube-solver/internal/move"
)

func TestCoordinatesZeroOnSolved(t *testing.T) {
	c := cube.New()
	if Twist(c) != 0 {
		t.Errorf("Twist(solved) = %d, want 0", Twist(c))
	}
	if Flip(c) != 0 {
		t.Errorf("Flip(solved) = %d, want 0", Flip(c))
	}
	if Slice(c) != SliceGoal {
		t.Errorf("Slice(solved) = %d, want %d", Slice(c), SliceGoal)
	}
	if CornerPerm(c) != 0 {
		t.Errorf("CornerPerm(solved) = %d, want 0", CornerPerm(c))
	}
	if UDEdgePerm(c) != 0 {
		t.Errorf("UDEdgePerm(solved) = %d, want 0", UDEdgePerm(c))
	}
	if SlicePerm(c) != 0 {
		t.Errorf("SlicePerm(solved) = %d, want 0", SlicePerm(c))
	}
}

func TestComposeTwistRoundTrip(t *testing.T) {
	identCP := IdentityCornerPerm()
	identEP := IdentityEdgePerm()
	zeroEO := ZeroEdgeOrient()
	for twist := 0; twist < NTwist; twist += 7 {
		co := DecodeTwist(twist)
		c := Compose(identCP, co, identEP, zeroEO)
		if got := Twist(c); got != twist {
			t.Fatalf("Twist(Compose(DecodeTwist(%d))) = %d", twist, got)
		}
	}
}

func TestComposeFlipRoundTrip(t *testing.T) {
	identCP := IdentityCornerPerm()
	identEP := IdentityEdgePerm()
	zeroCO := ZeroCornerOrient()
	for flip := 0; flip < NFlip; flip += 11 {
		eo := DecodeFlip(flip)
		c := Compose(identCP, zeroCO, identEP, eo)
		if got := Flip(c); got != flip {
			t.Fatalf("Flip(Compose(DecodeFlip(%d))) = %d", flip, got)
		}
	}
}

func TestIsReachableSolved(t *testing.T) {
	if !IsReachable(cube.New()) {
		t.Error("a solved cube should be reachable")
	}
}

func TestIsReachableAfterScramble(t *testing.T) {
	c := cube.New()
	for _, idx := range []int{move.Index(move.Move{Face: move.R, Turn: move.CW}),
		move.Index(move.Move{Face: move.U, Turn: move.Half}),
		move.Index(move.Move{Face: move.F, Turn: move.CCW}),
		move.Index(move.Move{Face: move.L, Turn: move.CW}),
		move.Index(move.Move{Face: move.D, Turn: move.CCW}),
		move.Index(move.Move{Face: move.B, Turn: move.Half})} {
		c.Apply(idx)
	}
	if !IsReachable(c) {
		t.Error("a cube reached by legal moves should be reachable")
	}
}

func TestIsReachableDetectsImpossibleCorner(t *testing.T) {
	c := cube.New()
	// Paint a corner's three facelets with colors that don't form any
	// real corner piece's color set.
	c.SetCornerAt(0, [3]cube.Color{cube.Red, cube.Red, cube.Red})
	if IsReachable(c) {
		t.Error("a cube with an impossible corner should not be reachable")
	}
}

func TestPermEncodeDecodeRoundTrip(t *testing.T) {
	perm := []int{3, 1, 4, 0, 2}
	idx := EncodePerm(perm)
	decoded := DecodePerm(idx, len(perm))
	for i := range perm {
		if decoded[i] != perm[i] {
			t.Fatalf("DecodePerm(EncodePerm(%v)) = %v", perm, decoded)
		}
	}
}

func TestCombinationEncodeDecodeRoundTrip(t *testing.T) {
	chosen := []int{1, 3, 7, 9}
	idx := EncodeCombination(chosen, 12)
	decoded := DecodeCombination(idx, 12, 4)
	for i := range chosen {
		if decoded[i] != chosen[i] {
			t.Fatalf("DecodeCombination(EncodeCombination(%v)) = %v", chosen, decoded)
		}
	}
}
