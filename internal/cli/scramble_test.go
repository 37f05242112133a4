package cli

import (
	"math/rand"
	"testing"

	"github.com/aaf1007/rubiks-cube-solver/internal/move"
)

func TestRandomScrambleLength(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	moves := randomScramble(rng, 25)
	if len(moves) != 25 {
		t.Fatalf("expected 25 moves, got %d", len(moves))
	}
}

func TestRandomScrambleNeverRedundant(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	moves := randomScramble(rng, 200)
	for i := 1; i < len(moves); i++ {
		if !move.Allowed(move.Index(moves[i-1]), move.Index(moves[i])) {
			t.Fatalf("move %d (%s) is redundant after move %d (%s)", i, moves[i].Notation(), i-1, moves[i-1].Notation())
		}
	}
}

func TestScrambledCubeMatchesScramble(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	c, moves := scrambledCube(rng, 20)
	if c.IsSolved() && len(moves) > 0 {
		t.Fatalf("expected a scrambled cube, got solved state from a non-empty scramble")
	}

	replay := c.Clone()
	for i := len(moves) - 1; i >= 0; i-- {
		replay.Apply(move.Index(moves[i].Inverse()))
	}
	if !replay.IsSolved() {
		t.Fatalf("applying the scramble's inverse in reverse order should resolve the cube")
	}
}
