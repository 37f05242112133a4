package cli

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/aaf1007/rubiks-cube-solver/internal/cube"
	"github.com/aaf1007/rubiks-cube-solver/internal/move"
	"github.com/aaf1007/rubiks-cube-solver/internal/notation"
)

var (
	scrambleMoves int
	scrambleSeed  int64
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a random legal scramble",
	Long: `Emits a random sequence of quarter/half turns in WCA notation, skipping
moves that would be redundant with the one before it (same face twice,
or the non-canonical order of an opposite-face pair).`,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVarP(&scrambleMoves, "moves", "n", 25, "number of moves in the scramble")
	scrambleCmd.Flags().Int64Var(&scrambleSeed, "seed", 0, "random seed (0 picks one from the system clock)")
}

func runScramble(cmd *cobra.Command, args []string) error {
	seed := scrambleSeed
	if seed == 0 {
		seed = rand.Int63()
	}
	rng := rand.New(rand.NewSource(seed))

	moves := randomScramble(rng, scrambleMoves)
	fmt.Println(notation.FormatSequence(moves))
	return nil
}

// randomScramble generates n moves, applying the solver's own
// redundancy-pruning rule so consecutive moves never cancel or repeat a
// turn of the same face.
func randomScramble(rng *rand.Rand, n int) []move.Move {
	out := make([]move.Move, 0, n)
	prev := -1
	for len(out) < n {
		idx := rng.Intn(move.N)
		if prev >= 0 && !move.Allowed(prev, idx) {
			continue
		}
		out = append(out, move.FromIndex(idx))
		prev = idx
	}
	return out
}

// scrambledCube applies a random scramble to a solved cube and returns
// both the cube and the scramble that produced it.
func scrambledCube(rng *rand.Rand, n int) (*cube.Cube, []move.Move) {
	moves := randomScramble(rng, n)
	c := cube.New()
	for _, m := range moves {
		c.Apply(move.Index(m))
	}
	return c, moves
}
