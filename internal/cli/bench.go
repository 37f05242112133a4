package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/aaf1007/rubiks-cube-solver/internal/solver"
)

var (
	benchTrials int
	benchMoves  int
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark the solver over random scrambles",
	Long: `Runs a batch of random scrambles through the two-phase solver and
reports move-count and timing statistics, including the worst case seen.`,
	RunE: runBench,
}

func init() {
	rootCmd.AddCommand(benchCmd)
	benchCmd.Flags().IntVar(&benchTrials, "trials", 100, "number of scrambles to solve")
	benchCmd.Flags().IntVar(&benchMoves, "scramble-moves", 25, "moves per generated scramble")
}

func runBench(cmd *cobra.Command, args []string) error {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	var totalMoves, maxMoves int
	var totalDuration, maxDuration time.Duration

	for i := 0; i < benchTrials; i++ {
		c, _ := scrambledCube(rng, benchMoves)

		start := time.Now()
		solution, err := solver.Solve(c)
		elapsed := time.Since(start)
		if err != nil {
			return fmt.Errorf("trial %d failed: %w", i, err)
		}

		totalMoves += len(solution)
		if len(solution) > maxMoves {
			maxMoves = len(solution)
		}
		totalDuration += elapsed
		if elapsed > maxDuration {
			maxDuration = elapsed
		}
	}

	fmt.Printf("trials:        %d\n", benchTrials)
	fmt.Printf("avg moves:     %.2f\n", float64(totalMoves)/float64(benchTrials))
	fmt.Printf("max moves:     %d\n", maxMoves)
	fmt.Printf("avg time:      %s\n", totalDuration/time.Duration(benchTrials))
	fmt.Printf("max time:      %s\n", maxDuration)

	return nil
}
