package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/aaf1007/rubiks-cube-solver/internal/cube"
	"github.com/aaf1007/rubiks-cube-solver/internal/move"
	"github.com/aaf1007/rubiks-cube-solver/internal/notation"
	"github.com/aaf1007/rubiks-cube-solver/internal/solver"
	"github.com/aaf1007/rubiks-cube-solver/internal/storage"
	"github.com/aaf1007/rubiks-cube-solver/internal/tui"
)

var (
	solveWatch   bool
	solveNoLog   bool
	solveCompact bool
)

var solveCmd = &cobra.Command{
	Use:   "solve <input-file> <output-file>",
	Short: "Solve a scrambled cube read from a grid file",
	Long: `Reads a 9-line sticker grid from input-file, finds a solution with
the two-phase algorithm, and writes the move sequence to output-file.`,
	Args: cobra.ExactArgs(2),
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().BoolVar(&solveWatch, "watch", false, "play the solution back in a terminal viewer")
	solveCmd.Flags().BoolVar(&solveNoLog, "no-log", false, "skip logging this solve to the database")
	solveCmd.Flags().BoolVar(&solveCompact, "compact", false, "emit WCA notation instead of the spec's literal format")
}

func runSolve(cmd *cobra.Command, args []string) error {
	inputPath, outputPath := args[0], args[1]

	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	c, err := cube.Parse(string(raw))
	if err != nil {
		return fmt.Errorf("failed to parse cube: %w", err)
	}

	start := time.Now()
	result, err := solver.SolveTimed(c)
	duration := time.Since(start)
	if err != nil {
		return fmt.Errorf("failed to solve: %w", err)
	}
	solution := result.Moves

	out := notation.FormatSpec(solution)
	if solveCompact {
		out = notation.FormatSequence(solution)
	}

	if err := os.WriteFile(outputPath, []byte(out+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	if verbose {
		fmt.Printf("Solved in %d moves (%s)\n", len(solution), duration)
	}

	if solveWatch {
		if err := tui.Play(c, solution); err != nil {
			return fmt.Errorf("playback failed: %w", err)
		}
	}

	if !solveNoLog {
		if err := logSolve(string(raw), result, duration); err != nil && verbose {
			fmt.Fprintf(os.Stderr, "warning: failed to log solve: %v\n", err)
		}
	}

	return nil
}

func logSolve(inputGrid string, result solver.Result, duration time.Duration) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	phase1, phase2 := splitPhases(result.Moves)

	_, err = storage.NewSolveRepository(db).Create(storage.Solve{
		InputGrid:        inputGrid,
		Solution:         notation.FormatSequence(result.Moves),
		MoveCount:        len(result.Moves),
		Phase1MoveCount:  phase1,
		Phase2MoveCount:  phase2,
		Phase1DurationMs: result.Phase1Duration.Milliseconds(),
		Phase2DurationMs: result.Phase2Duration.Milliseconds(),
		TotalDurationMs:  duration.Milliseconds(),
		Source:           storage.SourceFile,
	})
	return err
}

// splitPhases estimates the phase-1/phase-2 move split of a solved
// sequence by finding the last move that is not in the phase-2 subset;
// everything after it ran under phase-2-only search.
func splitPhases(solution []move.Move) (phase1, phase2 int) {
	phase2MoveSet := map[move.Move]bool{}
	for _, idx := range move.Phase2 {
		phase2MoveSet[move.FromIndex(idx)] = true
	}

	boundary := 0
	for i, m := range solution {
		if !phase2MoveSet[m] {
			boundary = i + 1
		}
	}
	return boundary, len(solution) - boundary
}
