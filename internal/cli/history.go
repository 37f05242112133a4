package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aaf1007/rubiks-cube-solver/internal/storage"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past solves from the solve log",
	RunE:  runHistory,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show the full detail of one logged solve",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum number of solves to list")
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	solves, err := storage.NewSolveRepository(db).List(historyLimit)
	if err != nil {
		return err
	}

	if len(solves) == 0 {
		fmt.Println("No solves logged yet.")
		return nil
	}

	for _, s := range solves {
		fmt.Printf("%s  %-8s  %3d moves  %6dms  %s\n",
			s.ID, s.Source, s.MoveCount, s.TotalDurationMs, s.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	s, err := storage.NewSolveRepository(db).Get(args[0])
	if err != nil {
		return err
	}
	if s == nil {
		return fmt.Errorf("no solve found with id %q", args[0])
	}

	fmt.Printf("id:          %s\n", s.ID)
	fmt.Printf("created at:  %s\n", s.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("source:      %s\n", s.Source)
	if s.Scramble != nil {
		fmt.Printf("scramble:    %s\n", *s.Scramble)
	}
	if s.DeviceName != nil {
		fmt.Printf("device:      %s (%s)\n", *s.DeviceName, derefOr(s.DeviceID, ""))
	}
	fmt.Printf("solution:    %s\n", s.Solution)
	fmt.Printf("moves:       %d (phase 1: %d, phase 2: %d)\n", s.MoveCount, s.Phase1MoveCount, s.Phase2MoveCount)
	fmt.Printf("duration:    %dms (phase 1: %dms, phase 2: %dms)\n",
		s.TotalDurationMs, s.Phase1DurationMs, s.Phase2DurationMs)
	fmt.Println("input grid:")
	fmt.Println(s.InputGrid)

	return nil
}

func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
