// Package cli implements the command-line interface for
// rubiks-cube-solver.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aaf1007/rubiks-cube-solver/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath  string
	verbose bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "rubiks-cube-solver",
	Short: "Two-phase Rubik's cube solver",
	Long: `rubiks-cube-solver finds a short move sequence that solves a 3x3
Rubik's cube, using Kociemba's two-phase algorithm.

Read a scramble from a grid file, generate a random one, or pull it
live from a GoCube-compatible Bluetooth smart cube, then solve it and
log the result.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.rubiks-cube-solver/solves.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// openDB opens the solve log at the configured path (or the default).
func openDB() (*storage.DB, error) {
	if dbPath != "" {
		return storage.Open(dbPath)
	}
	return storage.OpenDefault()
}
