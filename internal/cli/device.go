package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/aaf1007/rubiks-cube-solver/internal/ble"
	"github.com/aaf1007/rubiks-cube-solver/internal/notation"
	"github.com/aaf1007/rubiks-cube-solver/internal/solver"
	"github.com/aaf1007/rubiks-cube-solver/internal/storage"
)

var deviceOutput string

var deviceCmd = &cobra.Command{
	Use:   "device",
	Short: "Discover and solve from a GoCube-compatible smart cube",
}

var deviceScanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan for nearby GoCube devices",
	RunE:  runDeviceScan,
}

var deviceSolveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Connect to a GoCube, wait for Enter, then solve its tracked state",
	Long: `Connects to the first GoCube-compatible device found, reconstructs
its sticker grid live from the move notifications it reports, and once
you say the physical cube matches a known scrambled state, solves it.

Ctrl+C cancels the scan/connect.`,
	RunE: runDeviceSolve,
}

func init() {
	rootCmd.AddCommand(deviceCmd)
	deviceCmd.AddCommand(deviceScanCmd)
	deviceCmd.AddCommand(deviceSolveCmd)
	deviceSolveCmd.Flags().StringVar(&deviceOutput, "output", "", "write the solution to this file instead of stdout")
}

func runDeviceScan(cmd *cobra.Command, args []string) error {
	client, err := ble.NewClient()
	if err != nil {
		return fmt.Errorf("BLE not available: %w", err)
	}
	defer client.Disconnect()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	fmt.Println("Scanning for GoCube devices...")
	results, err := client.Scan(ctx, 5*time.Second)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if len(results) == 0 {
		fmt.Println("No devices found.")
		return nil
	}

	for _, r := range results {
		fmt.Printf("%s  %s  RSSI %d\n", r.UUID, r.Name, r.RSSI)
	}
	return nil
}

func runDeviceSolve(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dev, err := ble.Connect(ctx, 10*time.Second)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer dev.Close()

	fmt.Printf("Connected to %s. Turn the cube to match the state you want solved, then press Enter.\n", dev.DeviceName())
	fmt.Scanln()

	c := dev.Cube()

	start := time.Now()
	result, err := solver.SolveTimed(c)
	duration := time.Since(start)
	if err != nil {
		return fmt.Errorf("failed to solve: %w", err)
	}
	solution := result.Moves

	out := notation.FormatSpec(solution)
	if deviceOutput != "" {
		if err := os.WriteFile(deviceOutput, []byte(out+"\n"), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
	} else {
		fmt.Println(out)
	}

	if !solveNoLog {
		if err := logDeviceSolve(dev, c.String(), result, duration); err != nil && verbose {
			fmt.Fprintf(os.Stderr, "warning: failed to log solve: %v\n", err)
		}
	}

	return nil
}

func logDeviceSolve(dev *ble.Device, inputGrid string, result solver.Result, duration time.Duration) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	name := dev.DeviceName()
	id := dev.DeviceUUID()
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
		Source:           storage.SourceDevice,
		DeviceName:       &name,
		DeviceID:         &id,
	})
	return err
}
