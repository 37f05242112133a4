// Command rubiks-cube-solver solves a 3x3 Rubik's cube with Kociemba's
// two-phase algorithm, from a file, a generated scramble, or a live
// GoCube-compatible Bluetooth smart cube.
package main

import "github.com/aaf1007/rubiks-cube-solver/internal/cli"

func main() {
	cli.Execute()
}
