package solver

import "errors"

// ErrInconsistentCube is returned when a cube's facelet layout cannot
// correspond to any sequence of legal moves from a solved state — e.g. a
// single pair of stickers swapped by hand.
var ErrInconsistentCube = errors.New("solver: cube state is not reachable by legal moves")

// ErrSearchExhausted is returned when IDA* exceeds the configured depth
// bound without finding a solution. With the standard bounds (phase 1 up
// to 12, phase 2 up to 18) this should not happen for a consistent cube;
// if it does, it indicates a bug in the tables or cube mechanics rather
// than a genuinely unsolvable state.
var ErrSearchExhausted = errors.New("solver: search exhausted without finding a solution")

// ErrTableInitFailure names the move/pruning table construction failure
// kind. No code path returns it: the tables are fixed-size arrays built
// without recovering panics, so a failure there is not turned into an
// error.
var ErrTableInitFailure = errors.New("solver: failed to initialize move or pruning tables")
