// Package cube provides a 3x3 Rubik's cube model with state tracking.
//
// The cube is stored as a 9x12 grid of colored facelets addressed by
// (row, col), laid out as an unfolded cross with the four side faces in
// one contiguous band:
//
//	      U U U
//	      U U U
//	      U U U
//	L L L F F F R R R B B B
//	L L L F F F R R R B B B
//	L L L F F F R R R B B B
//	      D D D
//	      D D D
//	      D D D
//
// Rows 0-2 and 6-8 only occupy columns 3-5; the rest of those rows is
// blank padding, never a stored color.
package cube

import (
	"fmt"
	"strings"

	"github.com/aaf1007/rubiks-cube-solver/internal/move"
)

// Color represents a facelet color.
type Color byte

// The six sticker colors. Which face each carries when solved is fixed by
// solvedColor below, not implied by these names.
const (
	White  Color = 'W'
	Yellow Color = 'Y'
	Green  Color = 'G'
	Blue   Color = 'B'
	Red    Color = 'R'
	Orange Color = 'O'
	blank  Color = ' '
)

func (c Color) String() string { return string(rune(c)) }

func isValidColor(c Color) bool {
	switch c {
	case White, Yellow, Green, Blue, Red, Orange:
		return true
	default:
		return false
	}
}

// Cube represents a 3x3 Rubik's cube as a 9x12 sticker grid.
type Cube struct {
	grid [9][12]Color
}

// faceBlock gives the top-left grid cell of each face's 3x3 block.
var faceBlock = map[move.Face][2]int{
	move.U: {0, 3},
	move.L: {3, 0},
	move.F: {3, 3},
	move.R: {3, 6},
	move.B: {3, 9},
	move.D: {6, 3},
}

// solvedColor is the color each face carries when the cube is solved,
// following the reference mapping: O=U, R=D, W=F, Y=B, G=L, B=R. This
// doesn't match a physical cube's white-opposite-yellow convention, but
// it's the letter-to-face assignment the grid format's tests use, so
// Parse/String have to match it exactly for a round-tripped grid to mean
// what the caller thinks it means.
var solvedColor = map[move.Face]Color{
	move.U: Orange,
	move.D: Red,
	move.F: White,
	move.B: Yellow,
	move.R: Blue,
	move.L: Green,
}

// IsUDColor reports whether col is the solved color of the U or D face.
func IsUDColor(col Color) bool {
	return col == solvedColor[move.U] || col == solvedColor[move.D]
}

// IsFBColor reports whether col is the solved color of the F or B face.
func IsFBColor(col Color) bool {
	return col == solvedColor[move.F] || col == solvedColor[move.B]
}

// New creates a solved cube in the reference orientation: Orange on top,
// Red on bottom, White in front, Yellow in back, Green on the left, Blue
// on the right.
func New() *Cube {
	c := &Cube{}
	for r := 0; r < 9; r++ {
		for col := 0; col < 12; col++ {
			c.grid[r][col] = blank
		}
	}
	for f, base := range faceBlock {
		col := solvedColor[f]
		for dr := 0; dr < 3; dr++ {
			for dc := 0; dc < 3; dc++ {
				c.grid[base[0]+dr][base[1]+dc] = col
			}
		}
	}
	return c
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := &Cube{}
	clone.grid = c.grid
	return clone
}

// Sticker returns the color at (row, col). Out-of-range or padding cells
// return blank.
func (c *Cube) Sticker(row, col int) Color {
	if row < 0 || row > 8 || col < 0 || col > 11 {
		return blank
	}
	return c.grid[row][col]
}

// SetSticker writes a facelet color at (row, col). Used by coord to
// synthesize a cube from a corner/edge piece arrangement when building
// move-transition tables.
func (c *Cube) SetSticker(row, col int, v Color) {
	c.grid[row][col] = v
}

// CenterColor returns the fixed center-facelet color for a face. Centers
// never move, so this identifies a face regardless of which color scheme
// an input grid used.
func (c *Cube) CenterColor(f move.Face) Color {
	base := faceBlock[f]
	return c.grid[base[0]+1][base[1]+1]
}

// Parse reads a cube from the spec's 9-line grid format: lines 0-2 and 6-8
// are three leading spaces followed by three color letters, lines 3-5 are
// twelve color letters. Returns an error wrapping ErrMalformedInput if the
// text does not conform.
func Parse(s string) (*Cube, error) {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) != 9 {
		return nil, fmt.Errorf("%w: expected 9 lines, got %d", ErrMalformedInput, len(lines))
	}

	c := &Cube{}
	for r := 0; r < 9; r++ {
		for col := 0; col < 12; col++ {
			c.grid[r][col] = blank
		}
	}

	for i, line := range lines {
		if i < 3 || i >= 6 {
			if len(line) != 6 || !strings.HasPrefix(line, "   ") {
				return nil, fmt.Errorf("%w: line %d must be 3 spaces followed by 3 colors", ErrMalformedInput, i)
			}
			for j, ch := range line[3:] {
				color := Color(ch)
				if !isValidColor(color) {
					return nil, fmt.Errorf("%w: line %d has invalid color %q", ErrMalformedInput, i, ch)
				}
				c.grid[i][3+j] = color
			}
		} else {
			if len(line) != 12 {
				return nil, fmt.Errorf("%w: line %d must have exactly 12 characters", ErrMalformedInput, i)
			}
			for j, ch := range line {
				color := Color(ch)
				if !isValidColor(color) {
					return nil, fmt.Errorf("%w: line %d has invalid color %q", ErrMalformedInput, i, ch)
				}
				c.grid[i][j] = color
			}
		}
	}

	if err := c.checkColorCounts(); err != nil {
		return nil, err
	}

	return c, nil
}

// checkColorCounts enforces that each of the six colors appears exactly
// nine times: necessary, though not sufficient, for a physically valid
// cube (permutation and orientation parity are checked separately by the
// solver package once pieces have been decoded).
func (c *Cube) checkColorCounts() error {
	counts := map[Color]int{}
	for r := 0; r < 9; r++ {
		for col := 0; col < 12; col++ {
			if c.grid[r][col] == blank {
				continue
			}
			counts[c.grid[r][col]]++
		}
	}
	for _, col := range []Color{White, Yellow, Green, Blue, Red, Orange} {
		if counts[col] != 9 {
			return fmt.Errorf("%w: color %q appears %d times, want 9", ErrMalformedInput, col, counts[col])
		}
	}
	return nil
}

// String renders the cube in the spec's 9-line grid format.
func (c *Cube) String() string {
	var b strings.Builder
	for r := 0; r < 9; r++ {
		if r < 3 || r >= 6 {
			b.WriteString("   ")
			for col := 3; col <= 5; col++ {
				b.WriteByte(byte(c.grid[r][col]))
			}
		} else {
			for col := 0; col < 12; col++ {
				b.WriteByte(byte(c.grid[r][col]))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// IsSolved returns true if the cube is in the solved state: every face
// block is a single uniform color.
func (c *Cube) IsSolved() bool {
	for _, base := range faceBlock {
		want := c.grid[base[0]][base[1]]
		for dr := 0; dr < 3; dr++ {
			for dc := 0; dc < 3; dc++ {
				if c.grid[base[0]+dr][base[1]+dc] != want {
					return false
				}
			}
		}
	}
	return true
}

// Apply performs one move from the 18-move alphabet (by solver index, see
// package move) on the cube, in place.
func (c *Cube) Apply(moveIndex int) {
	m := move.FromIndex(moveIndex)
	turns := 1
	switch m.Turn {
	case move.Half:
		turns = 2
	case move.CCW:
		turns = 3
	}
	for i := 0; i < turns; i++ {
		c.turnCW(m.Face)
	}
}

// ApplyAll applies a sequence of moves in order.
func (c *Cube) ApplyAll(indices []int) {
	for _, idx := range indices {
		c.Apply(idx)
	}
}

func (c *Cube) turnCW(f move.Face) {
	switch f {
	case move.U:
		c.turnU()
	case move.D:
		c.turnD()
	case move.L:
		c.turnL()
	case move.R:
		c.turnR()
	case move.F:
		c.turnF()
	case move.B:
		c.turnB()
	}
}

// rotateFaceBlock rotates the 3x3 block whose top-left cell is (row, col)
// one quarter turn clockwise in place: a 4-cycle of corners followed by a
// 4-cycle of edge midpoints.
func (c *Cube) rotateFaceBlock(row, col int) {
	g := &c.grid

	temp := g[row][col]
	g[row][col] = g[row+2][col]
	g[row+2][col] = g[row+2][col+2]
	g[row+2][col+2] = g[row][col+2]
	g[row][col+2] = temp

	temp = g[row][col+1]
	g[row][col+1] = g[row+1][col]
	g[row+1][col] = g[row+2][col+1]
	g[row+2][col+1] = g[row+1][col+2]
	g[row+1][col+2] = temp
}

func (c *Cube) turnF() {
	c.rotateFaceBlock(3, 3)
	g := &c.grid

	t1, t2, t3 := g[2][3], g[2][4], g[2][5]

	g[2][3] = g[5][2]
	g[2][4] = g[4][2]
	g[2][5] = g[3][2]

	g[3][2] = g[6][3]
	g[4][2] = g[6][4]
	g[5][2] = g[6][5]

	g[6][3] = g[5][6]
	g[6][4] = g[4][6]
	g[6][5] = g[3][6]

	g[3][6] = t1
	g[4][6] = t2
	g[5][6] = t3
}

func (c *Cube) turnB() {
	c.rotateFaceBlock(3, 9)
	g := &c.grid

	t1, t2, t3 := g[0][3], g[0][4], g[0][5]

	g[0][3] = g[3][8]
	g[0][4] = g[4][8]
	g[0][5] = g[5][8]

	g[3][8] = g[8][5]
	g[4][8] = g[8][4]
	g[5][8] = g[8][3]

	g[8][3] = g[3][0]
	g[8][4] = g[4][0]
	g[8][5] = g[5][0]

	g[3][0] = t3
	g[4][0] = t2
	g[5][0] = t1
}

func (c *Cube) turnR() {
	c.rotateFaceBlock(3, 6)
	g := &c.grid

	t1, t2, t3 := g[3][9], g[4][9], g[5][9]

	g[5][9] = g[0][5]
	g[4][9] = g[1][5]
	g[3][9] = g[2][5]

	g[0][5] = g[3][5]
	g[1][5] = g[4][5]
	g[2][5] = g[5][5]

	g[3][5] = g[6][5]
	g[4][5] = g[7][5]
	g[5][5] = g[8][5]

	g[6][5] = t3
	g[7][5] = t2
	g[8][5] = t1
}

func (c *Cube) turnL() {
	c.rotateFaceBlock(3, 0)
	g := &c.grid

	t1, t2, t3 := g[3][3], g[4][3], g[5][3]

	g[3][3] = g[0][3]
	g[4][3] = g[1][3]
	g[5][3] = g[2][3]

	g[0][3] = g[5][11]
	g[1][3] = g[4][11]
	g[2][3] = g[3][11]

	g[3][11] = g[8][3]
	g[4][11] = g[7][3]
	g[5][11] = g[6][3]

	g[6][3] = t1
	g[7][3] = t2
	g[8][3] = t3
}

func (c *Cube) turnU() {
	c.rotateFaceBlock(0, 3)
	g := &c.grid

	t1, t2, t3 := g[3][3], g[3][4], g[3][5]

	g[3][3] = g[3][6]
	g[3][4] = g[3][7]
	g[3][5] = g[3][8]

	g[3][6] = g[3][9]
	g[3][7] = g[3][10]
	g[3][8] = g[3][11]

	g[3][9] = g[3][0]
	g[3][10] = g[3][1]
	g[3][11] = g[3][2]

	g[3][0] = t1
	g[3][1] = t2
	g[3][2] = t3
}

func (c *Cube) turnD() {
	c.rotateFaceBlock(6, 3)
	g := &c.grid

	t1, t2, t3 := g[5][3], g[5][4], g[5][5]

	g[5][3] = g[5][0]
	g[5][4] = g[5][1]
	g[5][5] = g[5][2]

	g[5][0] = g[5][9]
	g[5][1] = g[5][10]
	g[5][2] = g[5][11]

	g[5][9] = g[5][6]
	g[5][10] = g[5][7]
	g[5][11] = g[5][8]

	g[5][6] = t1
	g[5][7] = t2
	g[5][8] = t3
}
