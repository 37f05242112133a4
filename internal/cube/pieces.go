package cube

// cell is a single grid coordinate.
type cell struct{ row, col int }

// CornerCells lists, for each of the 8 corner positions, the three grid
// cells its facelets occupy. Index 0 of each triple is always the
// facelet on the U or D face, matching the convention coord uses to
// compute orientation (0 means that facelet sits on U or D); indices 1
// and 2 follow clockwise around the corner, seen from outside the cube.
//
// Order: UFL, UFR, UBR, UBL, DFL, DFR, DBR, DBL.
var CornerCells = [8][3]cell{
	{{2, 3}, {3, 3}, {3, 2}}, // UFL
	{{2, 5}, {3, 6}, {3, 5}}, // UFR
	{{0, 5}, {3, 9}, {3, 8}}, // UBR
	{{0, 3}, {3, 0}, {3, 11}}, // UBL
	{{6, 3}, {5, 2}, {5, 3}}, // DFL
	{{6, 5}, {5, 5}, {5, 6}}, // DFR
	{{8, 5}, {5, 8}, {5, 9}}, // DBR
	{{8, 3}, {5, 11}, {5, 0}}, // DBL
}

// EdgeCells lists, for each of the 12 edge positions, the two grid cells
// its facelets occupy. Index 0 is always the facelet on U/D for the eight
// edges touching those faces, or on F/B for the four equatorial edges,
// matching the convention coord uses for orientation.
//
// Order: UF, UR, UB, UL, DF, DR, DB, DL, FR, FL, BR, BL.
var EdgeCells = [12][2]cell{
	{{2, 4}, {3, 4}},   // UF
	{{1, 5}, {3, 7}},   // UR
	{{0, 4}, {3, 10}},  // UB
	{{1, 3}, {3, 1}},   // UL
	{{6, 4}, {5, 4}},   // DF
	{{7, 5}, {5, 7}},   // DR
	{{8, 4}, {5, 10}},  // DB
	{{7, 3}, {5, 1}},   // DL
	{{4, 5}, {4, 6}},   // FR
	{{4, 3}, {4, 2}},   // FL
	{{4, 9}, {4, 8}},   // BR
	{{4, 11}, {4, 0}},  // BL
}

// CornerAt returns the three facelet colors at corner position pos, in
// CornerCells order.
func (c *Cube) CornerAt(pos int) [3]Color {
	cells := CornerCells[pos]
	return [3]Color{
		c.Sticker(cells[0].row, cells[0].col),
		c.Sticker(cells[1].row, cells[1].col),
		c.Sticker(cells[2].row, cells[2].col),
	}
}

// EdgeAt returns the two facelet colors at edge position pos, in
// EdgeCells order.
func (c *Cube) EdgeAt(pos int) [2]Color {
	cells := EdgeCells[pos]
	return [2]Color{
		c.Sticker(cells[0].row, cells[0].col),
		c.Sticker(cells[1].row, cells[1].col),
	}
}

// SetCornerAt writes the three facelet colors at corner position pos, in
// CornerCells order. Used by coord to synthesize a cube from an abstract
// piece arrangement when building move-transition tables.
func (c *Cube) SetCornerAt(pos int, colors [3]Color) {
	cells := CornerCells[pos]
	for i, cl := range cells {
		c.SetSticker(cl.row, cl.col, colors[i])
	}
}

// SetEdgeAt writes the two facelet colors at edge position pos, in
// EdgeCells order.
func (c *Cube) SetEdgeAt(pos int, colors [2]Color) {
	cells := EdgeCells[pos]
	for i, cl := range cells {
		c.SetSticker(cl.row, cl.col, colors[i])
	}
}
