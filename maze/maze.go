package maze

import "fmt"

// neighborOffsets enumerates the four cardinal moves in fixed order:
// down, up, right, left. Scan order is part of the contract: it fixes
// tie-breaking everywhere neighbors are expanded.
var neighborOffsets = [4]struct{ dr, dc int }{
	{1, 0},  // down
	{-1, 0}, // up
	{0, 1},  // right
	{0, -1}, // left
}

// New validates rows as a rectangular grid and returns an immutable Maze.
//
// Errors:
//   - ErrEmptyMaze if rows is empty or the first row has zero length;
//   - ErrNonRectangular if any row's length differs from the first.
//
// The input slice is copied, so callers may reuse or mutate rows afterwards.
func New(rows []string) (*Maze, error) {
	// 1) Reject degenerate input.
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyMaze
	}

	// 2) Enforce rectangularity against the first row.
	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d",
				ErrNonRectangular, i, len(row), width)
		}
	}

	// 3) Copy the row slice; strings themselves are immutable.
	cp := make([]string, len(rows))
	copy(cp, rows)

	return &Maze{rows: cp, height: len(cp), width: width}, nil
}

// Height returns the number of rows.
func (m *Maze) Height() int { return m.height }

// Width returns the number of columns.
func (m *Maze) Width() int { return m.width }

// Rows returns a copy of the grid rows, top to bottom.
func (m *Maze) Rows() []string {
	cp := make([]string, len(m.rows))
	copy(cp, m.rows)
	return cp
}

// At returns the glyph at p. The caller must ensure p is in bounds;
// out-of-range coordinates panic, as with any slice index.
func (m *Maze) At(p Point) byte {
	return m.rows[p.Row][p.Col]
}

// InBounds reports whether p lies inside the grid.
func (m *Maze) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < m.height && p.Col >= 0 && p.Col < m.width
}

// IsTraversable reports whether p is a cell a path may step onto: in bounds
// and holding Space or Exit. Walls block, and so do Start markers: an entry
// opening is only ever a path's origin, never an intermediate step.
func (m *Maze) IsTraversable(p Point) bool {
	if !m.InBounds(p) {
		return false
	}
	c := m.At(p)
	return c == Space || c == Exit
}

// Neighbors returns p's traversable cardinal neighbors in fixed order:
// down, up, right, left. Cells outside the grid or blocked are skipped.
// Complexity: O(1), at most four candidates.
func (m *Maze) Neighbors(p Point) []Point {
	out := make([]Point, 0, 4)
	for _, d := range neighborOffsets {
		q := Point{Row: p.Row + d.dr, Col: p.Col + d.dc}
		if m.IsTraversable(q) {
			out = append(out, q)
		}
	}
	return out
}
