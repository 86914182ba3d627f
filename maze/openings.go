package maze

import "fmt"

// Openings scans the outer border for cells holding marker and returns them
// in fixed scan order: first column top to bottom, last column top to bottom,
// first row left to right, last row left to right.
//
// A marker sitting in a corner is reported once per border line it belongs
// to, so it may appear twice in the result. Callers tolerate duplicates:
// searching the same pair again finds the same path.
//
// Returns ErrNotSolvable, annotated with the marker glyph, when no border
// cell holds marker.
//
// Complexity: O(height + width).
func (m *Maze) Openings(marker byte) ([]Point, error) {
	var out []Point

	// 1) First and last columns.
	lastCol := m.width - 1
	for r := 0; r < m.height; r++ {
		if m.rows[r][0] == marker {
			out = append(out, Point{Row: r, Col: 0})
		}
	}
	for r := 0; r < m.height; r++ {
		if m.rows[r][lastCol] == marker {
			out = append(out, Point{Row: r, Col: lastCol})
		}
	}

	// 2) First and last rows.
	lastRow := m.height - 1
	for c := 0; c < m.width; c++ {
		if m.rows[0][c] == marker {
			out = append(out, Point{Row: 0, Col: c})
		}
	}
	for c := 0; c < m.width; c++ {
		if m.rows[lastRow][c] == marker {
			out = append(out, Point{Row: lastRow, Col: c})
		}
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no %q opening on the border", ErrNotSolvable, marker)
	}
	return out, nil
}
