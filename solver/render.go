package solver

import (
	"strings"

	"github.com/saaninko/maze-solver/astar"
	"github.com/saaninko/maze-solver/maze"
)

// Render returns a copy of the grid rows with every cell on path replaced by
// the maze.Visited glyph, start and exit markers included. Cells off the
// path stay byte-identical to the input, and an empty path returns the rows
// unmarked. The maze itself is never mutated.
//
// The visited glyph is a multi-byte rune, so rendered rows are display
// strings: their byte length may exceed the grid width.
//
// Complexity: O(W×H).
func Render(m *maze.Maze, path astar.Path) []string {
	rows := m.Rows()
	if len(path) == 0 {
		return rows
	}

	var sb strings.Builder
	for r := range rows {
		sb.Reset()
		sb.Grow(len(rows[r]) + 2*len(path))
		for c := 0; c < len(rows[r]); c++ {
			if path.Contains(maze.Point{Row: r, Col: c}) {
				sb.WriteRune(maze.Visited)
			} else {
				sb.WriteByte(rows[r][c])
			}
		}
		rows[r] = sb.String()
	}

	return rows
}
