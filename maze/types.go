// Package maze defines the core grid types, glyph vocabulary, and sentinel
// errors for the maze-solver module.
package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for maze construction, border scans, and file loading.
var (
	// ErrEmptyMaze indicates the input has no rows or an empty first row.
	ErrEmptyMaze = errors.New("maze: grid must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")

	// ErrNotSolvable indicates a marker class (start or exit) is entirely
	// absent from the maze border, so no path can possibly exist.
	ErrNotSolvable = errors.New("maze: not solvable")

	// ErrFileNotFound indicates the maze file does not exist.
	ErrFileNotFound = errors.New("maze: file not found")

	// ErrBadExtension indicates the maze file is not a .txt file.
	ErrBadExtension = errors.New("maze: unexpected file format, want .txt")
)

// Glyphs recognized in maze input. Every cell of a well-formed maze holds
// one of these; start and exit markers may appear only on the outer border.
const (
	// Wall is an impassable cell.
	Wall byte = '#'
	// Space is a passable cell.
	Space byte = ' '
	// Start marks an entry opening on the border. A start cell is only ever
	// a path's origin; it is never traversable as a target.
	Start byte = '^'
	// Exit marks an exit opening on the border. Exit cells are traversable.
	Exit byte = 'E'
)

// Visited is the glyph solution cells carry in rendered output. It is a rune
// because the full-block character does not fit in a single byte.
const Visited rune = '█'

// Point identifies a single cell by zero-based (row, column) coordinates.
// It is a value type, usable as a map key and as a graph node identity.
type Point struct {
	Row, Col int
}

// Manhattan returns the Manhattan distance |Δrow| + |Δcol| between p and q.
// It is symmetric: p.Manhattan(q) == q.Manhattan(p).
// Complexity: O(1).
func (p Point) Manhattan(q Point) int {
	dr := p.Row - q.Row
	if dr < 0 {
		dr = -dr
	}
	dc := p.Col - q.Col
	if dc < 0 {
		dc = -dc
	}

	return dr + dc
}

// String renders the point as "(row,col)" for logs and test failures.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Maze is an immutable rectangular character grid. Height and width are fixed
// at construction; rows are never mutated afterwards; rendering a solution
// produces a fresh annotated copy instead (see the solver package).
type Maze struct {
	rows   []string
	height int
	width  int
}
