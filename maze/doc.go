// Package maze models a rectangular ASCII maze and the cell-level queries
// every search over it needs.
//
// What:
//
//   - Maze wraps a validated, immutable []string grid of single-byte glyphs.
//   - Point addresses a cell by zero-based (row, column); Manhattan gives the
//     admissible distance estimate used by A*.
//   - Openings scans the outer border for entry ('^') and exit ('E') markers.
//   - ReadFile loads a grid from a .txt file with strict precondition checks.
//
// Why:
//
//   - Puzzle solving: pathfinding over hand-drawn or generated mazes.
//   - Deterministic pipelines: fixed neighbor and border-scan order makes
//     every downstream search reproducible byte for byte.
//
// Glyphs:
//
//   - '#' Wall (blocked), ' ' Space (open), '^' Start, 'E' Exit.
//   - '█' Visited marks solution cells in rendered output only.
//
// Complexity:
//
//   - New:        O(W×H) validation, Memory: O(H) row headers.
//   - Openings:   O(W+H), Memory: O(openings).
//   - Neighbors:  O(1), at most four candidates per cell.
//
// Errors:
//
//   - ErrEmptyMaze: no rows, or zero-width rows.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrNotSolvable: a border scan found no opening for a marker.
//   - ErrFileNotFound: the maze file does not exist.
//   - ErrBadExtension: the maze file is not a .txt file.
package maze
