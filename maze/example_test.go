// File: maze/example_test.go
package maze_test

import (
	"fmt"

	"github.com/saaninko/maze-solver/maze"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Openings
////////////////////////////////////////////////////////////////////////////////

// ExampleMaze_Openings locates the entry and exit markers on the border of a
// small corridor maze.
// Scenario:
//
//   - '^' sits on the bottom border, 'E' on the top border.
//   - Both scans return border cells in fixed order, so output is stable.
//
// Complexity: O(W+H)
func ExampleMaze_Openings() {
	m, _ := maze.New([]string{
		"######E#",
		"#      #",
		"# #### #",
		"# #### #",
		"#      #",
		"######^#",
	})

	starts, _ := m.Openings(maze.Start)
	exits, _ := m.Openings(maze.Exit)
	fmt.Println("starts:", starts)
	fmt.Println("exits:", exits)

	// Output:
	// starts: [(5,6)]
	// exits: [(0,6)]
}

////////////////////////////////////////////////////////////////////////////////
// Example: Neighbors
////////////////////////////////////////////////////////////////////////////////

// ExampleMaze_Neighbors expands the cell above the start marker and shows the
// fixed down, up, right, left candidate order after filtering.
func ExampleMaze_Neighbors() {
	m, _ := maze.New([]string{
		"#E#",
		"# #",
		"#^#",
	})

	fmt.Println(m.Neighbors(maze.Point{Row: 1, Col: 1}))

	// Output:
	// [(0,1)]
}

// ExamplePoint_Manhattan computes the heuristic distance between two cells.
func ExamplePoint_Manhattan() {
	p := maze.Point{Row: 0, Col: 0}
	q := maze.Point{Row: 6, Col: 5}
	fmt.Println(p.Manhattan(q))

	// Output:
	// 11
}
