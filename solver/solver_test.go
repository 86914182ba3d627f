package solver_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saaninko/maze-solver/astar"
	"github.com/saaninko/maze-solver/maze"
	"github.com/saaninko/maze-solver/solver"
)

// corridorRows has a single entry, a single exit, and one 5-move corridor
// between them.
var corridorRows = []string{
	"######E#",
	"#      #",
	"# #### #",
	"# #### #",
	"#      #",
	"######^#",
}

// blockedRows is the same shape with the corridor walled off: both markers
// exist but no route connects them.
var blockedRows = []string{
	"######E#",
	"# #    #",
	"# #### #",
	"# ######",
	"#      #",
	"######^#",
}

// twoExitRows exposes one start and two exits at different distances:
// 5 moves to the left exit, 6 moves to the right one.
var twoExitRows = []string{
	"#E####E#",
	"#      #",
	"#      #",
	"###^####",
}

func mustMaze(t *testing.T, rows []string) *maze.Maze {
	t.Helper()
	m, err := maze.New(rows)
	require.NoError(t, err)
	return m
}

//----------------------------------------------------------------------------//
// FindPaths: validation
//----------------------------------------------------------------------------//

func TestFindPaths_NilMaze(t *testing.T) {
	_, err := solver.FindPaths(nil, 100)
	assert.ErrorIs(t, err, solver.ErrNilMaze)
}

func TestFindPaths_MissingStartIsFatal(t *testing.T) {
	m := mustMaze(t, []string{
		"####E###",
		"#      #",
		"########",
	})
	_, err := solver.FindPaths(m, 100)
	require.ErrorIs(t, err, maze.ErrNotSolvable)
	assert.Contains(t, err.Error(), "'^'")
}

func TestFindPaths_MissingExitIsFatal(t *testing.T) {
	m := mustMaze(t, []string{
		"####^###",
		"#      #",
		"########",
	})
	_, err := solver.FindPaths(m, 100)
	require.ErrorIs(t, err, maze.ErrNotSolvable)
	assert.Contains(t, err.Error(), "'E'")
}

func TestFindPaths_InvalidWorkers(t *testing.T) {
	m := mustMaze(t, corridorRows)
	_, err := solver.FindPaths(m, 100, solver.WithWorkers(0))
	assert.ErrorIs(t, err, solver.ErrOptionViolation)
}

//----------------------------------------------------------------------------//
// FindPaths: budget filter
//----------------------------------------------------------------------------//

func TestFindPaths_BudgetBoundaryInclusive(t *testing.T) {
	// The corridor route spends exactly 5 moves (6 cells).
	m := mustMaze(t, corridorRows)

	under, err := solver.FindPaths(m, 4)
	require.NoError(t, err)
	assert.Empty(t, under, "budget below the route's cost must exclude it")

	exact, err := solver.FindPaths(m, 5)
	require.NoError(t, err)
	require.Len(t, exact, 1, "budget equal to the route's cost must keep it")
	assert.Equal(t, 5, exact[0].Moves())

	over, err := solver.FindPaths(m, 6)
	require.NoError(t, err)
	assert.Len(t, over, 1)
}

func TestFindPaths_NegativeBudgetYieldsNothing(t *testing.T) {
	m := mustMaze(t, corridorRows)
	got, err := solver.FindPaths(m, -1)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFindPaths_UnreachablePairExcluded(t *testing.T) {
	// Both marker classes exist, but no route connects them: no candidates
	// at any budget, and no error.
	m := mustMaze(t, blockedRows)
	got, err := solver.FindPaths(m, 1_000_000)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFindPaths_MonotonicInBudget(t *testing.T) {
	// Candidates at budget B must all reappear, in order, at budget B' >= B.
	m := mustMaze(t, twoExitRows)

	small, err := solver.FindPaths(m, 5)
	require.NoError(t, err)
	require.Len(t, small, 1)

	large, err := solver.FindPaths(m, 6)
	require.NoError(t, err)
	require.Len(t, large, 2)
	assert.Equal(t, small[0], large[0], "smaller-budget candidates lead the larger set")
}

//----------------------------------------------------------------------------//
// FindPaths: ordering and quirks
//----------------------------------------------------------------------------//

func TestFindPaths_PairOrderPreserved(t *testing.T) {
	// Exits are discovered left to right on the first row, so the candidate
	// for (0,1) precedes the candidate for (0,6).
	m := mustMaze(t, twoExitRows)

	got, err := solver.FindPaths(m, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].Contains(maze.Point{Row: 0, Col: 1}))
	assert.True(t, got[1].Contains(maze.Point{Row: 0, Col: 6}))
}

func TestFindPaths_CornerMarkerSearchedTwice(t *testing.T) {
	// A corner '^' is reported once per border line, so its exit pair is
	// searched twice and both identical routes survive the filter.
	m := mustMaze(t, []string{
		"^###",
		"   E",
		"####",
	})

	got, err := solver.FindPaths(m, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, got[0], got[1])
}

//----------------------------------------------------------------------------//
// FindPaths: concurrency
//----------------------------------------------------------------------------//

func TestFindPaths_WorkersMatchSequential(t *testing.T) {
	m := mustMaze(t, twoExitRows)

	seq, err := solver.FindPaths(m, 10)
	require.NoError(t, err)

	par, err := solver.FindPaths(m, 10, solver.WithWorkers(4))
	require.NoError(t, err)

	assert.Equal(t, seq, par, "worker pool must reproduce sequential output")
}

func TestFindPaths_ContextCancelled(t *testing.T) {
	m := mustMaze(t, twoExitRows)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := solver.FindPaths(m, 10, solver.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	_, err = solver.FindPaths(m, 10, solver.WithContext(ctx), solver.WithWorkers(2))
	assert.ErrorIs(t, err, context.Canceled)
}

//----------------------------------------------------------------------------//
// Solve: selection and rendering
//----------------------------------------------------------------------------//

func TestSolve_RendersCorridor(t *testing.T) {
	m := mustMaze(t, corridorRows)

	best, rendered, err := solver.Solve(m, 38)
	require.NoError(t, err)
	require.Len(t, best, 6)

	want := []string{
		"######█#",
		"#     █#",
		"# ####█#",
		"# ####█#",
		"#     █#",
		"######█#",
	}
	assert.Equal(t, want, rendered)
}

func TestSolve_PicksShortestExit(t *testing.T) {
	// Budget admits both exits; the 5-move route to (0,1) must win over the
	// 6-move route to (0,6).
	m := mustMaze(t, twoExitRows)

	best, _, err := solver.Solve(m, 10)
	require.NoError(t, err)
	require.Len(t, best, 6)
	assert.True(t, best.Contains(maze.Point{Row: 0, Col: 1}))
	assert.False(t, best.Contains(maze.Point{Row: 0, Col: 6}))
}

func TestSolve_TieGoesToFirstCandidate(t *testing.T) {
	// Two exits at identical distance: the one discovered first wins.
	m := mustMaze(t, []string{
		"#E#E#",
		"#   #",
		"##^##",
	})

	best, _, err := solver.Solve(m, 10)
	require.NoError(t, err)
	require.Len(t, best, 4)
	assert.True(t, best.Contains(maze.Point{Row: 0, Col: 1}))
	assert.False(t, best.Contains(maze.Point{Row: 0, Col: 3}))
}

func TestSolve_NoSolutionLeavesGridUntouched(t *testing.T) {
	m := mustMaze(t, blockedRows)

	best, rendered, err := solver.Solve(m, 200)
	require.NoError(t, err)
	assert.Empty(t, best)
	assert.Equal(t, blockedRows, rendered)
}

func TestSolve_CellsOffPathUnchanged(t *testing.T) {
	m := mustMaze(t, corridorRows)

	best, rendered, err := solver.Solve(m, 38)
	require.NoError(t, err)
	require.NotEmpty(t, best)

	for r, row := range rendered {
		c := 0
		for _, glyph := range row {
			if glyph != maze.Visited {
				assert.Equal(t, rune(corridorRows[r][c]), glyph,
					"cell (%d,%d) off the path changed", r, c)
			} else {
				assert.True(t, best.Contains(maze.Point{Row: r, Col: c}),
					"cell (%d,%d) marked but not on the path", r, c)
			}
			c++
		}
	}
}

//----------------------------------------------------------------------------//
// Solve: bundled 19×37 maze end to end
//----------------------------------------------------------------------------//

func TestSolve_TaskFirstMaze(t *testing.T) {
	m, err := maze.ReadFile(filepath.Join("testdata", "maze-task-first.txt"))
	require.NoError(t, err)

	best, rendered, err := solver.Solve(m, 100)
	require.NoError(t, err)
	require.Len(t, best, 40, "winning route covers 40 cells (39 moves)")

	want := []string{
		"#######█########E####################",
		"# ### #███###### #    #     #     # E",
		"# ### ###█#      #  #    #     #    #",
		"# ### # #█# ###### ##################",
		"#        ███ #       #    #   #   # #",
		"#  # ##    █ # ##### #  # # # # # # #",
		"#  #       █ #   #   #  # # # # #   #",
		"#  ######  █###  #  ### # # # # ### #",
		"#  #    #  ███████████  #   #   #   #",
		"#  # ## ########   ##█###########   #",
		"#    ##          ### ███            #",
		"# ## #############  ###█  ####   ## #",
		"#  ### ##         #  #██#           #",
		"#  #   ## ####     #███ #      ###  #",
		"#  # #### #  #     #█   #####       #",
		"#  #      #      ###█          ##   #",
		"#  #####           #█  ##   #   #   #",
		"#                 ███               #",
		"##################█##################",
	}
	assert.Equal(t, want, rendered)
}

func TestSolve_TaskFirstMaze_WorkersAgree(t *testing.T) {
	m, err := maze.ReadFile(filepath.Join("testdata", "maze-task-first.txt"))
	require.NoError(t, err)

	seqBest, seqRendered, err := solver.Solve(m, 100)
	require.NoError(t, err)

	parBest, parRendered, err := solver.Solve(m, 100, solver.WithWorkers(3))
	require.NoError(t, err)

	assert.Equal(t, seqBest, parBest)
	assert.Equal(t, seqRendered, parRendered)
}

//----------------------------------------------------------------------------//
// Helpers under test support
//----------------------------------------------------------------------------//

// pathEndpoints confirms a candidate is a well-formed chain: exactly one nil
// link (the exit) and every other link pointing at another path cell.
func pathEndpoints(t *testing.T, p astar.Path) (exits int) {
	t.Helper()
	for _, next := range p {
		if next == nil {
			exits++
			continue
		}
		assert.True(t, p.Contains(*next), "link target %v missing from path", *next)
	}
	return exits
}

func TestFindPaths_CandidatesAreWellFormedChains(t *testing.T) {
	m := mustMaze(t, twoExitRows)
	got, err := solver.FindPaths(m, 10)
	require.NoError(t, err)
	for i, p := range got {
		assert.Equal(t, 1, pathEndpoints(t, p), "candidate %d", i)
	}
}
