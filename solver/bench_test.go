package solver_test

import (
	"path/filepath"
	"testing"

	"github.com/saaninko/maze-solver/maze"
	"github.com/saaninko/maze-solver/solver"
)

// BenchmarkSolve_TaskFirst measures a full solve of the bundled 19×37 maze
// (3 exit openings, 1 entry) at a budget every route fits under.
func BenchmarkSolve_TaskFirst(b *testing.B) {
	m, err := maze.ReadFile(filepath.Join("testdata", "maze-task-first.txt"))
	if err != nil {
		b.Fatalf("setup ReadFile failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err = solver.Solve(m, 200); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSolve_TaskFirstWorkers measures the same solve with pair searches
// fanned out on a small worker pool.
func BenchmarkSolve_TaskFirstWorkers(b *testing.B) {
	m, err := maze.ReadFile(filepath.Join("testdata", "maze-task-first.txt"))
	if err != nil {
		b.Fatalf("setup ReadFile failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err = solver.Solve(m, 200, solver.WithWorkers(3)); err != nil {
			b.Fatal(err)
		}
	}
}
