// Package mazesolver is an ASCII-maze escape toolkit: parse a rectangular
// grid of walls and corridors, hunt the shortest route from an entry marker
// to an exit marker with A*, and print the route drawn over the original
// maze.
//
// 🚀 What is mazesolver?
//
//	A small, focused module that brings together:
//		• Grid parsing: strict rectangular validation, CRLF tolerance, .txt loading
//		• Border openings: locate '^' entries and 'E' exits on the outer wall
//		• A* search: Manhattan heuristic, unit move cost, deterministic routes
//		• Multi-pair hunts: every entry paired with every exit, optional workers
//		• Move budgets: inclusive per-tier filtering over an ascending ladder
//		• Rendering: the winning route drawn with '█' glyphs
//
// ✨ Why choose mazesolver?
//
//   - Beginner-friendly: minimal API, clear, intuitive naming
//   - Deterministic: the same maze always yields the same route
//   - Reproducible output: rendered rows are plain strings, easy to diff
//   - Context-aware: every search accepts cancellation via context.Context
//
// Everything is organized under five packages:
//
//	maze/   - the Maze grid, Point geometry, border openings & file loading
//	astar/  - single-pair A* search and the Path route type
//	solver/ - multi-pair enumeration, budget filtering, selection & rendering
//	config/ - YAML configuration with validated budget ladders
//	cmd/    - the mazesolver CLI: solve once or watch a file for edits
//
// Quick ASCII example:
//
//	##E##
//	#   #
//	##^##
//
//	escapes in two moves; the solver prints the maze with all three route
//	cells, markers included, drawn as '█'.
//
// Dive into README-style examples under examples/ and the package docs for
// invariants, complexity notes and error contracts.
//
//	go get github.com/saaninko/maze-solver
package mazesolver
