// Package astar computes cheapest routes between two cells of a maze grid
// with the A* algorithm, using the Manhattan distance as its heuristic.
//
// What:
//
//   - Search finds the cheapest start→exit route over a maze.Maze, where
//     every cardinal move costs one and only Space/Exit cells admit a step.
//   - Path encodes the result as next-step links: each route cell maps to
//     the cell one move closer to the exit; the exit maps to nil.
//   - An unreachable exit yields an empty Path, never an error.
//
// Why:
//
//   - Maze solving: the heuristic steers expansion toward the exit, visiting
//     a fraction of the cells an uninformed search would touch.
//   - Reproducible output: the frontier is ordered by the total order
//     (estimate, heuristic, row, column), so reruns trace identical routes,
//     tie or no tie.
//
// Algorithm notes:
//
//   - Score maps default every cell to a max-value sentinel standing in for
//     "infinity"; real costs are bounded by the grid's cell count.
//   - The frontier is a binary min-heap under lazy decrease-key: a strict
//     estimate improvement pushes a fresh entry, stale entries lose every
//     comparison and relax nothing when finally popped.
//   - No closed set is kept. The Manhattan heuristic is consistent on a
//     unit-cost grid, so the first pop of the exit is already optimal and
//     re-relaxing a popped cell cannot improve anything.
//
// Complexity:
//
//   - Time:  O(W×H log(W×H)), at most one push per strict improvement.
//   - Space: O(W×H) for score maps, predecessor links, and the frontier.
//
// Options:
//
//   - WithContext: cancellation and deadlines, checked once per pop.
//
// Errors (sentinel):
//
//   - ErrNilMaze      if the provided maze pointer is nil.
//   - ErrOutOfBounds  if start or exit lies outside the grid.
package astar
