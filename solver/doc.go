// Package solver turns a parsed maze into a rendered solution: it pairs
// every entry opening with every exit opening, searches each pair, filters
// candidates by a move budget, and draws the winning route onto the grid.
//
// What:
//
//   - FindPaths enumerates budget-fitting routes for the full start×exit
//     cross product, in border scan order, optionally searching pairs on a
//     bounded worker pool.
//   - Solve picks the shortest candidate (first minimum wins ties) and
//     renders it; an unsolved grid comes back unmarked.
//   - Render copies the grid and stamps the '█' visited glyph over every
//     cell of one route.
//
// Why:
//
//   - Budget tiers: callers retry the whole enumeration with growing move
//     budgets, so enumeration must be cheap to rerun and deterministic
//     between reruns.
//   - Multiple markers: mazes may expose several entries and exits; the
//     cross product finds the globally shortest escape, not just the first.
//
// Concurrency:
//
//   - Pair searches never share mutable state: each owns its score maps and
//     frontier, and the grid is read-only. WithWorkers(n) therefore fans
//     pairs out safely; results land in an indexed slice, keeping output
//     order identical to the sequential mode.
//
// Complexity:
//
//   - FindPaths: O(S×E × W×H log(W×H)), Memory: O(W×H) per in-flight pair.
//   - Render:    O(W×H).
//
// Options:
//
//   - WithContext: cancellation and deadlines for the whole enumeration.
//   - WithWorkers: bounded pair-level parallelism (default sequential).
//
// Errors (sentinel):
//
//   - ErrNilMaze         if the provided maze pointer is nil.
//   - ErrOptionViolation if an invalid option is supplied.
//   - maze.ErrNotSolvable (wrapped) if a marker class is missing entirely.
package solver
