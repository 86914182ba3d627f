// Package solver enumerates candidate routes between every entry/exit
// opening pair of a maze, filters them by a move budget, and picks and
// renders the winning route.
package solver

import (
	"golang.org/x/sync/errgroup"

	"github.com/saaninko/maze-solver/astar"
	"github.com/saaninko/maze-solver/maze"
)

// pair is one (start, exit) opening combination to search.
type pair struct {
	start, exit maze.Point
}

// FindPaths runs one A* search per (start, exit) opening pair and returns
// every route that fits the move budget.
//
// Pair order is fixed: start openings form the outer loop and exit openings
// the inner loop, both in border scan order, and the output preserves it.
// A pair whose exit is unreachable contributes nothing. A route spends
// len(path)-1 moves (the start cell is not a move) and is kept when
// moves <= maxMoves, so a negative budget yields no candidates.
//
// A marker class absent from the border is fatal to the whole enumeration:
// the error wraps maze.ErrNotSolvable and names the missing glyph.
//
// Complexity: O(S×E × W×H log(W×H)) for S starts and E exits.
func FindPaths(m *maze.Maze, maxMoves int, opts ...Option) ([]astar.Path, error) {
	// 1) Build options and catch any invalid ones immediately.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate the grid.
	if m == nil {
		return nil, ErrNilMaze
	}

	// 3) Locate openings. Either class missing aborts the solve attempt.
	starts, err := m.Openings(maze.Start)
	if err != nil {
		return nil, err
	}
	exits, err := m.Openings(maze.Exit)
	if err != nil {
		return nil, err
	}

	// 4) Lay out the pair cross product in its fixed order.
	pairs := make([]pair, 0, len(starts)*len(exits))
	for _, s := range starts {
		for _, e := range exits {
			pairs = append(pairs, pair{start: s, exit: e})
		}
	}

	// 5) Search every pair. Results land in an indexed slice so the
	//    concurrent mode reproduces sequential output exactly.
	found := make([]astar.Path, len(pairs))
	if cfg.Workers > 1 {
		g, gCtx := errgroup.WithContext(cfg.Ctx)
		g.SetLimit(cfg.Workers)
		for i, pr := range pairs {
			i, pr := i, pr // per-iteration copies for the closure (pre-go1.22 loop semantics)
			g.Go(func() error {
				path, serr := astar.Search(m, pr.start, pr.exit, astar.WithContext(gCtx))
				if serr != nil {
					return serr
				}
				found[i] = path

				return nil
			})
		}
		if err = g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i, pr := range pairs {
			if found[i], err = astar.Search(m, pr.start, pr.exit, astar.WithContext(cfg.Ctx)); err != nil {
				return nil, err
			}
		}
	}

	// 6) Keep reachable routes within budget, preserving pair order.
	candidates := make([]astar.Path, 0, len(found))
	for _, path := range found {
		if len(path) == 0 {
			continue
		}
		if path.Moves() <= maxMoves {
			candidates = append(candidates, path)
		}
	}

	return candidates, nil
}

// Solve enumerates candidates for maxMoves, selects the winner, and renders
// it onto a copy of the grid.
//
// Selection picks the candidate with the fewest cells; the first minimum in
// candidate order wins ties. With no candidates the returned path is empty
// and the rows come back as an unmarked copy, so callers can distinguish
// "unsolved" purely by the path.
//
// Returns:
//
//   - best: the winning route (empty when nothing fit the budget).
//   - rendered: grid rows with every route cell replaced by maze.Visited.
//   - err: enumeration failure (nil maze, bad option, missing marker class,
//     or context cancellation).
func Solve(m *maze.Maze, maxMoves int, opts ...Option) (astar.Path, []string, error) {
	candidates, err := FindPaths(m, maxMoves, opts...)
	if err != nil {
		return nil, nil, err
	}

	// First strict minimum wins; later equal-length candidates lose.
	var best astar.Path
	for _, c := range candidates {
		if best == nil || len(c) < len(best) {
			best = c
		}
	}

	return best, Render(m, best), nil
}
