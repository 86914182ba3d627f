// Package astar provides tunable options and error definitions
// for A* shortest-path search over a maze grid.
package astar

import (
	"context"
	"errors"

	"github.com/saaninko/maze-solver/maze"
)

// Sentinel errors for Search execution.
var (
	// ErrNilMaze is returned if a nil maze pointer is passed.
	ErrNilMaze = errors.New("astar: maze is nil")

	// ErrOutOfBounds is returned when a search endpoint lies outside the grid.
	ErrOutOfBounds = errors.New("astar: endpoint outside the grid")
)

// Path encodes one discovered route as next-step links: every key is a cell
// on the route, its value points at the cell one move closer to the exit,
// and the exit itself maps to nil. An empty Path means no route exists.
//
// len(Path) counts route cells including the start, so a route's move count
// is len(Path)-1.
type Path map[maze.Point]*maze.Point

// Moves returns the number of moves the route spends. The start cell itself
// is not a move. An empty Path reports zero moves.
func (p Path) Moves() int {
	if len(p) == 0 {
		return 0
	}

	return len(p) - 1
}

// Contains reports whether cell lies on the route.
func (p Path) Contains(cell maze.Point) bool {
	_, ok := p[cell]
	return ok
}

// Option configures Search behavior via functional arguments.
type Option func(*Options)

// Options holds parameters to customize a single Search run.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context
}

// DefaultOptions returns an Options with sane defaults:
//   - Context.Background()
func DefaultOptions() Options {
	return Options{
		Ctx: context.Background(),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
