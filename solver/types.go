// Package solver provides tunable options and error definitions for
// enumerating, selecting, and rendering maze solutions.
package solver

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for solution enumeration.
var (
	// ErrNilMaze is returned if a nil maze pointer is passed.
	ErrNilMaze = errors.New("solver: maze is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solver: invalid option supplied")
)

// Option configures enumeration behavior via functional arguments.
// If an Option is invalid (e.g. zero workers), it is recorded internally
// and surfaced as ErrOptionViolation when FindPaths or Solve is invoked.
type Option func(*Options)

// Options holds parameters to customize enumeration runs.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Workers bounds how many start/exit pairs are searched concurrently.
	// Pair searches share only the read-only grid, so they need no
	// synchronization beyond result placement. 1 keeps enumeration
	// fully sequential.
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns an Options with sane defaults:
//   - Context.Background()
//   - sequential enumeration (Workers == 1)
//   - no recorded option error.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: 1,
		err:     nil,
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

// WithWorkers sets how many start/exit pairs may be searched in parallel.
//
//	n > 1: bounded concurrency across pairs
//	n == 1: sequential enumeration (default)
//	n < 1: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}
