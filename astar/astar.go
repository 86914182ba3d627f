// Package astar implements A* shortest-path search between two cells of a
// maze grid, processing frontier cells in order of estimated total cost
// using a min-heap priority queue.
package astar

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/saaninko/maze-solver/maze"
)

// infCost is the "not yet reached" sentinel for score maps. It is
// distinguishable from every achievable cost, which is bounded by the cell
// count of the grid.
const infCost = int64(math.MaxInt64)

// stepCost is the uniform cost of one cardinal move.
const stepCost = int64(1)

// Search computes the cheapest route from start to exit over m, moving only
// through traversable cells (see maze.Maze.IsTraversable). The start cell is
// exempt from the traversability rule: an entry marker is a legal origin.
//
// Returns:
//
//   - Path: next-step links from every route cell toward the exit; empty
//     when the exit is unreachable from start.
//   - err: ErrNilMaze or ErrOutOfBounds for invalid input, or the context's
//     error if cancellation fired mid-search.
//
// Identical inputs always yield an identical Path: the frontier orders
// entries by (estimate, heuristic, row, column), a total order, so ties
// never depend on map iteration or heap internals.
//
// Complexity:
//
//   - Time:  O(W×H log(W×H)), each improvement pushes one frontier entry.
//   - Space: O(W×H) for the score and predecessor maps.
func Search(m *maze.Maze, start, exit maze.Point, opts ...Option) (Path, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if m == nil {
		return nil, ErrNilMaze
	}
	if !m.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v", ErrOutOfBounds, start)
	}
	if !m.InBounds(exit) {
		return nil, fmt.Errorf("%w: exit %v", ErrOutOfBounds, exit)
	}

	// 3) Coinciding endpoints form a trivial zero-move route.
	if start == exit {
		return Path{start: nil}, nil
	}

	// 4) Prepare the mutable search state.
	cells := m.Height() * m.Width()
	s := &searcher{
		m:        m,
		options:  cfg,
		start:    start,
		exit:     exit,
		gScore:   make(map[maze.Point]int64, cells),
		fScore:   make(map[maze.Point]int64, cells),
		cameFrom: make(map[maze.Point]maze.Point),
		pq:       make(pointPQ, 0, cells),
	}

	// 5) Seed scores and the frontier, then run the main loop.
	s.init()
	if err := s.run(); err != nil {
		return nil, err
	}

	// 6) Invert predecessor links into next-step links, exit back to start.
	return s.trace(), nil
}

// searcher holds the mutable state for a single Search execution.
type searcher struct {
	m        *maze.Maze                // the grid; read-only during a search
	options  Options                   // per-run configuration
	start    maze.Point                // route origin
	exit     maze.Point                // route target
	gScore   map[maze.Point]int64      // best known move cost from start
	fScore   map[maze.Point]int64      // gScore plus heuristic to exit
	cameFrom map[maze.Point]maze.Point // best predecessor per reached cell
	pq       pointPQ                   // min-heap frontier, lazy decrease-key
}

// init defaults every cell's scores to the infinity sentinel, scores the
// start, and seeds the frontier with it.
func (s *searcher) init() {
	// 1) Every cell starts unreached.
	var p maze.Point
	for p.Row = 0; p.Row < s.m.Height(); p.Row++ {
		for p.Col = 0; p.Col < s.m.Width(); p.Col++ {
			s.gScore[p] = infCost
			s.fScore[p] = infCost
		}
	}

	// 2) Reaching the start is free; its estimate is pure heuristic.
	h := int64(s.start.Manhattan(s.exit))
	s.gScore[s.start] = 0
	s.fScore[s.start] = h

	// 3) Seed the frontier.
	heap.Init(&s.pq)
	heap.Push(&s.pq, &openItem{f: h, h: h, p: s.start})
}

// run pops the most promising frontier entry until the exit surfaces or the
// frontier drains. Duplicate stale entries are harmless: relaxation accepts
// strict improvements only, so a stale pop relaxes nothing.
func (s *searcher) run() error {
	for s.pq.Len() > 0 {
		// Cancellation check (once per pop).
		select {
		case <-s.options.Ctx.Done():
			return s.options.Ctx.Err()
		default:
		}

		// 1) Pop the entry with the smallest (f, h, row, col).
		item := heap.Pop(&s.pq).(*openItem)

		// 2) First exit pop is optimal: the Manhattan heuristic is
		//    consistent on a unit grid, so estimates never shrink.
		if item.p == s.exit {
			return nil
		}

		// 3) Relax the popped cell's neighbors.
		s.relax(item.p)
	}

	return nil
}

// relax attempts to improve the estimate of every traversable neighbor of u,
// recording predecessor links and pushing improved entries onto the frontier.
func (s *searcher) relax(u maze.Point) {
	tg := s.gScore[u] + stepCost
	var h, tf int64
	for _, v := range s.m.Neighbors(u) {
		h = int64(v.Manhattan(s.exit))
		tf = tg + h

		// Strict improvement only; equal-cost rediscoveries stay put.
		if tf >= s.fScore[v] {
			continue
		}

		s.gScore[v] = tg
		s.fScore[v] = tf
		s.cameFrom[v] = u
		heap.Push(&s.pq, &openItem{f: tf, h: h, p: v})
	}
}

// trace walks the predecessor links from the exit back to the start and
// inverts them into next-step links. A route exists only if the exit was
// entered from a neighbor, so an exit absent from cameFrom yields an empty
// Path, as does a broken link chain.
func (s *searcher) trace() Path {
	if _, ok := s.cameFrom[s.exit]; !ok {
		return Path{}
	}

	path := Path{s.exit: nil}
	cell := s.exit
	for cell != s.start {
		prev, ok := s.cameFrom[cell]
		if !ok {
			return Path{}
		}
		next := cell
		path[prev] = &next
		cell = prev
	}

	return path
}

// openItem is one frontier entry: a cell plus the scores that order it.
type openItem struct {
	f int64      // estimated total cost through the cell: primary order
	h int64      // heuristic to the exit: first tiebreak
	p maze.Point // the cell itself: final tiebreak, row then column
}

// pointPQ is a min-heap (priority queue) of *openItem under the
// lazy-decrease-key pattern: improved estimates push fresh entries, and
// outdated ones lose every comparison until popped and discarded.
type pointPQ []*openItem

// Len returns the number of items in the heap.
func (pq pointPQ) Len() int { return len(pq) }

// Less orders entries by (f, h, row, col). The comparison is a total order
// over distinct entries, which pins the pop sequence regardless of push
// interleaving.
func (pq pointPQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.h != b.h {
		return a.h < b.h
	}
	if a.p.Row != b.p.Row {
		return a.p.Row < b.p.Row
	}

	return a.p.Col < b.p.Col
}

// Swap swaps two elements in the heap.
func (pq pointPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *openItem.
func (pq *pointPQ) Push(x interface{}) { *pq = append(*pq, x.(*openItem)) }

// Pop removes and returns the smallest element from the heap.
// Called by heap.Pop; returns interface{} that must be cast to *openItem.
func (pq *pointPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
