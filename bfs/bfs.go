// Package bfs provides breadth-first escape search over a gridgraph.Grid,
// returning hop distances, parent links, and visit order.
//
// The search starts at the centre cell, moves only through cells holding the
// centre's symbol, and stops at the first border cell it checks.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/textcircle/gridgraph"
)

// queueItem pairs a cell with its depth.
type queueItem struct {
	loc   gridgraph.Location
	depth int
}

// walker encapsulates mutable search state.
type walker struct {
	grid    *gridgraph.Grid
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited []bool
	res     *Result
}

// Escape runs the escape search on g from its centre cell, applying any
// number of functional Options.
// Returns ErrGridNil or ErrGridShape for invalid input, ErrOptionViolation
// for bad options, ctx.Err() on cancellation, or any hook error.
// Reaching no border cell is reported through Result.Found, not an error.
func Escape(g *gridgraph.Grid, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	h := g.Height()
	if !g.IsSquare() || h%2 == 0 {
		return nil, ErrGridShape
	}

	r := h / 2
	start := gridgraph.Loc(r, r)
	n := h * h
	w := &walker{
		grid:    g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &Result{
			Start:      start,
			Background: g.At(start),
			Order:      make([]gridgraph.Location, 0, n),
			Steps:      make(map[gridgraph.Location]PathStep, n),
		},
	}

	// Seed queue with the centre (no parent)
	w.enqueue(PathStep{Location: start})

	return w.res, w.loop()
}

// enqueue marks the step's cell visited, records it in the arena,
// calls OnEnqueue, and adds it to the queue.
func (w *walker) enqueue(step PathStep) {
	w.visited[w.grid.Index(step.Location)] = true
	w.res.Steps[step.Location] = step
	w.opts.OnEnqueue(step.Location, step.Distance)
	w.queue = append(w.queue, queueItem{loc: step.Location, depth: step.Distance})
}

// loop processes the queue until a border cell is checked, the queue
// empties, a hook fails, or the context is cancelled.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if w.grid.IsBorder(item.loc) {
			w.res.Found = true
			w.res.Exit = item.loc
			return nil
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.loc, item.depth)
	return item
}

// visit records the cell in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.loc)
	if err := w.opts.OnVisit(item.loc, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.loc, err)
	}
	return nil
}

// enqueueNeighbors discovers every unvisited 4-adjacent background cell,
// applying filtering and MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, next := range w.grid.Neighbors(item.loc) {
		if w.visited[w.grid.Index(next)] || w.grid.At(next) != w.res.Background {
			continue
		}
		if !w.opts.FilterNeighbor(item.loc, next) {
			continue
		}
		w.enqueue(PathStep{
			Location:  next,
			Parent:    item.loc,
			HasParent: true,
			Distance:  nextDepth,
		})
	}
}
