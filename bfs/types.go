// Package bfs provides tunable options and error definitions
// for the escape search over a gridgraph.Grid.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/textcircle/gridgraph"
)

// Sentinel errors for the escape search.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrGridShape is returned when the grid has no unique centre cell.
	ErrGridShape = errors.New("bfs: grid must be square with an odd side length")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by PathTo for a cell the search never discovered.
	ErrNotReached = errors.New("bfs: location not reached")
)

// Option configures the search via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when Escape is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize the search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a cell is discovered, before it is checked.
	// Receives the cell and its hop count from the centre.
	OnEnqueue func(l gridgraph.Location, depth int)

	// OnDequeue is called immediately before checking a cell.
	OnDequeue func(l gridgraph.Location, depth int)

	// OnVisit is called when checking a cell. If it returns an error,
	// the search aborts and propagates that error.
	OnVisit func(l gridgraph.Location, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip moves by returning false.
	FilterNeighbor func(curr, next gridgraph.Location) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all moves allowed)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnEnqueue:      func(gridgraph.Location, int) {},
		OnDequeue:      func(gridgraph.Location, int) {},
		OnVisit:        func(gridgraph.Location, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ gridgraph.Location) bool { return true },
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

// WithOnEnqueue registers a callback to run on discovery.
func WithOnEnqueue(fn func(l gridgraph.Location, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(l gridgraph.Location, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on check; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(l gridgraph.Location, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips moves when fn returns false.
func WithFilterNeighbor(fn func(curr, next gridgraph.Location) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// PathStep is one node of the search tree. Parent is a key into
// Result.Steps and is meaningful only when HasParent is true; the centre
// is the only step without a parent.
type PathStep struct {
	Location  gridgraph.Location
	Parent    gridgraph.Location
	HasParent bool
	Distance  int
}

// Result holds the outcome of an escape search:
//   - Start: the centre cell the search began from.
//   - Background: the symbol at Start; only cells holding it are walked.
//   - Found/Exit: whether and where a border cell was reached.
//   - Order: cells checked, in visit sequence.
//   - Steps: every discovered cell, keyed by location.
type Result struct {
	Start      gridgraph.Location
	Background rune
	Found      bool
	Exit       gridgraph.Location
	Order      []gridgraph.Location
	Steps      map[gridgraph.Location]PathStep
}

// PathTo reconstructs the path from Start to dest by following parent keys.
// Returns ErrNotReached if dest was never discovered.
func (r *Result) PathTo(dest gridgraph.Location) ([]gridgraph.Location, error) {
	step, ok := r.Steps[dest]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNotReached, dest)
	}
	// build reversed path
	path := make([]gridgraph.Location, 0, step.Distance+1)
	for {
		path = append(path, step.Location)
		if !step.HasParent {
			break
		}
		step = r.Steps[step.Parent]
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Path returns the escape path from Start to Exit, or nil when no border
// cell was reached.
func (r *Result) Path() []gridgraph.Location {
	if !r.Found {
		return nil
	}
	path, _ := r.PathTo(r.Exit)
	return path
}
