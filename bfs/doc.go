// Package bfs provides the breadth-first escape search over a gridgraph.Grid:
// starting at the centre cell, it walks 4-adjacent cells that hold the same
// (background) symbol and stops at the first cell on the grid's border.
//
// What
//
//   - Explore background cells in non-decreasing hop count from the centre.
//   - Returns a Result containing:
//   - Found: whether a border cell was reached
//   - Exit:  the border cell reached first
//   - Order: the cells checked, in visit sequence
//   - Steps: an arena of PathStep keyed by Location; each step stores its
//     parent as a Location key, never as a pointer
//   - Path() walks parent keys from Exit back to the centre.
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a cell is discovered)
//   - OnDequeue (immediately before checking)
//   - OnVisit   (when checking; may abort with an error)
//   - Allows pruning of individual moves via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Determinism
//
//	The queue is FIFO and neighbours are enqueued in N, E, S, W order (see
//	gridgraph.Grid.NeighborOffsets). Among several equally short escape
//	paths the one reported is therefore always the same.
//
// “No path” is not an error: Found is false and Steps holds the whole
// enclosed region.
//
// Complexity (N = number of cells)
//
//   - Time:   O(N)   (each cell is enqueued at most once, 4 neighbours each)
//   - Memory: O(N)   (queue, visited flags, Steps arena)
//
// Usage
//
//	res, err := bfs.Escape(g)
//	if err != nil {
//	    // ErrGridNil, ErrGridShape, ErrOptionViolation, ctx.Err() or a hook error
//	}
//	if res.Found {
//	    path := res.Path() // centre → border
//	}
//
// Options
//
//   - DefaultOptions(): background Context, no-op hooks, no depth limit, no filtering.
//   - WithContext(ctx):         set a custom context for cancellation.
//   - WithMaxDepth(d):          stop exploring beyond depth d (>0).
//   - WithFilterNeighbor(fn):   skip moves for which fn(curr, next)==false.
//   - WithOnEnqueue(fn):        hook when a cell is discovered.
//   - WithOnDequeue(fn):        hook immediately before checking a cell.
//   - WithOnVisit(fn):          hook during check; returning error aborts the search.
package bfs
