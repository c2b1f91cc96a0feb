package bfs_test

import (
	"context"
	"errors"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/textcircle/bfs"
	"github.com/katalvlaran/textcircle/gridgraph"
)

const (
	diamondClosed  = "..#..\n.#.#.\n#...#\n.#.#.\n..#.."
	diamondTopGap  = ".....\n.#.#.\n#...#\n.#.#.\n..#.."
	diamondEastGap = "..#..\n.#.#.\n#....\n.#.#.\n..#.."
	openField      = ".....\n.....\n.....\n.....\n....."
)

func mustParse(t testing.TB, text string) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.Parse(text)
	require.NoError(t, err)
	return g
}

func locs(xy ...int) []gridgraph.Location {
	out := make([]gridgraph.Location, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, gridgraph.Loc(xy[i], xy[i+1]))
	}
	return out
}

// TestEscape_Errors verifies that invalid inputs and options are rejected.
func TestEscape_Errors(t *testing.T) {
	// nil grid
	if _, err := bfs.Escape(nil); !errors.Is(err, bfs.ErrGridNil) {
		t.Errorf("nil grid: want ErrGridNil, got %v", err)
	}
	// even side
	if _, err := bfs.Escape(mustParse(t, "..\n..")); !errors.Is(err, bfs.ErrGridShape) {
		t.Errorf("even side: want ErrGridShape, got %v", err)
	}
	// ragged
	if _, err := bfs.Escape(mustParse(t, "...\n..\n...")); !errors.Is(err, bfs.ErrGridShape) {
		t.Errorf("ragged: want ErrGridShape, got %v", err)
	}
	// negative MaxDepth is a violation
	if _, err := bfs.Escape(mustParse(t, openField), bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestEscape_ClosedRing checks that an enclosed centre reports no path and
// that the whole inner region is explored.
func TestEscape_ClosedRing(t *testing.T) {
	res, err := bfs.Escape(mustParse(t, diamondClosed))
	require.NoError(t, err)

	assert.False(t, res.Found)
	assert.Nil(t, res.Path())
	assert.Equal(t, '.', res.Background)
	assert.Equal(t, gridgraph.Loc(2, 2), res.Start)
	assert.Equal(t, locs(2, 2, 2, 1, 3, 2, 2, 3, 1, 2), res.Order)
	assert.Len(t, res.Steps, 5)
}

// TestEscape_TopGap follows the only way out through (2, 0).
func TestEscape_TopGap(t *testing.T) {
	res, err := bfs.Escape(mustParse(t, diamondTopGap))
	require.NoError(t, err)

	require.True(t, res.Found)
	assert.Equal(t, gridgraph.Loc(2, 0), res.Exit)
	assert.Equal(t, locs(2, 2, 2, 1, 2, 0), res.Path())
	assert.Equal(t, 2, res.Steps[res.Exit].Distance)
}

// TestEscape_EastGap checks the visit order when the exit is discovered last.
func TestEscape_EastGap(t *testing.T) {
	res, err := bfs.Escape(mustParse(t, diamondEastGap))
	require.NoError(t, err)

	require.True(t, res.Found)
	assert.Equal(t, locs(2, 2, 2, 1, 3, 2, 2, 3, 1, 2, 4, 2), res.Order)
	assert.Equal(t, locs(2, 2, 3, 2, 4, 2), res.Path())
}

// TestEscape_TieBreak shows that among equally short paths, north wins.
func TestEscape_TieBreak(t *testing.T) {
	for i := 0; i < 3; i++ {
		res, err := bfs.Escape(mustParse(t, openField))
		require.NoError(t, err)
		assert.Equal(t, locs(2, 2, 2, 1, 2, 0), res.Path())
	}
}

// TestEscape_SingleCentre covers a ring whose background is only the centre.
func TestEscape_SingleCentre(t *testing.T) {
	res, err := bfs.Escape(mustParse(t, "aaa\naba\naaa"))
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, 'b', res.Background)
	assert.Len(t, res.Steps, 1)

	res, err = bfs.Escape(mustParse(t, "...\n...\n..."))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, locs(1, 1, 1, 0), res.Path())
}

// TestEscape_MaxDepth verifies WithMaxDepth cuts the search short.
func TestEscape_MaxDepth(t *testing.T) {
	g := mustParse(t, openField)

	res, err := bfs.Escape(g, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Len(t, res.Steps, 5)

	res, err = bfs.Escape(g, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.True(t, res.Found)

	res, err = bfs.Escape(g, bfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.True(t, res.Found)
}

// TestEscape_FilterNeighbor forbids moving north, pushing the exit east.
func TestEscape_FilterNeighbor(t *testing.T) {
	res, err := bfs.Escape(mustParse(t, openField),
		bfs.WithFilterNeighbor(func(curr, next gridgraph.Location) bool {
			return next.Y >= curr.Y
		}),
	)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, locs(2, 2, 3, 2, 4, 2), res.Path())
}

// TestEscape_Hooks asserts that hooks fire in the expected sequence and count.
func TestEscape_Hooks(t *testing.T) {
	var enq, deq, vis []string
	entry := func(l gridgraph.Location, d int) string {
		return l.String() + "@" + strconv.Itoa(d)
	}

	res, err := bfs.Escape(
		mustParse(t, diamondTopGap),
		bfs.WithOnEnqueue(func(l gridgraph.Location, d int) { enq = append(enq, entry(l, d)) }),
		bfs.WithOnDequeue(func(l gridgraph.Location, d int) { deq = append(deq, entry(l, d)) }),
		bfs.WithOnVisit(func(l gridgraph.Location, d int) error { vis = append(vis, entry(l, d)); return nil }),
	)
	require.NoError(t, err)
	require.True(t, res.Found)

	assert.Equal(t, "(2, 2)@0", enq[0])
	assert.Len(t, enq, len(res.Steps))
	assert.Equal(t, deq, vis)
	assert.Len(t, vis, len(res.Order))
	assert.True(t, strings.HasPrefix(vis[len(vis)-1], "(2, 0)"))
}

// TestEscape_OnVisitError checks that a hook error aborts and is wrapped.
func TestEscape_OnVisitError(t *testing.T) {
	boom := errors.New("boom")
	_, err := bfs.Escape(mustParse(t, openField),
		bfs.WithOnVisit(func(l gridgraph.Location, _ int) error {
			if l == gridgraph.Loc(2, 1) {
				return boom
			}
			return nil
		}),
	)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "(2, 1)")
}

// TestEscape_Cancellation verifies that a cancelled context halts the search.
func TestEscape_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate
	if _, err := bfs.Escape(mustParse(t, openField), bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("Cancellation: want context.Canceled, got %v", err)
	}
}

// TestResult_PathTo covers the trivial centre path and an unreached cell.
func TestResult_PathTo(t *testing.T) {
	res, err := bfs.Escape(mustParse(t, diamondClosed))
	require.NoError(t, err)

	path, err := res.PathTo(res.Start)
	require.NoError(t, err)
	assert.Equal(t, locs(2, 2), path)

	path, err = res.PathTo(gridgraph.Loc(1, 2))
	require.NoError(t, err)
	assert.Equal(t, locs(2, 2, 1, 2), path)

	_, err = res.PathTo(gridgraph.Loc(0, 0))
	assert.ErrorIs(t, err, bfs.ErrNotReached)
}

// TestEscape_RandomGrids cross-checks the search against region analysis on
// seeded random grids: a path exists exactly when the centre's region
// touches the border, and a reported path is a shortest 4-adjacent walk
// over background cells.
func TestEscape_RandomGrids(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		h := 3 + 2*rng.Intn(5)
		g := mustParse(t, randomGrid(rng, h))

		res, err := bfs.Escape(g)
		require.NoError(t, err)

		touches := false
		for _, region := range g.Regions(res.Background) {
			for _, l := range region {
				if l == res.Start {
					touches = g.TouchesBorder(region)
				}
			}
		}
		require.Equal(t, touches, res.Found, "grid:\n%s", strings.Join(g.Rows(), "\n"))
		if !res.Found {
			continue
		}

		path := res.Path()
		require.Equal(t, res.Start, path[0])
		require.True(t, g.IsBorder(path[len(path)-1]))
		for j, l := range path {
			require.Equal(t, res.Background, g.At(l))
			if j > 0 {
				require.Equal(t, 1, l.ManhattanDistance(path[j-1]))
			}
		}
		require.Equal(t, nearestBorder(g, res.Start), len(path)-1)
	}
}

// randomGrid fills an h×h grid with '.' (70%) and '#', forcing '.' at the centre.
func randomGrid(rng *rand.Rand, h int) string {
	rows := make([]string, h)
	for y := 0; y < h; y++ {
		var b strings.Builder
		for x := 0; x < h; x++ {
			if (x == h/2 && y == h/2) || rng.Intn(10) < 7 {
				b.WriteByte('.')
			} else {
				b.WriteByte('#')
			}
		}
		rows[y] = b.String()
	}
	return strings.Join(rows, "\n")
}

// nearestBorder runs an unrestricted BFS and returns the hop count to the
// closest reachable border cell, or -1.
func nearestBorder(g *gridgraph.Grid, start gridgraph.Location) int {
	sym := g.At(start)
	dist := map[gridgraph.Location]int{start: 0}
	queue := []gridgraph.Location{start}
	best := -1
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if g.IsBorder(u) && (best < 0 || dist[u] < best) {
			best = dist[u]
		}
		for _, v := range g.Neighbors(u) {
			if _, ok := dist[v]; ok || g.At(v) != sym {
				continue
			}
			dist[v] = dist[u] + 1
			queue = append(queue, v)
		}
	}
	return best
}

// TestEscape_ConcurrentSafety ensures concurrent runs on one grid do not interfere.
func TestEscape_ConcurrentSafety(t *testing.T) {
	g := mustParse(t, diamondTopGap)
	errs := make(chan error, 4)
	for i := 0; i < 4; i++ {
		go func() {
			res, err := bfs.Escape(g)
			if err == nil && !res.Found {
				err = errors.New("expected escape")
			}
			errs <- err
		}()
	}
	for i := 0; i < 4; i++ {
		if err := <-errs; err != nil {
			t.Errorf("Concurrent run #%d: unexpected error %v", i, err)
		}
	}
}
