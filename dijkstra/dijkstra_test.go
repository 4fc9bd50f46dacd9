package dijkstra_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridkit/dijkstra"
	"github.com/katalvlaran/gridkit/grid"
)

func open4x4(t *testing.T) *grid.Grid[byte] {
	t.Helper()
	g, err := grid.FromText("....\n....\n....\n....")
	require.NoError(t, err)
	return g
}

func TestDijkstra_Validation(t *testing.T) {
	g := open4x4(t)

	_, _, err := dijkstra.Dijkstra[byte](nil, grid.Pt(0, 0), grid.Pt(1, 1))
	assert.ErrorIs(t, err, dijkstra.ErrNilGrid)

	_, _, err = dijkstra.Dijkstra(g, grid.Pt(-1, 0), grid.Pt(1, 1))
	assert.ErrorIs(t, err, dijkstra.ErrStartOutOfBounds)

	_, _, err = dijkstra.Dijkstra(g, grid.Pt(0, 0), grid.Pt(9, 9))
	assert.ErrorIs(t, err, dijkstra.ErrGoalOutOfBounds)

	_, _, err = dijkstra.Dijkstra(g, grid.Pt(0, 0), grid.Pt(1, 1),
		dijkstra.WithPassable(func(grid.Point) bool { return false }))
	assert.ErrorIs(t, err, dijkstra.ErrStartBlocked)

	_, _, err = dijkstra.Dijkstra(g, grid.Pt(0, 0), grid.Pt(1, 1),
		dijkstra.WithTurnCost(-1))
	assert.ErrorIs(t, err, dijkstra.ErrOptionViolation)

	_, _, err = dijkstra.Dijkstra(g, grid.Pt(0, 0), grid.Pt(1, 1),
		dijkstra.WithMaxCost(-1))
	assert.ErrorIs(t, err, dijkstra.ErrOptionViolation)
}

// TestDijkstra_UnitCosts reduces to BFS distance on an open grid.
func TestDijkstra_UnitCosts(t *testing.T) {
	g := open4x4(t)
	cost, path, err := dijkstra.Dijkstra(g, grid.Pt(0, 0), grid.Pt(3, 3),
		dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, int64(6), cost)
	require.Len(t, path, 7)
	assert.Equal(t, grid.Pt(0, 0), path[0])
	assert.Equal(t, grid.Pt(3, 3), path[6])
}

func TestDijkstra_NoReturnPath(t *testing.T) {
	g := open4x4(t)
	cost, path, err := dijkstra.Dijkstra(g, grid.Pt(0, 0), grid.Pt(3, 0))
	require.NoError(t, err)
	assert.Equal(t, int64(3), cost)
	assert.Nil(t, path)
}

func TestDijkstra_StartIsGoal(t *testing.T) {
	g := open4x4(t)
	cost, path, err := dijkstra.Dijkstra(g, grid.Pt(2, 2), grid.Pt(2, 2),
		dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Zero(t, cost)
	assert.Equal(t, []grid.Point{grid.Pt(2, 2)}, path)
}

// TestDijkstra_EnterCosts uses a per-cell risk field: the cheapest route
// detours around the expensive middle row.
func TestDijkstra_EnterCosts(t *testing.T) {
	g, err := grid.New([]int64{
		1, 1, 1,
		9, 9, 1,
		1, 1, 1,
	}, 3)
	require.NoError(t, err)

	cost, _, err := dijkstra.Dijkstra(g, grid.Pt(0, 0), grid.Pt(0, 2),
		dijkstra.WithStepCost(func(_, to grid.Point) int64 { return g.At(to) }))
	require.NoError(t, err)
	// right, right, down(1), down, left, left = 1+1+1+1+1+1 = 6, vs 9+1 = 10 straight down
	assert.Equal(t, int64(6), cost)
}

func TestDijkstra_NegativeCost(t *testing.T) {
	g := open4x4(t)
	_, _, err := dijkstra.Dijkstra(g, grid.Pt(0, 0), grid.Pt(3, 3),
		dijkstra.WithStepCost(func(_, _ grid.Point) int64 { return -1 }))
	assert.ErrorIs(t, err, dijkstra.ErrNegativeCost)
}

func TestDijkstra_NoPath(t *testing.T) {
	g, err := grid.FromText(`
		.#.
		.#.
		.#.`)
	require.NoError(t, err)

	_, _, err = dijkstra.Dijkstra(g, grid.Pt(0, 0), grid.Pt(2, 0),
		dijkstra.WithPassable(func(p grid.Point) bool { return g.At(p) != '#' }))
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)
}

func TestDijkstra_MaxCost(t *testing.T) {
	g := open4x4(t)
	_, _, err := dijkstra.Dijkstra(g, grid.Pt(0, 0), grid.Pt(3, 3),
		dijkstra.WithMaxCost(5))
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)

	cost, _, err := dijkstra.Dijkstra(g, grid.Pt(0, 0), grid.Pt(3, 3),
		dijkstra.WithMaxCost(6))
	require.NoError(t, err)
	assert.Equal(t, int64(6), cost)
}

func TestDijkstra_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := dijkstra.Dijkstra(open4x4(t), grid.Pt(0, 0), grid.Pt(3, 3),
		dijkstra.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestDijkstra_TurnCost checks heading-aware pricing on a single row:
// facing Right, walking right is pure steps; walking down needs one turn.
func TestDijkstra_TurnCost(t *testing.T) {
	g := open4x4(t)

	cost, _, err := dijkstra.Dijkstra(g, grid.Pt(0, 0), grid.Pt(3, 0),
		dijkstra.WithTurnCost(100), dijkstra.WithHeading(grid.Right))
	require.NoError(t, err)
	assert.Equal(t, int64(3), cost, "no turns when the goal is straight ahead")

	cost, _, err = dijkstra.Dijkstra(g, grid.Pt(0, 0), grid.Pt(3, 3),
		dijkstra.WithTurnCost(100), dijkstra.WithHeading(grid.Right))
	require.NoError(t, err)
	assert.Equal(t, int64(106), cost, "6 steps plus exactly one turn")
}

// TestDijkstra_ReindeerMaze locks the classic turn-penalty maze: step cost
// 1, turn cost 1000, start facing Right; the cheapest route costs 7036.
func TestDijkstra_ReindeerMaze(t *testing.T) {
	g, err := grid.FromText(`
		###############
		#.......#....E#
		#.#.###.#.###.#
		#.....#.#...#.#
		#.###.#####.#.#
		#.#.#.......#.#
		#.#.#####.###.#
		#...........#.#
		###.#.#####.#.#
		#...#.....#.#.#
		#.#.#.###.#.#.#
		#.....#...#.#.#
		#.###.#.#.#.#.#
		#S..#.....#...#
		###############`)
	require.NoError(t, err)

	start, ok := grid.Find(g, byte('S'))
	require.True(t, ok)
	end, ok := grid.Find(g, byte('E'))
	require.True(t, ok)

	cost, path, err := dijkstra.Dijkstra(g, start, end,
		dijkstra.WithPassable(func(p grid.Point) bool { return g.At(p) != '#' }),
		dijkstra.WithTurnCost(1000),
		dijkstra.WithHeading(grid.Right),
		dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, int64(7036), cost)
	assert.Equal(t, start, path[0])
	assert.Equal(t, end, path[len(path)-1])
}
