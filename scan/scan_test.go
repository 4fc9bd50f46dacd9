package scan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/scan"
)

// wordSearch is the classic 10×10 fixture: 18 XMAS rays and 9 X-MAS crosses.
const wordSearch = `MMMSXXMASM
MSAMXMSMSA
AMXSXMAAMM
MSAMASMSMX
XMASAMXAMM
XXAMMXXAMA
SMSMSASXSS
SAXAMASAAA
MAMMMXMMMM
MXMXAXMASX`

func fixture(t *testing.T) *grid.Grid[byte] {
	t.Helper()
	g, err := grid.FromText(wordSearch)
	require.NoError(t, err)
	return g
}

func TestCount_Errors(t *testing.T) {
	g := fixture(t)

	_, err := scan.Count[byte](nil, []byte("XMAS"))
	assert.ErrorIs(t, err, scan.ErrNilGrid)

	_, err = scan.Count(g, []byte{})
	assert.ErrorIs(t, err, scan.ErrEmptyTarget)

	_, err = scan.Count(g, []byte("XMAS"), scan.WithDirections(nil))
	assert.ErrorIs(t, err, scan.ErrOptionViolation)
}

func TestMatch(t *testing.T) {
	g, err := grid.FromText("XMAS\nM...\nA...\nS...")
	require.NoError(t, err)

	assert.True(t, scan.Match(g, grid.Pt(0, 0), grid.Right, []byte("XMAS")))
	assert.True(t, scan.Match(g, grid.Pt(0, 0), grid.Down, []byte("XMAS")))
	assert.False(t, scan.Match(g, grid.Pt(0, 0), grid.DownRight, []byte("XMAS")))

	// ray runs off the edge before the target is exhausted
	assert.False(t, scan.Match(g, grid.Pt(3, 0), grid.Right, []byte("S.")))
	assert.True(t, scan.Match(g, grid.Pt(3, 0), grid.Left, []byte("SAMX")))

	// degenerate inputs
	assert.False(t, scan.Match(g, grid.Pt(-1, 0), grid.Right, []byte("X")))
	assert.False(t, scan.Match(g, grid.Pt(0, 0), grid.Right, []byte{}))
}

func TestCount_WordSearch(t *testing.T) {
	n, err := scan.Count(fixture(t), []byte("XMAS"))
	require.NoError(t, err)
	assert.Equal(t, 18, n)
}

// TestCount_RestrictedDirections scans rows only: XMAS appears forwards
// (Right) or backwards (Left rays starting at the S).
func TestCount_RestrictedDirections(t *testing.T) {
	g, err := grid.FromText("XMASAMX")
	require.NoError(t, err)

	n, err := scan.Count(g, []byte("XMAS"),
		scan.WithDirections([]grid.Direction{grid.Right, grid.Left}))
	require.NoError(t, err)
	assert.Equal(t, 2, n, "one forwards, one backwards, sharing the S")

	n, err = scan.Count(g, []byte("XMAS"),
		scan.WithDirections([]grid.Direction{grid.Down}))
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCountCross_Errors(t *testing.T) {
	g := fixture(t)

	_, err := scan.CountCross[byte](nil, []byte("MAS"))
	assert.ErrorIs(t, err, scan.ErrNilGrid)

	_, err = scan.CountCross(g, []byte("MA"))
	assert.ErrorIs(t, err, scan.ErrBadArm)

	_, err = scan.CountCross(g, []byte("MASS"))
	assert.ErrorIs(t, err, scan.ErrBadArm)
}

func TestCountCross_WordSearch(t *testing.T) {
	n, err := scan.CountCross(fixture(t), []byte("MAS"))
	require.NoError(t, err)
	assert.Equal(t, 9, n)
}

// TestCountCross_Minimal checks one hand-built cross and its rejection when
// an arm breaks.
func TestCountCross_Minimal(t *testing.T) {
	g, err := grid.FromText("M.S\n.A.\nM.S")
	require.NoError(t, err)
	n, err := scan.CountCross(g, []byte("MAS"))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	g.Set(grid.Pt(2, 2), 'X')
	n, err = scan.CountCross(g, []byte("MAS"))
	require.NoError(t, err)
	assert.Zero(t, n)
}
