package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridRejectsBadDimensions(t *testing.T) {
	_, err := NewGrid(0, 800, 800)
	assert.Error(t, err)

	_, err = NewGrid(25, 810, 800)
	assert.Error(t, err)

	_, err = NewGrid(25, 800, -25)
	assert.Error(t, err)
}

func TestGridDerivations(t *testing.T) {
	grid, err := NewGrid(25, 800, 800)
	require.NoError(t, err)

	assert.Equal(t, int32(32), grid.Columns())
	assert.Equal(t, int32(32), grid.Rows())
	assert.Equal(t, 1024, grid.TileCount())
	assert.Equal(t, int32(4), grid.ToCell(100))
	assert.Equal(t, int32(4), grid.ToCell(124))
}

func TestGridCellIndexRoundTrip(t *testing.T) {
	grid, err := NewGrid(25, 100, 50)
	require.NoError(t, err)

	for i := 0; i < grid.TileCount(); i++ {
		c := grid.CellAt(i)
		assert.True(t, grid.Contains(c))
		assert.True(t, grid.Aligned(c))
		assert.Equal(t, i, grid.IndexOf(c))
	}
	assert.Equal(t, Coord{75, 25}, grid.CellAt(7))
}

func TestGridContains(t *testing.T) {
	grid, err := NewGrid(25, 800, 800)
	require.NoError(t, err)

	assert.True(t, grid.Contains(Coord{0, 0}))
	assert.True(t, grid.Contains(Coord{775, 775}))
	assert.False(t, grid.Contains(Coord{800, 0}))
	assert.False(t, grid.Contains(Coord{0, 800}))
	assert.False(t, grid.Contains(Coord{-25, 0}))
	assert.False(t, grid.Contains(Coord{0, -25}))
}

func TestGridMove(t *testing.T) {
	grid, err := NewGrid(25, 800, 800)
	require.NoError(t, err)

	origin := Coord{100, 100}
	assert.Equal(t, Coord{100, 75}, grid.Move(origin, DirectionUp))
	assert.Equal(t, Coord{100, 125}, grid.Move(origin, DirectionDown))
	assert.Equal(t, Coord{75, 100}, grid.Move(origin, DirectionLeft))
	assert.Equal(t, Coord{125, 100}, grid.Move(origin, DirectionRight))
}

func TestDirectionCodes(t *testing.T) {
	for _, d := range []Direction{DirectionUp, DirectionDown, DirectionLeft, DirectionRight} {
		got, ok := DirectionFromCode(d.Code())
		require.True(t, ok)
		assert.Equal(t, d, got)
		assert.True(t, d.IsOpposite(d.Opposite()))
	}

	_, ok := DirectionFromCode('X')
	assert.False(t, ok)
}

func TestGameConfigValidate(t *testing.T) {
	cfg := DefaultGameConfig()
	require.NoError(t, cfg.Validate())

	bad := cfg.Copy()
	bad.InitialLength = 2
	assert.Error(t, bad.Validate())

	bad = cfg.Copy()
	bad.DelayMs = 10
	assert.Error(t, bad.Validate())

	bad = cfg.Copy()
	bad.Width = 801
	assert.Error(t, bad.Validate())

	assert.Equal(t, int32(MinDelayMs), ClampDelay(1))
	assert.Equal(t, int32(MaxDelayMs), ClampDelay(1000))
	assert.Equal(t, int32(200), ClampDelay(200))
}
