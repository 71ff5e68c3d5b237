package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGrid(t *testing.T) *Grid {
	t.Helper()
	grid, err := NewGrid(25, 800, 800)
	require.NoError(t, err)
	return grid
}

func TestSnakeAdvanceMovesHeadOneTile(t *testing.T) {
	grid := testGrid(t)

	tests := []struct {
		dir  Direction
		want Coord
	}{
		{DirectionUp, Coord{100, 75}},
		{DirectionDown, Coord{100, 125}},
		{DirectionLeft, Coord{75, 100}},
		{DirectionRight, Coord{125, 100}},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			s := NewSnake(4, Coord{100, 100})
			s.Advance(grid, tt.dir)

			assert.Equal(t, tt.want, s.Head())
			assert.Equal(t, 4, s.Length())
		})
	}
}

func TestSnakeAdvanceShiftsBody(t *testing.T) {
	grid := testGrid(t)
	s := &Snake{Points: []Coord{{50, 0}, {25, 0}, {0, 0}}}

	s.Advance(grid, DirectionDown)

	assert.Equal(t, []Coord{{50, 25}, {50, 0}, {25, 0}}, s.Points)
}

func TestSnakeGrowKeepsVacatedTail(t *testing.T) {
	grid := testGrid(t)
	s := &Snake{Points: []Coord{{50, 0}, {25, 0}, {0, 0}}}

	s.Advance(grid, DirectionRight)
	s.Grow()

	require.Equal(t, 4, s.Length())
	assert.Equal(t, []Coord{{75, 0}, {50, 0}, {25, 0}, {0, 0}}, s.Points)

	s.Advance(grid, DirectionRight)
	assert.Equal(t, []Coord{{100, 0}, {75, 0}, {50, 0}, {25, 0}}, s.Points)
}

func TestSnakeReset(t *testing.T) {
	s := &Snake{Points: []Coord{{50, 0}, {25, 0}, {0, 0}, {0, 25}}}
	s.Reset(3, Coord{})

	assert.Equal(t, []Coord{{0, 0}, {0, 0}, {0, 0}}, s.Points)
}

func TestSnakeCollides(t *testing.T) {
	grid := testGrid(t)
	// moving up with the body curling around to the right of the head
	s := &Snake{Points: []Coord{{50, 50}, {50, 75}, {75, 75}, {75, 50}, {100, 50}}}
	assert.False(t, s.Collides())

	s.Advance(grid, DirectionRight)
	assert.True(t, s.Collides())
}

func TestSnakeStackedStartDoesNotCollide(t *testing.T) {
	grid := testGrid(t)
	s := NewSnake(3, Coord{})

	s.Advance(grid, DirectionRight)
	assert.False(t, s.Collides())
	s.Advance(grid, DirectionRight)
	assert.False(t, s.Collides())
}

func TestSnakeCellsIsACopy(t *testing.T) {
	s := NewSnake(3, Coord{})
	cells := s.Cells()
	cells[0] = Coord{500, 500}

	assert.Equal(t, Coord{}, s.Head())
}
