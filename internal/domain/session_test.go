package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession(DefaultGameConfig(), NewSpawner(3, 4))
	require.NoError(t, err)
	s.Reset()
	return s
}

func placeApple(s *Session, pos Coord) {
	s.Apple = Apple{Pos: pos, Color: DefaultSnakeColor}
	s.HasApple = true
}

func TestFirstTickFromStart(t *testing.T) {
	s := newTestSession(t)
	placeApple(s, Coord{400, 400})

	require.Equal(t, 3, s.Snake.Length())
	assert.Equal(t, DirectionRight, s.Heading)

	result := s.Tick()

	assert.True(t, result.Moved)
	assert.False(t, result.Lost)
	assert.Equal(t, Coord{25, 0}, s.Snake.Head())
	assert.True(t, s.Running)
	assert.Equal(t, 3, s.Snake.Length())
}

func TestResetSpawnsAppleOffSnake(t *testing.T) {
	s := newTestSession(t)

	require.True(t, s.HasApple)
	assert.False(t, s.Snake.Occupies(s.Apple.Pos))
	assert.True(t, s.Grid.Contains(s.Apple.Pos))
}

func TestSetHeadingRejectsReversal(t *testing.T) {
	s := newTestSession(t)

	assert.False(t, s.SetHeading(DirectionLeft))
	assert.Equal(t, DirectionRight, s.Heading)
	assert.Equal(t, DirectionRight, s.PendingHeading())

	assert.True(t, s.SetHeading(DirectionDown))
	assert.Equal(t, DirectionRight, s.Heading, "heading changes only on tick")
	assert.Equal(t, DirectionDown, s.PendingHeading())
}

func TestPendingHeadingConsumedOnTick(t *testing.T) {
	s := newTestSession(t)
	placeApple(s, Coord{400, 400})

	require.True(t, s.SetHeading(DirectionDown))
	s.Tick()

	assert.Equal(t, DirectionDown, s.Heading)
	assert.Equal(t, Coord{0, 25}, s.Snake.Head())

	assert.False(t, s.SetHeading(DirectionUp))
	s.Tick()
	assert.Equal(t, Coord{0, 50}, s.Snake.Head())
}

func TestTickEatsApple(t *testing.T) {
	s := newTestSession(t)
	placeApple(s, Coord{25, 0})
	before := s.Snake.Length()

	result := s.Tick()

	assert.True(t, result.Ate)
	assert.False(t, result.Lost)
	assert.Equal(t, before+1, s.Snake.Length())
	assert.Equal(t, 1, s.ApplesEaten)
	require.True(t, s.HasApple)
	assert.False(t, s.Snake.Occupies(s.Apple.Pos))
}

func TestTickSelfCollisionEndsSession(t *testing.T) {
	s := newTestSession(t)
	placeApple(s, Coord{400, 400})
	s.Snake = &Snake{Points: []Coord{{50, 50}, {50, 75}, {75, 75}, {75, 50}, {100, 50}}}
	s.Heading = DirectionUp

	require.True(t, s.SetHeading(DirectionRight))
	result := s.Tick()

	assert.True(t, result.Lost)
	assert.Equal(t, LossSelfCollision, result.Reason)
	assert.False(t, s.Running)
}

func TestTickEatingDoesNotPreventDeath(t *testing.T) {
	s := newTestSession(t)
	placeApple(s, Coord{75, 50})
	s.Snake = &Snake{Points: []Coord{{50, 50}, {50, 75}, {75, 75}, {75, 50}, {100, 50}}}
	s.Heading = DirectionUp

	require.True(t, s.SetHeading(DirectionRight))
	result := s.Tick()

	assert.True(t, result.Ate)
	assert.True(t, result.Lost)
	assert.Equal(t, 6, s.Snake.Length())
	assert.Equal(t, 1, s.ApplesEaten)
}

func TestTickBoundaryCollisionEndsSession(t *testing.T) {
	s := newTestSession(t)
	placeApple(s, Coord{400, 400})

	require.True(t, s.SetHeading(DirectionUp))
	result := s.Tick()

	assert.True(t, result.Lost)
	assert.Equal(t, LossBoundary, result.Reason)
	assert.Equal(t, Coord{0, -25}, s.Snake.Head())
	assert.False(t, s.Running)
}

func TestTickIgnoredWhenPausedOrStopped(t *testing.T) {
	s := newTestSession(t)
	head := s.Snake.Head()

	s.Paused = true
	assert.False(t, s.Tick().Moved)

	s.Paused = false
	s.Running = false
	assert.False(t, s.Tick().Moved)
	assert.Equal(t, head, s.Snake.Head())
}

func TestSaveRestoreRoundTrip(t *testing.T) {
	s := newTestSession(t)
	s.Snake = &Snake{Points: []Coord{{100, 50}, {75, 50}, {50, 50}, {50, 25}}}
	s.Heading = DirectionRight
	s.ApplesEaten = 7

	saved := s.Save()

	other := newTestSession(t)
	require.NoError(t, other.Restore(saved))

	assert.Equal(t, s.Snake.Cells(), other.Snake.Cells())
	assert.Equal(t, s.Heading, other.Heading)
	assert.Equal(t, 7, other.ApplesEaten)
	assert.True(t, other.Running)
	assert.False(t, other.Snake.Occupies(other.Apple.Pos))
}

func TestRestoreRejectsInvalidData(t *testing.T) {
	tests := []struct {
		name  string
		saved SavedSession
	}{
		{"zero length", SavedSession{Length: 0, Heading: DirectionUp, Running: true}},
		{"short arrays", SavedSession{Xs: []int32{0}, Ys: []int32{0}, Length: 2, Heading: DirectionUp, Running: true}},
		{"bad heading", SavedSession{Xs: []int32{0}, Ys: []int32{0}, Length: 1, Running: true}},
		{"misaligned", SavedSession{Xs: []int32{3}, Ys: []int32{0}, Length: 1, Heading: DirectionUp, Running: true}},
		{"outside while running", SavedSession{Xs: []int32{800}, Ys: []int32{0}, Length: 1, Heading: DirectionUp, Running: true}},
		{"negative apples", SavedSession{Xs: []int32{0}, Ys: []int32{0}, Length: 1, ApplesEaten: -1, Heading: DirectionUp, Running: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t)
			before := s.Snapshot()

			err := s.Restore(tt.saved)

			assert.ErrorIs(t, err, ErrInvalidSession)
			assert.Equal(t, before, s.Snapshot())
		})
	}
}

func TestRestoreFinishedSessionAllowsHeadPastBorder(t *testing.T) {
	s := newTestSession(t)

	err := s.Restore(SavedSession{
		Xs:      []int32{0, 0, 0},
		Ys:      []int32{-25, 0, 0},
		Length:  3,
		Heading: DirectionUp,
	})

	require.NoError(t, err)
	assert.False(t, s.Running)
}
