package domain

import (
	"errors"
	"fmt"
	"image/color"
)

var ErrInvalidSession = errors.New("invalid session data")

var DefaultSnakeColor = color.NRGBA{144, 238, 144, 255}

// Session is the state of one play-through. It is not safe for concurrent
// use; the game controller serializes every call.
type Session struct {
	Grid        *Grid
	Snake       *Snake
	Heading     Direction
	ApplesEaten int
	Running     bool
	Paused      bool
	Apple       Apple
	HasApple    bool
	SnakeColor  color.NRGBA

	// pending is the heading requested since the last tick, 0 when none.
	pending       Direction
	initialLength int
	spawner       *Spawner
}

func NewSession(config *GameConfig, spawner *Spawner) (*Session, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	grid, err := config.Grid()
	if err != nil {
		return nil, err
	}

	s := &Session{
		Grid:          grid,
		Snake:         NewSnake(config.InitialLength, Coord{}),
		Heading:       DirectionRight,
		SnakeColor:    DefaultSnakeColor,
		initialLength: config.InitialLength,
		spawner:       spawner,
	}
	return s, nil
}

// Reset starts a fresh session: snake stacked on the origin heading right,
// counters cleared and a new apple placed.
func (s *Session) Reset() {
	s.Snake.Reset(s.initialLength, Coord{})
	s.Heading = DirectionRight
	s.pending = 0
	s.ApplesEaten = 0
	s.Running = true
	s.Paused = false
	s.SnakeColor = DefaultSnakeColor
	s.respawnApple()
}

// SetHeading queues d for the next tick. A reversal of the committed heading
// is rejected and leaves the heading untouched.
func (s *Session) SetHeading(d Direction) bool {
	if !d.Valid() || d.IsOpposite(s.Heading) {
		return false
	}
	s.pending = d
	return true
}

// PendingHeading returns the heading the next tick will use.
func (s *Session) PendingHeading() Direction {
	if s.pending != 0 {
		return s.pending
	}
	return s.Heading
}

func (s *Session) respawnApple() {
	s.Apple, s.HasApple = s.spawner.Spawn(s.Snake, s.Grid)
}

// View is a detached copy of the session for renderers.
type View struct {
	Grid        Grid
	Snake       []Coord
	SnakeColor  color.NRGBA
	Apple       Apple
	HasApple    bool
	Heading     Direction
	ApplesEaten int
	Running     bool
	Paused      bool
}

func (s *Session) Snapshot() View {
	return View{
		Grid:        *s.Grid,
		Snake:       s.Snake.Cells(),
		SnakeColor:  s.SnakeColor,
		Apple:       s.Apple,
		HasApple:    s.HasApple,
		Heading:     s.Heading,
		ApplesEaten: s.ApplesEaten,
		Running:     s.Running,
		Paused:      s.Paused,
	}
}

// SavedSession holds the persisted subset of a session.
type SavedSession struct {
	Xs          []int32
	Ys          []int32
	Length      int
	ApplesEaten int
	Heading     Direction
	Running     bool
}

func (s *Session) Save() SavedSession {
	saved := SavedSession{
		Xs:          make([]int32, 0, s.Snake.Length()),
		Ys:          make([]int32, 0, s.Snake.Length()),
		Length:      s.Snake.Length(),
		ApplesEaten: s.ApplesEaten,
		Heading:     s.Heading,
		Running:     s.Running,
	}
	for _, p := range s.Snake.Points {
		saved.Xs = append(saved.Xs, p.X)
		saved.Ys = append(saved.Ys, p.Y)
	}
	return saved
}

// Restore replaces the session with saved. Nothing changes when saved is
// rejected. The current apple is kept unless the restored body covers it.
func (s *Session) Restore(saved SavedSession) error {
	cells, err := s.validate(saved)
	if err != nil {
		return err
	}

	s.Snake = &Snake{Points: cells, spare: cells[len(cells)-1]}
	s.Heading = saved.Heading
	s.pending = 0
	s.ApplesEaten = saved.ApplesEaten
	s.Running = saved.Running
	s.Paused = false

	if !s.HasApple || s.Snake.Occupies(s.Apple.Pos) {
		s.respawnApple()
	}
	return nil
}

func (s *Session) validate(saved SavedSession) ([]Coord, error) {
	if saved.Length < 1 {
		return nil, fmt.Errorf("%w: length %d", ErrInvalidSession, saved.Length)
	}
	if len(saved.Xs) < saved.Length || len(saved.Ys) < saved.Length {
		return nil, fmt.Errorf("%w: %d/%d coordinates for length %d",
			ErrInvalidSession, len(saved.Xs), len(saved.Ys), saved.Length)
	}
	if saved.ApplesEaten < 0 {
		return nil, fmt.Errorf("%w: apples eaten %d", ErrInvalidSession, saved.ApplesEaten)
	}
	if !saved.Heading.Valid() {
		return nil, fmt.Errorf("%w: heading %d", ErrInvalidSession, saved.Heading)
	}

	cells := make([]Coord, saved.Length)
	for i := range cells {
		c := Coord{X: saved.Xs[i], Y: saved.Ys[i]}
		if !s.Grid.Aligned(c) {
			return nil, fmt.Errorf("%w: cell %d (%d,%d) is off the tile grid", ErrInvalidSession, i, c.X, c.Y)
		}
		// a finished session may legitimately end with the head past the border
		if saved.Running && !s.Grid.Contains(c) {
			return nil, fmt.Errorf("%w: cell %d (%d,%d) is outside the grid", ErrInvalidSession, i, c.X, c.Y)
		}
		cells[i] = c
	}
	return cells, nil
}
