package domain

// Snake is the ordered list of occupied cells, head first.
type Snake struct {
	Points []Coord

	// spare holds the cell the tail vacated on the last Advance; Grow turns it
	// back into a body cell.
	spare Coord
}

func NewSnake(length int, origin Coord) *Snake {
	s := &Snake{}
	s.Reset(length, origin)
	return s
}

// Reset stacks every segment on origin.
func (s *Snake) Reset(length int, origin Coord) {
	s.Points = make([]Coord, length)
	for i := range s.Points {
		s.Points[i] = origin
	}
	s.spare = origin
}

func (s *Snake) Head() Coord {
	if len(s.Points) == 0 {
		return Coord{}
	}
	return s.Points[0]
}

func (s *Snake) Length() int {
	return len(s.Points)
}

// Advance shifts every cell one index toward the tail, then moves the head one
// tile from its previous position. Length is unchanged.
func (s *Snake) Advance(grid *Grid, d Direction) {
	if len(s.Points) == 0 {
		return
	}

	oldHead := s.Points[0]
	s.spare = s.Points[len(s.Points)-1]

	for i := len(s.Points) - 1; i > 0; i-- {
		s.Points[i] = s.Points[i-1]
	}

	s.Points[0] = grid.Move(oldHead, d)
}

// Grow appends the cell vacated by the last Advance. It must run before the
// next Advance, otherwise the vacated cell is lost.
func (s *Snake) Grow() {
	if len(s.Points) == 0 {
		return
	}
	s.Points = append(s.Points, s.spare)
}

// Collides reports whether the head overlaps any other segment.
func (s *Snake) Collides() bool {
	head := s.Head()
	for i := 1; i < len(s.Points); i++ {
		if s.Points[i].Equals(head) {
			return true
		}
	}
	return false
}

func (s *Snake) Occupies(c Coord) bool {
	for _, p := range s.Points {
		if p.Equals(c) {
			return true
		}
	}
	return false
}

func (s *Snake) Cells() []Coord {
	cells := make([]Coord, len(s.Points))
	copy(cells, s.Points)
	return cells
}

func (s *Snake) Copy() *Snake {
	return &Snake{
		Points: s.Cells(),
		spare:  s.spare,
	}
}
