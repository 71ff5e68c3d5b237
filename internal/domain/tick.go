package domain

type LossReason int

const (
	LossNone LossReason = iota
	LossSelfCollision
	LossBoundary
)

func (r LossReason) String() string {
	switch r {
	case LossSelfCollision:
		return "self collision"
	case LossBoundary:
		return "boundary collision"
	}
	return "none"
}

type TickResult struct {
	Moved  bool
	Ate    bool
	Lost   bool
	Reason LossReason
}

// Tick runs one simulation step: apply the pending heading, advance, then the
// apple check followed by the collision checks. Eating in a tick does not
// prevent losing in the same tick.
func (s *Session) Tick() TickResult {
	var result TickResult

	if !s.Running || s.Paused {
		return result
	}

	if s.pending != 0 {
		s.Heading = s.pending
		s.pending = 0
	}

	s.Snake.Advance(s.Grid, s.Heading)
	result.Moved = true

	head := s.Snake.Head()

	if s.HasApple && head.Equals(s.Apple.Pos) {
		s.Snake.Grow()
		s.ApplesEaten++
		s.respawnApple()
		s.SnakeColor = s.spawner.Color()
		result.Ate = true
	}

	switch {
	case s.Snake.Collides():
		result.Reason = LossSelfCollision
	case !s.Grid.Contains(head):
		result.Reason = LossBoundary
	}

	if result.Reason != LossNone {
		s.Running = false
		result.Lost = true
	}

	return result
}
