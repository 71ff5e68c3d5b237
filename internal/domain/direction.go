package domain

type Direction int32

const (
	DirectionUp    Direction = 1
	DirectionDown  Direction = 2
	DirectionLeft  Direction = 3
	DirectionRight Direction = 4
)

func (d Direction) Valid() bool {
	return d >= DirectionUp && d <= DirectionRight
}

func (d Direction) Opposite() Direction {
	switch d {
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	case DirectionLeft:
		return DirectionRight
	case DirectionRight:
		return DirectionLeft
	}
	return DirectionUp
}

func (d Direction) Delta() Coord {
	switch d {
	case DirectionUp:
		return Coord{0, -1}
	case DirectionDown:
		return Coord{0, 1}
	case DirectionLeft:
		return Coord{-1, 0}
	case DirectionRight:
		return Coord{1, 0}
	}
	return Coord{}
}

func (d Direction) IsOpposite(other Direction) bool {
	return d.Opposite() == other
}

// Code is the single-character form stored in save files.
func (d Direction) Code() rune {
	switch d {
	case DirectionUp:
		return 'U'
	case DirectionDown:
		return 'D'
	case DirectionLeft:
		return 'L'
	case DirectionRight:
		return 'R'
	}
	return 0
}

func DirectionFromCode(code rune) (Direction, bool) {
	switch code {
	case 'U':
		return DirectionUp, true
	case 'D':
		return DirectionDown, true
	case 'L':
		return DirectionLeft, true
	case 'R':
		return DirectionRight, true
	}
	return 0, false
}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	}
	return "none"
}
