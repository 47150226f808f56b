package types

// Direction is a cardinal movement direction.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirRight
	DirDown
	DirLeft
)

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirLeft
}

// Delta returns the unit vector for d.
func (d Direction) Delta() Cell {
	switch d {
	case DirUp:
		return Cell{X: 0, Y: -1}
	case DirRight:
		return Cell{X: 1, Y: 0}
	case DirDown:
		return Cell{X: 0, Y: 1}
	case DirLeft:
		return Cell{X: -1, Y: 0}
	default:
		return Cell{}
	}
}

// Opposite returns the 180 degree reversal of d.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirRight:
		return DirLeft
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirNone
	}
}

// TurnLeft returns the direction after a 90 degree counter-clockwise turn.
func (d Direction) TurnLeft() Direction {
	switch d {
	case DirUp:
		return DirLeft
	case DirRight:
		return DirUp
	case DirDown:
		return DirRight
	case DirLeft:
		return DirDown
	default:
		return d
	}
}

// TurnRight returns the direction after a 90 degree clockwise turn.
func (d Direction) TurnRight() Direction {
	switch d {
	case DirUp:
		return DirRight
	case DirRight:
		return DirDown
	case DirDown:
		return DirLeft
	case DirLeft:
		return DirUp
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "none"
	}
}
