package collector

// Point is a grid cell.
type Point struct {
	X, Y int
}

// Add returns p moved by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Direction is a unit step on the grid.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Delta returns the unit vector for d.
func (d Direction) Delta() Point {
	switch d {
	case DirUp:
		return Point{X: 0, Y: -1}
	case DirDown:
		return Point{X: 0, Y: 1}
	case DirLeft:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 1, Y: 0}
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// State is the engine lifecycle state.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateGameOver
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game_over"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Reason says why a round ended.
type Reason int

const (
	WallCollision Reason = iota
	SelfCollision
	// GridFull means the collector filled every cell, leaving nowhere to
	// place a new target.
	GridFull
)

func (r Reason) String() string {
	switch r {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	case GridFull:
		return "grid_full"
	default:
		return "unknown"
	}
}

// GameOverEvent is emitted when a round ends.
type GameOverEvent struct {
	Score  int
	Reason Reason
}
