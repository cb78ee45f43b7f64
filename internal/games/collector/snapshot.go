package collector

import "time"

// Snapshot is a read-only copy of the engine state for rendering and tests.
type Snapshot struct {
	State            State
	Cols, Rows       int
	Segments         []Point
	Direction        Direction
	PendingDirection Direction
	Target           Point
	TickInterval     time.Duration
	Score            int
	TargetQueueIndex int
	Round            int
	// LastGameOver is the most recent round ending, nil before the first.
	LastGameOver *GameOverEvent
}

// Len returns the collector length.
func (s Snapshot) Len() int {
	return len(s.Segments)
}

// Head returns the head cell.
func (s Snapshot) Head() Point {
	if len(s.Segments) == 0 {
		return Point{X: -1, Y: -1}
	}
	return s.Segments[0]
}

// Snapshot returns the current state.
func (e *Engine) Snapshot() Snapshot {
	segs := make([]Point, len(e.session.Segments))
	copy(segs, e.session.Segments)

	snap := Snapshot{
		State:            e.state,
		Cols:             e.cfg.Cols,
		Rows:             e.cfg.Rows,
		Segments:         segs,
		Direction:        e.session.Direction,
		PendingDirection: e.session.PendingDirection,
		Target:           e.session.Target,
		TickInterval:     e.session.TickInterval,
		Score:            e.session.Score,
		TargetQueueIndex: e.session.TargetQueueIndex,
		Round:            e.rounds,
	}
	if e.last != nil {
		ev := *e.last
		snap.LastGameOver = &ev
	}
	return snap
}
