// Package collector implements the word collector arcade game: a chain of
// cells steered around a grid, growing on every target it reaches. Each
// target reveals the next word of a review list.
//
// The engine draws nothing and starts no goroutines. Time comes from an
// injected timer.Scheduler and results leave through a Listener.
package collector

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/french-arcade/internal/timer"
	"github.com/vovakirdan/french-arcade/internal/vocab"
)

// Listener receives engine notifications synchronously during a tick.
type Listener interface {
	OnTargetCollected(entry vocab.Entry)
	OnScoreChanged(score int)
	OnGameOver(ev GameOverEvent)
}

// Reviewer records a review outcome for a vocabulary entry.
type Reviewer interface {
	UpdateDifficulty(id int, success bool)
}

type nopListener struct{}

func (nopListener) OnTargetCollected(vocab.Entry) {}
func (nopListener) OnScoreChanged(int) {}
func (nopListener) OnGameOver(GameOverEvent) {}

type nopReviewer struct{}

func (nopReviewer) UpdateDifficulty(int, bool) {}

// Session is the state of one round.
type Session struct {
	Segments         []Point // head first
	Direction        Direction
	PendingDirection Direction
	Target           Point
	TickInterval     time.Duration
	Score            int
	TargetQueueIndex int
}

// Engine runs the game.
type Engine struct {
	cfg      Config
	sched    timer.Scheduler
	words    []vocab.Entry
	rng      *rand.Rand
	listener Listener
	reviewer Reviewer

	state   State
	session Session
	last    *GameOverEvent
	rounds  int

	tickTimer  timer.Handle
	resetTimer timer.Handle
}

// New creates an idle engine. words is the review list revealed by
// targets, reused cyclically. listener and reviewer may be nil.
func New(cfg Config, sched timer.Scheduler, words []vocab.Entry, rng *rand.Rand, listener Listener, reviewer Reviewer) *Engine {
	if listener == nil {
		listener = nopListener{}
	}
	if reviewer == nil {
		reviewer = nopReviewer{}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	w := make([]vocab.Entry, len(words))
	copy(w, words)

	return &Engine{
		cfg:      cfg,
		sched:    sched,
		words:    w,
		rng:      rng,
		listener: listener,
		reviewer: reviewer,
		state:    StateIdle,
	}
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// State returns the lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// Start begins a fresh round. It does nothing while a round is running or
// waiting out its game over delay.
func (e *Engine) Start() {
	if e.state == StateRunning || e.state == StateGameOver {
		return
	}
	e.begin()
}

// Stop cancels every pending timer. The engine can be started again.
func (e *Engine) Stop() {
	e.sched.Cancel(e.tickTimer)
	e.sched.Cancel(e.resetTimer)
	e.tickTimer = 0
	e.resetTimer = 0
	e.state = StateStopped
}

// Turn queues a direction for the next tick. A turn that exactly reverses
// the committed direction is rejected.
func (e *Engine) Turn(dir Direction) bool {
	if e.state != StateRunning {
		return false
	}
	if dir < DirRight || dir > DirUp {
		return false
	}
	if dir == e.session.Direction.Opposite() {
		return false
	}
	e.session.PendingDirection = dir
	return true
}

// Swipe turns by the dominant axis of a drag. Drags must be longer than
// the configured threshold.
func (e *Engine) Swipe(dx, dy float64) bool {
	ax, ay := math.Abs(dx), math.Abs(dy)
	if math.Max(ax, ay) <= e.cfg.SwipeThreshold {
		return false
	}

	var dir Direction
	switch {
	case ax > ay && dx > 0:
		dir = DirRight
	case ax > ay:
		dir = DirLeft
	case dy > 0:
		dir = DirDown
	default:
		dir = DirUp
	}
	return e.Turn(dir)
}

func (e *Engine) begin() {
	e.session = e.newSession()
	e.state = StateRunning
	e.rounds++
	e.tickTimer = e.sched.Every(e.session.TickInterval, e.tick)
	e.listener.OnScoreChanged(0)
}

func (e *Engine) newSession() Session {
	s := Session{
		Segments:         []Point{{X: e.cfg.Cols / 2, Y: e.cfg.Rows / 2}},
		Direction:        DirRight,
		PendingDirection: DirRight,
		TickInterval:     e.cfg.InitialInterval,
	}
	s.Target, _ = e.emptyCell(s.Segments)
	return s
}

func (e *Engine) tick() {
	if e.state != StateRunning {
		return
	}
	s := &e.session

	s.Direction = s.PendingDirection
	head := s.Segments[0].Add(s.Direction.Delta())

	if !e.inBounds(head) {
		e.gameOver(WallCollision)
		return
	}
	if occupied(s.Segments, head) {
		e.gameOver(SelfCollision)
		return
	}

	s.Segments = append([]Point{head}, s.Segments...)

	if head != s.Target {
		s.Segments = s.Segments[:len(s.Segments)-1]
		return
	}

	s.Score++
	e.listener.OnScoreChanged(s.Score)

	if len(e.words) > 0 {
		entry := e.words[s.TargetQueueIndex%len(e.words)]
		e.reviewer.UpdateDifficulty(entry.ID, true)
		e.listener.OnTargetCollected(entry)
	}
	s.TargetQueueIndex++

	target, ok := e.emptyCell(s.Segments)
	s.Target = target
	if !ok {
		e.gameOver(GridFull)
		return
	}

	next := max(s.TickInterval-e.cfg.IntervalStep, e.cfg.MinInterval)
	if next != s.TickInterval {
		s.TickInterval = next
		e.sched.Cancel(e.tickTimer)
		e.tickTimer = e.sched.Every(next, e.tick)
	}
}

func (e *Engine) gameOver(reason Reason) {
	e.sched.Cancel(e.tickTimer)
	e.tickTimer = 0
	e.state = StateGameOver

	ev := GameOverEvent{Score: e.session.Score, Reason: reason}
	e.last = &ev
	e.listener.OnGameOver(ev)

	e.resetTimer = e.sched.After(e.cfg.GameOverDelay, e.reset)
}

func (e *Engine) reset() {
	e.resetTimer = 0
	if e.state != StateGameOver {
		return
	}
	e.begin()
}

func (e *Engine) inBounds(p Point) bool {
	return p.X >= 0 && p.X < e.cfg.Cols && p.Y >= 0 && p.Y < e.cfg.Rows
}

// emptyCell picks a uniformly random cell not covered by segments.
func (e *Engine) emptyCell(segments []Point) (Point, bool) {
	taken := make(map[Point]bool, len(segments))
	for _, p := range segments {
		taken[p] = true
	}

	empty := make([]Point, 0, e.cfg.Cols*e.cfg.Rows-len(taken))
	for y := 0; y < e.cfg.Rows; y++ {
		for x := 0; x < e.cfg.Cols; x++ {
			p := Point{X: x, Y: y}
			if !taken[p] {
				empty = append(empty, p)
			}
		}
	}

	if len(empty) == 0 {
		return Point{X: -1, Y: -1}, false
	}
	return empty[e.rng.Intn(len(empty))], true
}

func occupied(segments []Point, p Point) bool {
	for _, s := range segments {
		if s == p {
			return true
		}
	}
	return false
}
