package vocab

import (
	"encoding/json"
	"strconv"

	"github.com/charmbracelet/log"
)

// Persistence keys.
const (
	KeyProgress   = "progress"
	KeyTotalScore = "totalScore"
)

// KV is a synchronous string key/value store that survives restarts.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Progress is the learner state of one entry.
type Progress struct {
	Difficulty int  `json:"difficulty,omitempty"`
	Learned    bool `json:"learned,omitempty"`
}

// Store combines the catalogue with learner progress and the total score.
// It is not safe for concurrent use.
type Store struct {
	cat        *Catalogue
	kv         KV
	logger     *log.Logger
	progress   map[int]Progress
	totalScore int
}

// NewStore loads persisted state from kv. Unreadable or malformed data is
// logged and replaced by empty state.
func NewStore(cat *Catalogue, kv KV, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	s := &Store{
		cat:      cat,
		kv:       kv,
		logger:   logger.WithPrefix("vocab"),
		progress: make(map[int]Progress),
	}
	s.load()
	return s
}

func (s *Store) load() {
	raw, ok, err := s.kv.Get(KeyProgress)
	switch {
	case err != nil:
		s.logger.Warn("reading progress failed, starting empty", "err", err)
	case ok && raw != "":
		var m map[int]Progress
		if err := json.Unmarshal([]byte(raw), &m); err != nil {
			s.logger.Warn("malformed progress, starting empty", "err", err)
		} else if m != nil {
			s.progress = m
		}
	}

	raw, ok, err = s.kv.Get(KeyTotalScore)
	switch {
	case err != nil:
		s.logger.Warn("reading total score failed, starting at zero", "err", err)
	case ok && raw != "":
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			s.logger.Warn("malformed total score, starting at zero", "value", raw)
		} else {
			s.totalScore = n
		}
	}
}

// Catalogue returns the underlying catalogue.
func (s *Store) Catalogue() *Catalogue {
	return s.cat
}

// EffectiveDifficulty returns the stored difficulty of id, or its base
// difficulty when the entry has no progress yet. Unknown ids return 0.
func (s *Store) EffectiveDifficulty(id int) int {
	e, ok := s.cat.Lookup(id)
	if !ok {
		return 0
	}
	if p, ok := s.progress[id]; ok && p.Difficulty >= 1 {
		return p.Difficulty
	}
	return e.BaseDifficulty
}

// Progress returns the learner state of id without creating any.
func (s *Store) Progress(id int) Progress {
	p := s.progress[id]
	p.Difficulty = s.EffectiveDifficulty(id)
	return p
}

// UpdateDifficulty records a review outcome. Success raises the difficulty
// by one; failure lowers it by one, never below 1. Unknown ids are ignored.
func (s *Store) UpdateDifficulty(id int, success bool) {
	if _, ok := s.cat.Lookup(id); !ok {
		return
	}

	p := s.Progress(id)
	if success {
		p.Difficulty++
	} else {
		p.Difficulty = max(p.Difficulty-1, 1)
	}
	s.progress[id] = p
	s.saveProgress()
}

// SetLearned marks id as learned (a success) or not learned (a failure).
func (s *Store) SetLearned(id int, learned bool) {
	if _, ok := s.cat.Lookup(id); !ok {
		return
	}

	s.UpdateDifficulty(id, learned)
	p := s.progress[id]
	p.Learned = learned
	s.progress[id] = p
	s.saveProgress()
}

func (s *Store) saveProgress() {
	data, err := json.Marshal(s.progress)
	if err != nil {
		s.logger.Error("encoding progress", "err", err)
		return
	}
	if err := s.kv.Set(KeyProgress, string(data)); err != nil {
		s.logger.Error("saving progress", "err", err)
	}
}

// TotalScore returns the persisted lesson score.
func (s *Store) TotalScore() int {
	return s.totalScore
}

// IncrementTotalScore adds one point and persists the total.
func (s *Store) IncrementTotalScore() {
	s.totalScore++
	s.saveTotal()
}

// ResetTotalScore sets the total back to zero.
func (s *Store) ResetTotalScore() {
	s.totalScore = 0
	s.saveTotal()
}

func (s *Store) saveTotal() {
	if err := s.kv.Set(KeyTotalScore, strconv.Itoa(s.totalScore)); err != nil {
		s.logger.Error("saving total score", "err", err)
	}
}

// MemoryKV is an in-process KV.
type MemoryKV map[string]string

// Get implements KV.
func (m MemoryKV) Get(key string) (string, bool, error) {
	v, ok := m[key]
	return v, ok, nil
}

// Set implements KV.
func (m MemoryKV) Set(key, value string) error {
	m[key] = value
	return nil
}
