// Package dictation implements the listen-and-type exercise.
package dictation

import (
	"errors"
	"strings"

	"github.com/vovakirdan/french-arcade/internal/lessons"
	"github.com/vovakirdan/french-arcade/internal/registry"
	"github.com/vovakirdan/french-arcade/internal/vocab"
)

const (
	// ID identifies the exercise in the registry.
	ID = "dictation"
	// DefaultItems is the number of prompts per round.
	DefaultItems = 3
)

// ErrFinished is returned by Submit after the last prompt.
var ErrFinished = errors.New("dictation: finished")

func init() {
	registry.Register(registry.Info{
		ID:      ID,
		Order:   40,
		Title:   registry.Title{EN: "Dictation", FR: "Dictée"},
		Summary: "Listen to a phrase and type it in French",
	})
}

// Result is the outcome of one submission.
type Result struct {
	Entry   vocab.Entry
	Input   string
	Correct bool
}

// Dictation is one round of prompts.
type Dictation struct {
	items   []vocab.Entry
	results []Result
	score   int
	rec     lessons.Recorder
}

// New starts a round over items.
func New(items []vocab.Entry, rec lessons.Recorder) *Dictation {
	if rec == nil {
		rec = lessons.Nop{}
	}
	out := make([]vocab.Entry, len(items))
	copy(out, items)
	return &Dictation{items: out, rec: rec}
}

// Normalize folds an answer for comparison: surrounding space is dropped,
// letters are lower-cased and typographic apostrophes become ASCII ones.
func Normalize(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	return strings.NewReplacer("’", "'", "‘", "'").Replace(s)
}

// Len returns the number of prompts.
func (d *Dictation) Len() int {
	return len(d.items)
}

// Index returns the position of the current prompt.
func (d *Dictation) Index() int {
	return len(d.results)
}

// Score returns the number of correct submissions.
func (d *Dictation) Score() int {
	return d.score
}

// Done reports whether every prompt was answered.
func (d *Dictation) Done() bool {
	return len(d.results) >= len(d.items)
}

// Current returns the entry to be typed.
func (d *Dictation) Current() (vocab.Entry, bool) {
	if d.Done() {
		return vocab.Entry{}, false
	}
	return d.items[len(d.results)], true
}

// Results returns the submissions made so far.
func (d *Dictation) Results() []Result {
	out := make([]Result, len(d.results))
	copy(out, d.results)
	return out
}

// Submit checks text against the current prompt and moves to the next one.
func (d *Dictation) Submit(text string) (Result, error) {
	e, ok := d.Current()
	if !ok {
		return Result{}, ErrFinished
	}

	r := Result{Entry: e, Input: text, Correct: Normalize(text) == Normalize(e.FR)}
	if r.Correct {
		d.score++
		d.rec.IncrementTotalScore()
	}
	d.rec.UpdateDifficulty(e.ID, r.Correct)
	d.results = append(d.results, r)
	return r, nil
}
