// Package quiz implements the multiple-choice translation quiz.
package quiz

import (
	"errors"
	"math/rand"
	"slices"

	"github.com/vovakirdan/french-arcade/internal/lessons"
	"github.com/vovakirdan/french-arcade/internal/registry"
	"github.com/vovakirdan/french-arcade/internal/vocab"
)

const (
	// ID identifies the quiz in the registry.
	ID = "quiz"
	// DefaultQuestions is the length of a quiz round.
	DefaultQuestions = 5
	// Choices is the number of options per question.
	Choices = 4
)

var (
	// ErrAnswered is returned when the current question was already answered.
	ErrAnswered = errors.New("quiz: question already answered")
	// ErrFinished is returned when every question has been answered.
	ErrFinished = errors.New("quiz: finished")
	// ErrNoOption is returned for an option index outside the choices.
	ErrNoOption = errors.New("quiz: no such option")
)

func init() {
	registry.Register(registry.Info{
		ID:      ID,
		Order:   30,
		Title:   registry.Title{EN: "Quiz", FR: "Quiz"},
		Summary: "Pick the English translation of a French word",
	})
}

// Question asks for the translation of Entry.
type Question struct {
	Entry   vocab.Entry
	Options []string
	// Correct is the index of Entry.EN in Options.
	Correct int
	// Chosen is the selected option, -1 until answered.
	Chosen int
}

// Answered reports whether an option was chosen.
func (q Question) Answered() bool {
	return q.Chosen >= 0
}

// Quiz is one round of questions.
type Quiz struct {
	questions []Question
	current   int
	score     int
	rec       lessons.Recorder
}

// New draws up to n questions from entries. Each question offers the right
// translation plus up to Choices-1 distinct wrong ones, in random order.
func New(entries []vocab.Entry, rng *rand.Rand, n int, rec lessons.Recorder) *Quiz {
	if rec == nil {
		rec = lessons.Nop{}
	}

	pool := slices.Clone(entries)
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	if n < len(pool) {
		pool = pool[:max(n, 0)]
	}

	qz := &Quiz{rec: rec, questions: make([]Question, 0, len(pool))}
	for _, e := range pool {
		qz.questions = append(qz.questions, newQuestion(e, entries, rng))
	}
	return qz
}

func newQuestion(e vocab.Entry, all []vocab.Entry, rng *rand.Rand) Question {
	options := []string{e.EN}
	for _, i := range rng.Perm(len(all)) {
		if len(options) == Choices {
			break
		}
		if !slices.Contains(options, all[i].EN) {
			options = append(options, all[i].EN)
		}
	}
	rng.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })

	return Question{
		Entry:   e,
		Options: options,
		Correct: slices.Index(options, e.EN),
		Chosen:  -1,
	}
}

// Len returns the number of questions.
func (q *Quiz) Len() int {
	return len(q.questions)
}

// Index returns the position of the current question.
func (q *Quiz) Index() int {
	return q.current
}

// Score returns the number of correct answers.
func (q *Quiz) Score() int {
	return q.score
}

// Done reports whether the round is over.
func (q *Quiz) Done() bool {
	return q.current >= len(q.questions)
}

// Current returns the question being asked.
func (q *Quiz) Current() (Question, bool) {
	if q.Done() {
		return Question{}, false
	}
	return q.questions[q.current], true
}

// Answer selects an option for the current question. A correct answer
// earns a lesson point; either way the outcome is recorded as a review.
func (q *Quiz) Answer(option int) (bool, error) {
	if q.Done() {
		return false, ErrFinished
	}
	cur := &q.questions[q.current]
	if cur.Answered() {
		return false, ErrAnswered
	}
	if option < 0 || option >= len(cur.Options) {
		return false, ErrNoOption
	}

	cur.Chosen = option
	correct := option == cur.Correct
	if correct {
		q.score++
		q.rec.IncrementTotalScore()
	}
	q.rec.UpdateDifficulty(cur.Entry.ID, correct)
	return correct, nil
}

// Next moves past an answered question. It returns false once the round
// is over or while the current question is unanswered.
func (q *Quiz) Next() bool {
	if q.Done() || !q.questions[q.current].Answered() {
		return false
	}
	q.current++
	return !q.Done()
}
