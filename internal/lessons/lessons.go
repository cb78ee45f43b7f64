// Package lessons holds what the lesson activities share: the hooks through
// which they report results to the learner's progress.
package lessons

// Reviewer records a review outcome for one vocabulary entry.
type Reviewer interface {
	UpdateDifficulty(id int, success bool)
}

// Recorder records review outcomes and lesson points.
type Recorder interface {
	Reviewer
	IncrementTotalScore()
}

// Nop discards everything.
type Nop struct{}

func (Nop) UpdateDifficulty(int, bool) {}
func (Nop) IncrementTotalScore() {}
