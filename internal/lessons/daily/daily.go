// Package daily implements the daily review list with its learned toggles.
package daily

import (
	"fmt"

	"github.com/vovakirdan/french-arcade/internal/registry"
	"github.com/vovakirdan/french-arcade/internal/vocab"
)

const (
	// ID identifies the list in the registry.
	ID = "daily"
	// DefaultItems is the list length.
	DefaultItems = 5
)

func init() {
	registry.Register(registry.Info{
		ID:      ID,
		Order:   10,
		Title:   registry.Title{EN: "Daily List", FR: "Liste du jour"},
		Summary: "Review the words due today and mark the ones you know",
	})
}

// Tracker stores learned flags.
type Tracker interface {
	Progress(id int) vocab.Progress
	SetLearned(id int, learned bool)
}

// Item is an entry with its learner state.
type Item struct {
	Entry      vocab.Entry
	Learned    bool
	Difficulty int
}

// List is a fixed daily selection.
type List struct {
	entries []vocab.Entry
	tracker Tracker
}

// New wraps a daily selection.
func New(entries []vocab.Entry, tracker Tracker) *List {
	out := make([]vocab.Entry, len(entries))
	copy(out, entries)
	return &List{entries: out, tracker: tracker}
}

// Len returns the number of items.
func (l *List) Len() int {
	return len(l.entries)
}

// Items returns the entries with their current state.
func (l *List) Items() []Item {
	items := make([]Item, len(l.entries))
	for i, e := range l.entries {
		p := l.tracker.Progress(e.ID)
		items[i] = Item{Entry: e, Learned: p.Learned, Difficulty: p.Difficulty}
	}
	return items
}

// Toggle flips the learned flag of item i and returns the new value.
// Marking learned counts as a successful review, unmarking as a miss.
func (l *List) Toggle(i int) (bool, error) {
	if i < 0 || i >= len(l.entries) {
		return false, fmt.Errorf("daily: item %d out of range", i)
	}
	id := l.entries[i].ID
	learned := !l.tracker.Progress(id).Learned
	l.tracker.SetLearned(id, learned)
	return learned, nil
}
