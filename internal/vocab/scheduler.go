package vocab

import (
	"math/rand"
	"sort"
)

// Scheduler picks entries for review, least mastered first.
type Scheduler struct {
	store *Store
	rng   *rand.Rand
}

// NewScheduler creates a scheduler. src drives tie-break order; pass a
// fixed-seed source for reproducible lists.
func NewScheduler(store *Store, src rand.Source) *Scheduler {
	return &Scheduler{store: store, rng: rand.New(src)}
}

// DailyList returns up to count entries ordered by ascending effective
// difficulty. Entries of equal difficulty come out in random order.
func (s *Scheduler) DailyList(count int) []Entry {
	if count <= 0 {
		return []Entry{}
	}

	entries := s.store.Catalogue().Entries()
	s.rng.Shuffle(len(entries), func(i, j int) {
		entries[i], entries[j] = entries[j], entries[i]
	})

	diff := make(map[int]int, len(entries))
	for _, e := range entries {
		diff[e.ID] = s.store.EffectiveDifficulty(e.ID)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return diff[entries[i].ID] < diff[entries[j].ID]
	})

	if count < len(entries) {
		entries = entries[:count]
	}
	return entries
}
