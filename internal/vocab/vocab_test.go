package vocab

import (
	"errors"
	"io"
	"math/rand"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func newTestStore(t *testing.T, kv KV) *Store {
	t.Helper()
	if kv == nil {
		kv = MemoryKV{}
	}
	return NewStore(DefaultCatalogue(), kv, quietLogger())
}

type failingKV struct{}

func (failingKV) Get(string) (string, bool, error) { return "", false, errors.New("disk gone") }
func (failingKV) Set(string, string) error { return errors.New("disk gone") }

func TestDefaultCatalogue(t *testing.T) {
	cat := DefaultCatalogue()
	require.Equal(t, 10, cat.Len())

	e, ok := cat.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, "Bonjour", e.FR)
	assert.Equal(t, "Hello", e.EN)
	assert.Equal(t, "bɔ̃.ʒuʁ", e.IPA)
	assert.Equal(t, "greeting", e.PartOfSpeech)
	assert.Equal(t, 1, e.BaseDifficulty)

	e, ok = cat.Lookup(10)
	require.True(t, ok)
	assert.Equal(t, "Je ne comprends pas", e.FR)
	assert.Equal(t, 2, e.BaseDifficulty)

	_, ok = cat.Lookup(99)
	assert.False(t, ok)
}

func TestCatalogueEntriesIsACopy(t *testing.T) {
	cat := DefaultCatalogue()
	entries := cat.Entries()
	entries[0].FR = "changed"

	e, _ := cat.Lookup(entries[0].ID)
	assert.Equal(t, "Bonjour", e.FR)
}

func TestNewCatalogueValidation(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
	}{
		{"duplicate id", []Entry{
			{ID: 1, FR: "un", EN: "one", BaseDifficulty: 1},
			{ID: 1, FR: "deux", EN: "two", BaseDifficulty: 1},
		}},
		{"missing french", []Entry{{ID: 1, EN: "one", BaseDifficulty: 1}}},
		{"missing english", []Entry{{ID: 1, FR: "un", BaseDifficulty: 1}}},
		{"zero difficulty", []Entry{{ID: 1, FR: "un", EN: "one"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalogue(tt.entries)
			assert.ErrorIs(t, err, ErrInvalidCatalogue)
		})
	}
}

func TestReadCSV(t *testing.T) {
	src := strings.Join([]string{
		"id,fr,en,ipa,type,difficulty",
		"5,Un chat,A cat,ɛ̃ ʃa,noun,2",
		",Un chien,A dog,ɛ̃ ʃjɛ̃,noun,",
		",,,,,",
		"7,Merci,Thank you,,polite,0",
	}, "\n")

	cat, err := ReadCSV(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 3, cat.Len())

	e, ok := cat.Lookup(5)
	require.True(t, ok)
	assert.Equal(t, 2, e.BaseDifficulty)

	// Blank ids continue after the largest explicit id.
	e, ok = cat.Lookup(8)
	require.True(t, ok)
	assert.Equal(t, "Un chien", e.FR)
	assert.Equal(t, 1, e.BaseDifficulty)

	e, ok = cat.Lookup(7)
	require.True(t, ok)
	assert.Equal(t, 1, e.BaseDifficulty, "difficulty below 1 defaults to 1")
}

func TestReadCSVRejectsBadID(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("id,fr,en\nabc,Un,One\n"))
	assert.ErrorIs(t, err, ErrInvalidCatalogue)
}

func TestLoadCatalogueXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]any{
		{"id", "fr", "en", "ipa", "type", "difficulty"},
		{1, "Bonjour", "Hello", "bɔ̃.ʒuʁ", "greeting", 1},
		{2, "Au revoir", "Goodbye", "o ʁə.vwaʁ", "greeting", 3},
	}
	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cellRef, &row))
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	cat, err := LoadCatalogue(path)
	require.NoError(t, err)
	require.Equal(t, 2, cat.Len())

	e, ok := cat.Lookup(2)
	require.True(t, ok)
	assert.Equal(t, "Au revoir", e.FR)
	assert.Equal(t, 3, e.BaseDifficulty)
}

func TestLoadCatalogueUnsupported(t *testing.T) {
	_, err := LoadCatalogue("words.txt")
	assert.Error(t, err)
}

func TestStoreLoadsPersistedState(t *testing.T) {
	kv := MemoryKV{
		KeyProgress:   `{"3":{"difficulty":4,"learned":true}}`,
		KeyTotalScore: "12",
	}
	s := newTestStore(t, kv)

	assert.Equal(t, 4, s.EffectiveDifficulty(3))
	assert.True(t, s.Progress(3).Learned)
	assert.Equal(t, 12, s.TotalScore())
}

func TestStoreMalformedDataIsEmpty(t *testing.T) {
	kv := MemoryKV{
		KeyProgress:   `{not json`,
		KeyTotalScore: "lots",
	}
	s := newTestStore(t, kv)

	assert.Equal(t, 1, s.EffectiveDifficulty(1))
	assert.Equal(t, 0, s.TotalScore())
}

func TestStoreFailingKVDoesNotPanic(t *testing.T) {
	s := newTestStore(t, failingKV{})

	s.UpdateDifficulty(1, true)
	s.IncrementTotalScore()

	assert.Equal(t, 2, s.EffectiveDifficulty(1))
	assert.Equal(t, 1, s.TotalScore())
}

func TestUpdateDifficulty(t *testing.T) {
	tests := []struct {
		name     string
		id       int
		outcomes []bool
		expected int
	}{
		{"success raises", 1, []bool{true}, 2},
		{"success is uncapped", 1, []bool{true, true, true, true, true}, 6},
		{"failure floors at one", 1, []bool{false}, 1},
		{"failure lowers from base", 8, []bool{false}, 1},
		{"mixed", 9, []bool{true, true, false}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t, nil)
			for _, ok := range tt.outcomes {
				s.UpdateDifficulty(tt.id, ok)
			}
			assert.Equal(t, tt.expected, s.EffectiveDifficulty(tt.id))
		})
	}
}

func TestUpdateDifficultyRepeatedFailureStaysAtOne(t *testing.T) {
	s := newTestStore(t, nil)
	for i := 0; i < 20; i++ {
		s.UpdateDifficulty(10, false)
		require.GreaterOrEqual(t, s.EffectiveDifficulty(10), 1)
	}
	assert.Equal(t, 1, s.EffectiveDifficulty(10))
}

func TestUpdateDifficultyNeverBelowOne(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := newTestStore(t, nil)
	for i := 0; i < 500; i++ {
		id := rng.Intn(12) // includes unknown ids 0 and 11
		s.UpdateDifficulty(id, rng.Intn(2) == 0)
	}
	for _, e := range s.Catalogue().Entries() {
		assert.GreaterOrEqual(t, s.EffectiveDifficulty(e.ID), 1, "entry %d", e.ID)
	}
}

func TestUpdateDifficultyUnknownIDIsNoop(t *testing.T) {
	kv := MemoryKV{}
	s := newTestStore(t, kv)

	s.UpdateDifficulty(404, true)

	_, written := kv[KeyProgress]
	assert.False(t, written)
}

func TestUpdateDifficultyPersistsFullMap(t *testing.T) {
	kv := MemoryKV{}
	s := newTestStore(t, kv)

	s.UpdateDifficulty(1, true)
	s.UpdateDifficulty(2, false)

	assert.JSONEq(t, `{"1":{"difficulty":2},"2":{"difficulty":1}}`, kv[KeyProgress])

	reloaded := newTestStore(t, kv)
	assert.Equal(t, 2, reloaded.EffectiveDifficulty(1))
	assert.Equal(t, 1, reloaded.EffectiveDifficulty(2))
}

func TestProgressDoesNotCreateState(t *testing.T) {
	kv := MemoryKV{}
	s := newTestStore(t, kv)

	p := s.Progress(8)
	assert.Equal(t, Progress{Difficulty: 2}, p)
	assert.Empty(t, kv)
}

func TestSetLearned(t *testing.T) {
	s := newTestStore(t, nil)

	s.SetLearned(4, true)
	assert.Equal(t, Progress{Difficulty: 2, Learned: true}, s.Progress(4))

	s.SetLearned(4, false)
	assert.Equal(t, Progress{Difficulty: 1, Learned: false}, s.Progress(4))

	s.SetLearned(404, true)
	assert.Equal(t, Progress{}, s.Progress(404))
}

func TestTotalScore(t *testing.T) {
	kv := MemoryKV{}
	s := newTestStore(t, kv)

	s.IncrementTotalScore()
	s.IncrementTotalScore()
	assert.Equal(t, 2, s.TotalScore())
	assert.Equal(t, "2", kv[KeyTotalScore])

	s.ResetTotalScore()
	assert.Equal(t, 0, s.TotalScore())
	assert.Equal(t, "0", kv[KeyTotalScore])
}

func TestDailyListCount(t *testing.T) {
	s := newTestStore(t, nil)
	sched := NewScheduler(s, rand.NewSource(1))

	tests := []struct {
		count    int
		expected int
	}{
		{-1, 0},
		{0, 0},
		{3, 3},
		{5, 5},
		{10, 10},
		{25, 10},
	}

	for _, tt := range tests {
		list := sched.DailyList(tt.count)
		assert.Len(t, list, tt.expected, "count %d", tt.count)
	}
}

func TestDailyListOrderingProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 50; trial++ {
		s := newTestStore(t, nil)
		for i := 0; i < 30; i++ {
			s.UpdateDifficulty(1+rng.Intn(10), rng.Intn(3) > 0)
		}
		sched := NewScheduler(s, rand.NewSource(int64(trial)))

		count := rng.Intn(12)
		list := sched.DailyList(count)
		require.LessOrEqual(t, len(list), count)

		seen := make(map[int]bool)
		maxReturned := 0
		for _, e := range list {
			require.False(t, seen[e.ID], "duplicate id %d", e.ID)
			seen[e.ID] = true
			maxReturned = max(maxReturned, s.EffectiveDifficulty(e.ID))
		}

		for _, e := range s.Catalogue().Entries() {
			if seen[e.ID] {
				continue
			}
			assert.LessOrEqual(t, maxReturned, s.EffectiveDifficulty(e.ID),
				"trial %d: returned difficulty %d above non-returned entry %d", trial, maxReturned, e.ID)
		}
	}
}

func TestDailyListPrefersLowDifficulty(t *testing.T) {
	s := newTestStore(t, nil)
	for _, id := range []int{1, 2, 3, 4, 5} {
		s.UpdateDifficulty(id, true)
		s.UpdateDifficulty(id, true)
	}
	sched := NewScheduler(s, rand.NewSource(3))

	list := sched.DailyList(2)
	require.Len(t, list, 2)
	for _, e := range list {
		assert.Contains(t, []int{6, 7}, e.ID)
	}
}

func TestDailyListSeedIsReproducible(t *testing.T) {
	s := newTestStore(t, nil)
	a := NewScheduler(s, rand.NewSource(99)).DailyList(5)
	b := NewScheduler(s, rand.NewSource(99)).DailyList(5)
	assert.Equal(t, a, b)
}

func TestDailyListDoesNotWrite(t *testing.T) {
	kv := MemoryKV{}
	s := newTestStore(t, kv)
	NewScheduler(s, rand.NewSource(1)).DailyList(5)
	assert.Empty(t, kv)
}
