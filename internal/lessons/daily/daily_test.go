package daily

import (
	"io"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/french-arcade/internal/vocab"
)

func TestToggleUpdatesStore(t *testing.T) {
	store := vocab.NewStore(vocab.DefaultCatalogue(), vocab.MemoryKV{}, log.New(io.Discard))
	entries := vocab.NewScheduler(store, rand.NewSource(1)).DailyList(DefaultItems)
	l := New(entries, store)
	require.Equal(t, DefaultItems, l.Len())

	id := entries[0].ID
	base := store.EffectiveDifficulty(id)

	learned, err := l.Toggle(0)
	require.NoError(t, err)
	assert.True(t, learned)
	assert.True(t, l.Items()[0].Learned)
	assert.Equal(t, base+1, l.Items()[0].Difficulty)

	learned, err = l.Toggle(0)
	require.NoError(t, err)
	assert.False(t, learned)
	assert.False(t, store.Progress(id).Learned)
	assert.Equal(t, base, store.EffectiveDifficulty(id))
}

func TestToggleOutOfRange(t *testing.T) {
	store := vocab.NewStore(vocab.DefaultCatalogue(), vocab.MemoryKV{}, log.New(io.Discard))
	l := New(nil, store)

	_, err := l.Toggle(0)
	assert.Error(t, err)
}
