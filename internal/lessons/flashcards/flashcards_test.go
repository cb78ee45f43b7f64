package flashcards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/french-arcade/internal/vocab"
)

type fakeReviewer map[int]int

func (f fakeReviewer) UpdateDifficulty(id int, success bool) {
	if success {
		f[id]++
	}
}

func deck(rev fakeReviewer) *Deck {
	return New([]vocab.Entry{
		{ID: 1, FR: "Bonjour", EN: "Hello", BaseDifficulty: 1},
		{ID: 2, FR: "Merci", EN: "Thank you", BaseDifficulty: 1},
		{ID: 7, FR: "Un chien", EN: "A dog", BaseDifficulty: 1},
	}, rev)
}

func TestNavigationWraps(t *testing.T) {
	d := deck(fakeReviewer{})

	d.Prev()
	assert.Equal(t, 2, d.Index())
	d.Next()
	assert.Equal(t, 0, d.Index())
	d.Next()
	c, ok := d.Current()
	require.True(t, ok)
	assert.Equal(t, 2, c.Entry.ID)
}

func TestFlip(t *testing.T) {
	d := deck(fakeReviewer{})

	d.Flip()
	c, _ := d.Current()
	assert.True(t, c.Flipped)

	d.Flip()
	c, _ = d.Current()
	assert.False(t, c.Flipped)
}

func TestMarkKnownOnce(t *testing.T) {
	rev := fakeReviewer{}
	d := deck(rev)

	assert.True(t, d.MarkKnown())
	assert.False(t, d.MarkKnown())
	assert.Equal(t, 1, rev[1])

	d.Next()
	assert.True(t, d.MarkKnown())
	assert.Equal(t, 2, d.KnownCount())
	assert.Equal(t, 1, rev[2])
}

func TestEmptyDeck(t *testing.T) {
	d := New(nil, nil)
	d.Next()
	d.Prev()
	d.Flip()
	assert.False(t, d.MarkKnown())
	_, ok := d.Current()
	assert.False(t, ok)
}
