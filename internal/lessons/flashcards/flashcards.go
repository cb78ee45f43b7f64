// Package flashcards implements a deck of two-sided review cards.
package flashcards

import (
	"github.com/vovakirdan/french-arcade/internal/lessons"
	"github.com/vovakirdan/french-arcade/internal/registry"
	"github.com/vovakirdan/french-arcade/internal/vocab"
)

const (
	// ID identifies the deck in the registry.
	ID = "flashcards"
	// DefaultCards is the deck size.
	DefaultCards = 5
)

func init() {
	registry.Register(registry.Info{
		ID:      ID,
		Order:   20,
		Title:   registry.Title{EN: "Flashcards", FR: "Cartes mémoire"},
		Summary: "Flip cards between French and English",
	})
}

// Card is one entry with its view state.
type Card struct {
	Entry   vocab.Entry
	Flipped bool
	Known   bool
}

// Deck is an ordered set of cards with a cursor.
type Deck struct {
	cards    []Card
	cur      int
	reviewer lessons.Reviewer
}

// New builds a deck from entries, French side up.
func New(entries []vocab.Entry, reviewer lessons.Reviewer) *Deck {
	if reviewer == nil {
		reviewer = lessons.Nop{}
	}
	cards := make([]Card, len(entries))
	for i, e := range entries {
		cards[i] = Card{Entry: e}
	}
	return &Deck{cards: cards, reviewer: reviewer}
}

// Len returns the number of cards.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Index returns the cursor position.
func (d *Deck) Index() int {
	return d.cur
}

// Current returns the card under the cursor.
func (d *Deck) Current() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	return d.cards[d.cur], true
}

// Next moves the cursor forward, wrapping around.
func (d *Deck) Next() {
	if len(d.cards) > 0 {
		d.cur = (d.cur + 1) % len(d.cards)
	}
}

// Prev moves the cursor back, wrapping around.
func (d *Deck) Prev() {
	if len(d.cards) > 0 {
		d.cur = (d.cur + len(d.cards) - 1) % len(d.cards)
	}
}

// Flip turns the current card over.
func (d *Deck) Flip() {
	if len(d.cards) > 0 {
		d.cards[d.cur].Flipped = !d.cards[d.cur].Flipped
	}
}

// MarkKnown records the current card as a successful review. Each card
// counts once; later calls return false.
func (d *Deck) MarkKnown() bool {
	if len(d.cards) == 0 || d.cards[d.cur].Known {
		return false
	}
	d.cards[d.cur].Known = true
	d.reviewer.UpdateDifficulty(d.cards[d.cur].Entry.ID, true)
	return true
}

// KnownCount returns how many cards were marked known.
func (d *Deck) KnownCount() int {
	n := 0
	for _, c := range d.cards {
		if c.Known {
			n++
		}
	}
	return n
}
