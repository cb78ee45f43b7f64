// Package vocab holds the vocabulary catalogue, per-entry learner progress,
// the daily review scheduler and the difficulty updater.
package vocab

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/catalogue.yaml
var defaultCatalogueYAML []byte

// ErrInvalidCatalogue is returned when catalogue data fails validation.
var ErrInvalidCatalogue = errors.New("vocab: invalid catalogue")

// Entry is one immutable vocabulary item.
type Entry struct {
	ID             int    `yaml:"id"`
	FR             string `yaml:"fr"`
	EN             string `yaml:"en"`
	IPA            string `yaml:"ipa"`
	PartOfSpeech   string `yaml:"type"`
	BaseDifficulty int    `yaml:"difficulty"`
}

// catalogueFile is the on-disk YAML layout.
type catalogueFile struct {
	Entries []Entry `yaml:"entries"`
}

// Catalogue is an ordered, read-only set of entries with unique ids.
type Catalogue struct {
	entries []Entry
	index   map[int]int
}

// NewCatalogue validates entries and builds a catalogue over a private copy.
func NewCatalogue(entries []Entry) (*Catalogue, error) {
	c := &Catalogue{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[int]int, len(entries)),
	}

	for i, e := range entries {
		e.FR = strings.TrimSpace(e.FR)
		e.EN = strings.TrimSpace(e.EN)
		switch {
		case e.FR == "" || e.EN == "":
			return nil, fmt.Errorf("%w: entry %d (id %d) needs both fr and en", ErrInvalidCatalogue, i+1, e.ID)
		case e.BaseDifficulty < 1:
			return nil, fmt.Errorf("%w: entry %d (id %d) has difficulty %d, minimum is 1", ErrInvalidCatalogue, i+1, e.ID, e.BaseDifficulty)
		}
		if _, dup := c.index[e.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %d", ErrInvalidCatalogue, e.ID)
		}
		c.index[e.ID] = len(c.entries)
		c.entries = append(c.entries, e)
	}

	return c, nil
}

// ParseCatalogue decodes a YAML catalogue document.
func ParseCatalogue(data []byte) (*Catalogue, error) {
	var f catalogueFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("vocab: parse catalogue: %w", err)
	}
	return NewCatalogue(f.Entries)
}

// DefaultCatalogue returns the built-in catalogue.
func DefaultCatalogue() *Catalogue {
	c, err := ParseCatalogue(defaultCatalogueYAML)
	if err != nil {
		panic(fmt.Sprintf("vocab: embedded catalogue is broken: %v", err))
	}
	return c
}

// MarshalYAML encodes the catalogue in the same layout ParseCatalogue reads.
func (c *Catalogue) MarshalYAML() (any, error) {
	return catalogueFile{Entries: c.Entries()}, nil
}

// Len returns the number of entries.
func (c *Catalogue) Len() int {
	return len(c.entries)
}

// Entries returns a copy of all entries in catalogue order.
func (c *Catalogue) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Lookup finds an entry by id.
func (c *Catalogue) Lookup(id int) (Entry, bool) {
	i, ok := c.index[id]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}
