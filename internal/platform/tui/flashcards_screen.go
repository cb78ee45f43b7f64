package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/french-arcade/internal/lessons/flashcards"
	"github.com/vovakirdan/french-arcade/internal/registry"
	"github.com/vovakirdan/french-arcade/internal/speech"
)

// flashcardsScreen shows one card at a time.
type flashcardsScreen struct {
	st   *State
	deck *flashcards.Deck
}

func newFlashcardsScreen(st *State) *flashcardsScreen {
	return &flashcardsScreen{
		st:   st,
		deck: flashcards.New(st.DailyList(st.Config.Vocab.FlashcardCount), st.Vocab),
	}
}

func (f *flashcardsScreen) Init() tea.Cmd { return nil }

func (f *flashcardsScreen) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	keys := f.st.Keys

	switch {
	case key.Matches(km, keys.Left):
		f.deck.Prev()
	case key.Matches(km, keys.Right):
		f.deck.Next()
	case key.Matches(km, keys.Confirm):
		f.deck.Flip()
	case key.Matches(km, keys.Known):
		if card, ok := f.deck.Current(); ok && card.Flipped {
			f.deck.MarkKnown()
		}
	case key.Matches(km, keys.Listen):
		if card, ok := f.deck.Current(); ok {
			f.st.Say(card.Entry.FR, speech.NormalRate)
		}
	}
	return nil
}

func (f *flashcardsScreen) View() string {
	st := f.st
	t := st.Theme
	lang := st.Lang

	var b strings.Builder
	b.WriteString(centerText(t.Accent.Render(registryTitle(st, flashcards.ID)), st.Width))
	b.WriteString("\n\n")

	card, ok := f.deck.Current()
	if !ok {
		b.WriteString(centerText(t.Dim.Render(lang.T("empty")), st.Width))
		return b.String()
	}

	var face strings.Builder
	if card.Flipped {
		face.WriteString(t.Text.Render(card.Entry.EN))
		face.WriteString("\n\n")
		if card.Known {
			face.WriteString(t.Good.Render("✓ " + lang.T("marked")))
		} else {
			face.WriteString(t.Dim.Render("g: " + lang.T("gotit")))
		}
	} else {
		face.WriteString(t.Title.Render(card.Entry.FR))
		face.WriteString("\n")
		face.WriteString(t.Dim.Italic(true).Render(card.Entry.IPA))
		face.WriteString("\n\n")
		face.WriteString(t.Dim.Render("p: " + lang.T("listen")))
	}

	b.WriteString(centerBlock(t.Card.Width(40).Render(face.String()), st.Width))
	b.WriteString("\n\n")
	status := lang.Tf("card", f.deck.Index()+1, f.deck.Len()) + "   " +
		lang.Tf("known", f.deck.KnownCount(), f.deck.Len())
	b.WriteString(centerText(t.Dim.Render(status), st.Width))
	return b.String()
}

func (f *flashcardsScreen) Help() []key.Binding {
	k := f.st.Keys
	flip := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", f.st.Lang.T("flip")))
	return []key.Binding{k.Left, k.Right, flip, k.Known, k.Listen, k.Back}
}

func (f *flashcardsScreen) Close() {}

// registryTitle returns the localized title of a registered activity.
func registryTitle(st *State, id string) string {
	info, err := registry.Get(id)
	if err != nil {
		return id
	}
	return info.Title.For(string(st.Lang))
}
