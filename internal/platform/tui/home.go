package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/french-arcade/internal/registry"
)

// MenuItem is a selectable entry of the home menu.
type MenuItem struct {
	ID    string
	Title registry.Title
}

// homeScreen is the welcome page and activity picker.
type homeScreen struct {
	st     *State
	items  []MenuItem
	cursor int
}

func newHome(st *State) *homeScreen {
	acts := registry.List()
	items := make([]MenuItem, 0, len(acts)+1)
	for _, a := range acts {
		items = append(items, MenuItem{ID: a.ID, Title: a.Title})
	}
	items = append(items, MenuItem{ID: ScoresID, Title: registry.Title{EN: "High Scores", FR: "Meilleurs scores"}})

	return &homeScreen{st: st, items: items}
}

func (h *homeScreen) Init() tea.Cmd { return nil }

func (h *homeScreen) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	keys := h.st.Keys

	switch {
	case key.Matches(km, keys.Quit):
		return quit
	case key.Matches(km, keys.Up):
		if h.cursor > 0 {
			h.cursor--
		}
	case key.Matches(km, keys.Down):
		if h.cursor < len(h.items)-1 {
			h.cursor++
		}
	case key.Matches(km, keys.Confirm):
		if len(h.items) > 0 {
			return navigate(h.items[h.cursor].ID)
		}
	case key.Matches(km, keys.Scores):
		return navigate(ScoresID)
	case key.Matches(km, keys.Reset):
		h.st.Vocab.ResetTotalScore()
		h.st.Notice = h.st.Lang.T("score.reset")
	}
	return nil
}

func (h *homeScreen) View() string {
	st := h.st
	t := st.Theme
	lang := st.Lang

	var b strings.Builder

	b.WriteString(centerText(t.Accent.Render(lang.T("welcome")), st.Width))
	b.WriteString("\n\n")
	for _, line := range []string{"welcome.banner", "welcome.choose", "welcome.saved"} {
		b.WriteString(centerText(t.Subtitle.Render(lang.T(line)), st.Width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, item := range h.items {
		cursor := "  "
		style := t.ItemNormal
		if i == h.cursor {
			cursor = "> "
			style = t.ItemActive
		}
		line := fmt.Sprintf("%s%s", cursor, item.Title.For(string(lang)))
		b.WriteString(centerText(style.Render(line), st.Width))
		b.WriteString("\n")
	}

	return b.String()
}

func (h *homeScreen) Help() []key.Binding {
	k := h.st.Keys
	return []key.Binding{k.Up, k.Confirm, k.Scores, k.Reset, k.Quit}
}

func (h *homeScreen) Close() {}
