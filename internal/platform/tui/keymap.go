package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/french-arcade/internal/core"
	"github.com/vovakirdan/french-arcade/internal/i18n"
)

// KeyMap holds every key binding of the interface. Help labels follow the
// interface language.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Confirm key.Binding
	Back    key.Binding
	Quit    key.Binding
	Exit    key.Binding
	Lang    key.Binding
	Theme   key.Binding
	Listen  key.Binding
	Repeat  key.Binding
	Slow    key.Binding
	Mute    key.Binding
	Reset   key.Binding
	Known   key.Binding
	Scores  key.Binding
	Play    key.Binding
	Options []key.Binding
}

// NewKeyMap returns the default bindings labelled in lang.
func NewKeyMap(lang i18n.Lang) KeyMap {
	t := lang.T
	km := KeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k", "w"), key.WithHelp("↑/k", t("navigate"))),
		Down:    key.NewBinding(key.WithKeys("down", "j", "s"), key.WithHelp("↓/j", t("navigate"))),
		Left:    key.NewBinding(key.WithKeys("left", "h", "a"), key.WithHelp("←/h", "prev")),
		Right:   key.NewBinding(key.WithKeys("right", "l", "d"), key.WithHelp("→/l", "next")),
		Confirm: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", t("select"))),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", t("back"))),
		Quit:    key.NewBinding(key.WithKeys("q"), key.WithHelp("q", t("quit"))),
		Exit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", t("quit"))),
		Lang:    key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", t("lang"))),
		Theme:   key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", t("theme"))),
		Listen:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", t("listen"))),
		Repeat:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", t("repeat"))),
		Slow:    key.NewBinding(key.WithKeys("S"), key.WithHelp("S", t("slow"))),
		Mute:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", t("mute"))),
		Reset:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", t("reset.score"))),
		Known:   key.NewBinding(key.WithKeys("g"), key.WithHelp("g", t("gotit"))),
		Scores:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", t("scores"))),
		Play:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", t("play"))),
	}
	for _, k := range []string{"1", "2", "3", "4"} {
		km.Options = append(km.Options, key.NewBinding(key.WithKeys(k)))
	}
	return km
}

// Direction maps a key to a movement action, or ActionNone.
func (km KeyMap) Direction(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, km.Up):
		return core.ActionUp
	case key.Matches(msg, km.Down):
		return core.ActionDown
	case key.Matches(msg, km.Left):
		return core.ActionLeft
	case key.Matches(msg, km.Right):
		return core.ActionRight
	}
	return core.ActionNone
}

// GameAction translates a key pressed during the game.
func (km KeyMap) GameAction(msg tea.KeyMsg) core.Action {
	if a := km.Direction(msg); a != core.ActionNone {
		return a
	}
	switch {
	case key.Matches(msg, km.Repeat):
		return core.ActionRepeat
	case key.Matches(msg, km.Slow):
		return core.ActionSlow
	case key.Matches(msg, km.Mute):
		return core.ActionMute
	case key.Matches(msg, km.Back):
		return core.ActionBack
	case key.Matches(msg, km.Exit):
		return core.ActionQuit
	}
	return core.ActionNone
}

// Option returns the 0-based quiz option for a digit key.
func (km KeyMap) Option(msg tea.KeyMsg) (int, bool) {
	for i, b := range km.Options {
		if key.Matches(msg, b) {
			return i, true
		}
	}
	return 0, false
}

// helpKeys adapts a binding list to help.KeyMap.
type helpKeys []key.Binding

func (h helpKeys) ShortHelp() []key.Binding  { return h }
func (h helpKeys) FullHelp() [][]key.Binding { return [][]key.Binding{h} }
