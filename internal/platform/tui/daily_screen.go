package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/french-arcade/internal/i18n"
	"github.com/vovakirdan/french-arcade/internal/lessons/daily"
	"github.com/vovakirdan/french-arcade/internal/speech"
)

// dailyScreen lists today's words with their learned toggles.
type dailyScreen struct {
	st    *State
	list  *daily.List
	table table.Model
	lang  i18n.Lang
	theme string
}

func newDailyScreen(st *State) *dailyScreen {
	d := &dailyScreen{
		st:   st,
		list: daily.New(st.DailyList(st.Config.Vocab.DailyCount), st.Vocab),
	}
	d.rebuild()
	return d
}

// rebuild recreates the table for the current language and theme.
func (d *dailyScreen) rebuild() {
	lang := d.st.Lang
	d.lang = lang
	d.theme = d.st.Theme.Name

	columns := []table.Column{
		{Title: lang.T("col.word"), Width: 22},
		{Title: lang.T("col.ipa"), Width: 16},
		{Title: lang.T("col.en"), Width: 22},
		{Title: lang.T("col.level"), Width: 7},
		{Title: lang.T("col.learned"), Width: 9},
	}

	cursor := d.table.Cursor()
	d.table = table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(d.list.Len()+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(d.st.Theme.Border).
		BorderBottom(true).
		Bold(true)
	s.Selected = d.st.Theme.Selected.Bold(false)
	d.table.SetStyles(s)

	d.refresh()
	d.table.SetCursor(cursor)
}

// refresh reloads the rows from the learner state.
func (d *dailyScreen) refresh() {
	items := d.list.Items()
	rows := make([]table.Row, len(items))
	for i, it := range items {
		learned := ""
		if it.Learned {
			learned = "✓"
		}
		level := strconv.Itoa(d.st.Vocab.EffectiveDifficulty(it.Entry.ID))
		rows[i] = table.Row{it.Entry.FR, it.Entry.IPA, it.Entry.EN, level, learned}
	}
	d.table.SetRows(rows)
}

func (d *dailyScreen) Init() tea.Cmd { return nil }

func (d *dailyScreen) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	keys := d.st.Keys

	switch {
	case key.Matches(km, keys.Confirm):
		if _, err := d.list.Toggle(d.table.Cursor()); err != nil {
			d.st.Logger.Debug("toggle ignored", "err", err)
		}
		d.refresh()
		return nil
	case key.Matches(km, keys.Listen):
		if it, ok := d.selected(); ok {
			d.st.Say(it.Entry.FR, speech.NormalRate)
		}
		return nil
	case key.Matches(km, keys.Up), key.Matches(km, keys.Down):
		var cmd tea.Cmd
		d.table, cmd = d.table.Update(tea.KeyMsg{Type: directionKey(keys, km)})
		return cmd
	}
	return nil
}

// directionKey normalises vim and WASD keys to arrows for the table.
func directionKey(keys KeyMap, km tea.KeyMsg) tea.KeyType {
	if key.Matches(km, keys.Up) {
		return tea.KeyUp
	}
	return tea.KeyDown
}

func (d *dailyScreen) selected() (daily.Item, bool) {
	items := d.list.Items()
	i := d.table.Cursor()
	if i < 0 || i >= len(items) {
		return daily.Item{}, false
	}
	return items[i], true
}

func (d *dailyScreen) View() string {
	if d.lang != d.st.Lang || d.theme != d.st.Theme.Name {
		d.rebuild()
	}
	st := d.st
	t := st.Theme

	var b strings.Builder
	b.WriteString(centerText(t.Accent.Render(registryTitle(st, daily.ID)), st.Width))
	b.WriteString("\n\n")
	if d.list.Len() == 0 {
		b.WriteString(centerText(t.Dim.Render(st.Lang.T("empty")), st.Width))
		return b.String()
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1).
		Render(d.table.View())
	b.WriteString(centerBlock(box, st.Width))
	return b.String()
}

func (d *dailyScreen) Help() []key.Binding {
	k := d.st.Keys
	confirm := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", d.st.Lang.T("learned")))
	return []key.Binding{k.Up, confirm, k.Listen, k.Back}
}

func (d *dailyScreen) Close() {}
