package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/french-arcade/internal/games/collector"
	"github.com/vovakirdan/french-arcade/internal/i18n"
	"github.com/vovakirdan/french-arcade/internal/storage"
)

// Scoreboard layout constants
const (
	maxScores    = 20 // Rows loaded per view
	tableMinRows = 5
)

// scoresScreen shows the best game rounds, for the current profile or for
// everyone.
type scoresScreen struct {
	st     *State
	all    bool
	scores []storage.ScoreEntry
	table  table.Model
	lang   i18n.Lang
	theme  string
	height int
}

func newScoresScreen(st *State) *scoresScreen {
	s := &scoresScreen{st: st, height: st.Height}
	s.load()
	s.rebuild()
	return s
}

// load reads the scores for the selected scope.
func (s *scoresScreen) load() {
	if s.st.Scores == nil {
		s.scores = nil
		return
	}
	profile := s.st.Profile
	if s.all {
		profile = ""
	}
	scores, err := s.st.Scores.TopScores(profile, collector.ID, maxScores)
	if err != nil {
		s.st.Logger.Warn("cannot load scores", "err", err)
		scores = nil
	}
	s.scores = scores
}

// rebuild creates the table for the current language, theme and height.
func (s *scoresScreen) rebuild() {
	lang := s.st.Lang
	s.lang = lang
	s.theme = s.st.Theme.Name

	columns := []table.Column{
		{Title: lang.T("col.rank"), Width: 4},
		{Title: lang.T("col.score"), Width: 8},
		{Title: lang.T("col.profile"), Width: 16},
		{Title: lang.T("col.date"), Width: 18},
	}

	s.table = table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(s.height-12, tableMinRows)), // Leave room for header, help, and margins
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(s.st.Theme.Border).
		BorderBottom(true).
		Bold(true)
	styles.Selected = s.st.Theme.Selected.Bold(false)
	s.table.SetStyles(styles)
	s.updateRows()
}

// updateRows refills the table with the loaded scores.
func (s *scoresScreen) updateRows() {
	rows := make([]table.Row, len(s.scores))
	for i, e := range s.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", e.Score),
			e.Profile,
			e.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}
	s.table.SetRows(rows)
	s.table.GotoTop()
}

func (s *scoresScreen) Init() tea.Cmd { return nil }

func (s *scoresScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.height = msg.Height
		s.rebuild()
		return nil

	case tea.KeyMsg:
		keys := s.st.Keys
		switch {
		case key.Matches(msg, keys.Scores):
			s.all = !s.all
			s.load()
			s.updateRows()
			return nil
		case key.Matches(msg, keys.Up), key.Matches(msg, keys.Down):
			var cmd tea.Cmd
			s.table, cmd = s.table.Update(tea.KeyMsg{Type: directionKey(keys, msg)})
			return cmd
		}
	}
	return nil
}

func (s *scoresScreen) View() string {
	if s.lang != s.st.Lang || s.theme != s.st.Theme.Name {
		s.rebuild()
	}
	st := s.st
	t := st.Theme

	var b strings.Builder

	title := st.Lang.T("scores")
	scope := st.Profile
	if s.all {
		scope = "*"
	}
	b.WriteString(centerText(t.Accent.Render(fmt.Sprintf("%s · %s", title, scope)), st.Width))
	b.WriteString("\n\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	if len(s.scores) == 0 {
		empty := t.Dim.Italic(true).Padding(2, 4).Render(st.Lang.T("no.scores"))
		b.WriteString(centerBlock(box.Render(empty), st.Width))
		return b.String()
	}

	b.WriteString(centerBlock(box.Render(s.table.View()), st.Width))
	return b.String()
}

func (s *scoresScreen) Help() []key.Binding {
	k := s.st.Keys
	scope := key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "profile/*"))
	return []key.Binding{k.Up, k.Down, scope, k.Back}
}

func (s *scoresScreen) Close() {}
