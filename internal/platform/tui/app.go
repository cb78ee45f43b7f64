package tui

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/french-arcade/internal/audio"
	"github.com/vovakirdan/french-arcade/internal/config"
	"github.com/vovakirdan/french-arcade/internal/games/collector"
	"github.com/vovakirdan/french-arcade/internal/i18n"
	"github.com/vovakirdan/french-arcade/internal/lessons/daily"
	"github.com/vovakirdan/french-arcade/internal/lessons/dictation"
	"github.com/vovakirdan/french-arcade/internal/lessons/flashcards"
	"github.com/vovakirdan/french-arcade/internal/lessons/quiz"
	"github.com/vovakirdan/french-arcade/internal/speech"
	"github.com/vovakirdan/french-arcade/internal/storage"
	"github.com/vovakirdan/french-arcade/internal/vocab"
)

// Screen identifiers that are not registered activities.
const (
	HomeID   = "home"
	ScoresID = "scores"
)

// ScoreStore keeps the game score history.
type ScoreStore interface {
	SaveScore(e storage.ScoreEntry) (storage.ScoreEntry, error)
	TopScores(profile, gameID string, limit int) ([]storage.ScoreEntry, error)
	HighScore(profile, gameID string) (int, error)
}

// Deps are the services an App runs on. Only Vocab is required.
type Deps struct {
	Config  config.Config
	Vocab   *vocab.Store
	Scores  ScoreStore
	Profile string
	Speaker speech.Speaker
	Sound   audio.Player
	Logger  *log.Logger
	// Seed drives every random choice; 0 seeds from the clock.
	Seed int64
}

// State is the application state shared by the screens.
type State struct {
	Config  config.Config
	Lang    i18n.Lang
	Theme   Theme
	Keys    KeyMap
	Vocab   *vocab.Store
	Scores  ScoreStore
	Profile string
	Speech  *speech.Muter
	Sound   audio.Player
	Logger  *log.Logger
	Rand    *rand.Rand

	Width  int
	Height int
	// Notice is a non-fatal message shown under the current screen.
	Notice string

	frames int
}

func newState(d Deps) (*State, error) {
	if d.Vocab == nil {
		return nil, errors.New("tui: vocabulary store is required")
	}
	if d.Config.UI.Lang == "" {
		d.Config = config.DefaultConfig()
	}
	lang, err := i18n.Parse(d.Config.UI.Lang)
	if err != nil {
		lang = i18n.EN
	}
	if d.Logger == nil {
		d.Logger = log.Default()
	}
	if d.Sound == nil {
		d.Sound = audio.Silent{}
	}
	if d.Speaker == nil {
		d.Speaker = speech.Disabled{}
	}
	if d.Seed == 0 {
		d.Seed = time.Now().UnixNano()
	}
	if d.Profile == "" {
		d.Profile = storage.DefaultProfile
	}

	return &State{
		Config:  d.Config,
		Lang:    lang,
		Theme:   ThemeByName(d.Config.UI.Theme),
		Keys:    NewKeyMap(lang),
		Vocab:   d.Vocab,
		Scores:  d.Scores,
		Profile: d.Profile,
		Speech:  speech.NewMuter(d.Speaker),
		Sound:   d.Sound,
		Logger:  d.Logger.WithPrefix("tui"),
		Rand:    rand.New(rand.NewSource(d.Seed)),
		Width:   80,
		Height:  24,
	}, nil
}

// DailyList draws a fresh daily list.
func (s *State) DailyList(n int) []vocab.Entry {
	return vocab.NewScheduler(s.Vocab, rand.NewSource(s.Rand.Int63())).DailyList(n)
}

// Say speaks French text. An unsupported speech system becomes a notice.
func (s *State) Say(text string, rate float64) {
	err := s.Speech.Speak(text, rate)
	switch {
	case err == nil:
	case errors.Is(err, speech.ErrUnsupported):
		s.Notice = s.Lang.T("speech.off")
	default:
		s.Logger.Warn("speech failed", "err", err)
		s.Notice = s.Lang.T("speech.off")
	}
}

// screen is one view of the App. Screens mutate themselves in Update.
type screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View() string
	Help() []key.Binding
	// Close releases timers and sounds when the screen is left.
	Close()
}

type navigateMsg struct{ to string }

func navigate(to string) tea.Cmd {
	return func() tea.Msg { return navigateMsg{to: to} }
}

type quitMsg struct{}

func quit() tea.Msg { return quitMsg{} }

// App is the root Bubble Tea model. It owns the State and switches screens.
type App struct {
	state    *State
	current  string
	screen   screen
	help     help.Model
	quitting bool
}

// NewApp creates the root model showing the start screen (HomeID when
// empty).
func NewApp(d Deps, start string) (App, error) {
	st, err := newState(d)
	if err != nil {
		return App{}, err
	}
	if start == "" {
		start = HomeID
	}
	scr, err := open(st, start)
	if err != nil {
		return App{}, err
	}
	return App{state: st, current: start, screen: scr, help: help.New()}, nil
}

// open creates the screen for id.
func open(st *State, id string) (screen, error) {
	switch id {
	case HomeID:
		return newHome(st), nil
	case daily.ID:
		return newDailyScreen(st), nil
	case flashcards.ID:
		return newFlashcardsScreen(st), nil
	case quiz.ID:
		return newQuizScreen(st), nil
	case dictation.ID:
		return newDictationScreen(st), nil
	case collector.ID:
		return newGameScreen(st), nil
	case ScoresID:
		return newScoresScreen(st), nil
	}
	return nil, fmt.Errorf("tui: unknown screen %q", id)
}

// Current returns the identifier of the visible screen.
func (m App) Current() string {
	return m.current
}

// State exposes the shared state.
func (m App) State() *State {
	return m.state
}

// Init initializes the current screen.
func (m App) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle(m.state.Lang.T("title")), m.screen.Init())
}

// Update handles messages.
func (m App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	st := m.state

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		st.Width, st.Height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, m.screen.Update(msg)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, st.Keys.Exit):
			return m.quit()
		case key.Matches(msg, st.Keys.Lang):
			st.Lang = st.Lang.Toggle()
			st.Keys = NewKeyMap(st.Lang)
			return m, tea.SetWindowTitle(st.Lang.T("title"))
		case key.Matches(msg, st.Keys.Theme):
			st.Theme = st.Theme.Toggle()
			return m, nil
		case key.Matches(msg, st.Keys.Back) && m.current != HomeID:
			return m.switchTo(HomeID)
		}

	case navigateMsg:
		return m.switchTo(msg.to)

	case quitMsg:
		return m.quit()
	}

	return m, m.screen.Update(msg)
}

func (m App) switchTo(id string) (tea.Model, tea.Cmd) {
	scr, err := open(m.state, id)
	if err != nil {
		m.state.Logger.Error("cannot open screen", "screen", id, "err", err)
		return m, nil
	}
	m.screen.Close()
	m.state.Notice = ""
	m.screen = scr
	m.current = id
	return m, tea.Batch(scr.Init(), func() tea.Msg {
		return tea.WindowSizeMsg{Width: m.state.Width, Height: m.state.Height}
	})
}

func (m App) quit() (tea.Model, tea.Cmd) {
	m.screen.Close()
	m.quitting = true
	return m, tea.Quit
}

// View renders the header, the current screen, any notice and the help bar.
func (m App) View() string {
	if m.quitting {
		return ""
	}
	st := m.state
	t := st.Theme

	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n\n")
	b.WriteString(m.screen.View())
	b.WriteString("\n")

	if st.Notice != "" {
		b.WriteString("\n")
		b.WriteString(centerText(t.Notice.Render(st.Notice), st.Width))
		b.WriteString("\n")
	}

	keys := append(m.screen.Help(), st.Keys.Lang, st.Keys.Theme, st.Keys.Exit)
	b.WriteString("\n")
	b.WriteString(t.Dim.Render(m.help.View(helpKeys(keys))))
	return b.String()
}

func (m App) header() string {
	st := m.state
	t := st.Theme

	title := t.Title.Render(st.Lang.T("title"))
	info := t.Dim.Render(fmt.Sprintf("%s · %s · %s · ", st.Lang, st.Theme.Name, st.Profile)) +
		t.Accent.Render(st.Lang.Tf("total", st.Vocab.TotalScore()))

	gap := st.Width - lipgloss.Width(title) - lipgloss.Width(info)
	if gap < 2 {
		return title + "\n" + info
	}
	return title + strings.Repeat(" ", gap) + info
}

// Run starts the interactive program on start.
func Run(d Deps, start string) error {
	app, err := NewApp(d, start)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // drags steer the collector
	)

	_, err = p.Run()
	return err
}
