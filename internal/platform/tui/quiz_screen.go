package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/french-arcade/internal/lessons/quiz"
)

// quizScreen runs a multiple-choice round. After each answer the outcome
// stays on screen for the feedback delay before the next question.
type quizScreen struct {
	st      *State
	quiz    *quiz.Quiz
	cursor  int
	waiting bool
	seq     int
}

func newQuizScreen(st *State) *quizScreen {
	q := &quizScreen{st: st}
	q.restart()
	return q
}

func (q *quizScreen) restart() {
	q.quiz = quiz.New(q.st.Vocab.Catalogue().Entries(), q.st.Rand, q.st.Config.Vocab.QuizQuestions, q.st.Vocab)
	q.cursor = 0
	q.waiting = false
	q.seq++
}

func (q *quizScreen) Init() tea.Cmd { return nil }

func (q *quizScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case advanceMsg:
		if msg.seq != q.seq || !q.waiting {
			return nil
		}
		q.waiting = false
		q.cursor = 0
		q.quiz.Next()
		return nil

	case tea.KeyMsg:
		return q.handleKey(msg)
	}
	return nil
}

func (q *quizScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	keys := q.st.Keys

	if q.quiz.Done() {
		if key.Matches(msg, keys.Confirm) {
			q.restart()
		}
		return nil
	}
	if q.waiting {
		return nil
	}

	cur, _ := q.quiz.Current()
	if n, ok := keys.Option(msg); ok && n < len(cur.Options) {
		q.cursor = n
		return q.answer()
	}

	switch {
	case key.Matches(msg, keys.Up):
		if q.cursor > 0 {
			q.cursor--
		}
	case key.Matches(msg, keys.Down):
		if q.cursor < len(cur.Options)-1 {
			q.cursor++
		}
	case key.Matches(msg, keys.Confirm):
		return q.answer()
	}
	return nil
}

func (q *quizScreen) answer() tea.Cmd {
	if _, err := q.quiz.Answer(q.cursor); err != nil {
		q.st.Logger.Debug("answer ignored", "err", err)
		return nil
	}
	q.waiting = true
	q.seq++
	return advanceAfter(q.st.Config.Lessons.QuizFeedback, q.seq)
}

func (q *quizScreen) View() string {
	st := q.st
	t := st.Theme
	lang := st.Lang

	var b strings.Builder
	b.WriteString(centerText(t.Accent.Render(registryTitle(st, quiz.ID)), st.Width))
	b.WriteString("\n\n")

	if q.quiz.Len() == 0 {
		b.WriteString(centerText(t.Dim.Render(lang.T("empty")), st.Width))
		return b.String()
	}

	if q.quiz.Done() {
		var res strings.Builder
		res.WriteString(t.Title.Render(lang.T("quiz.done")))
		res.WriteString("\n\n")
		res.WriteString(t.Text.Render(lang.Tf("your.score", q.quiz.Score(), q.quiz.Len())))
		b.WriteString(centerBlock(t.Card.Render(res.String()), st.Width))
		return b.String()
	}

	cur, _ := q.quiz.Current()
	var card strings.Builder
	card.WriteString(t.Dim.Render(lang.Tf("question", q.quiz.Index()+1, q.quiz.Len())))
	card.WriteString("\n\n")
	card.WriteString(t.Text.Render(lang.T("translate")+" ") + t.Title.Render(cur.Entry.FR))
	card.WriteString("\n\n")

	for i, opt := range cur.Options {
		marker := "  "
		style := t.ItemNormal
		if i == q.cursor && !cur.Answered() {
			marker = "> "
			style = t.ItemActive
		}
		if cur.Answered() {
			switch {
			case i == cur.Correct:
				marker, style = "✓ ", t.Good
			case i == cur.Chosen:
				marker, style = "✗ ", t.Bad
			}
		}
		card.WriteString(style.Render(fmt.Sprintf("%s%d. %s", marker, i+1, opt)))
		card.WriteString("\n")
	}

	b.WriteString(centerBlock(t.Card.Width(46).Render(strings.TrimRight(card.String(), "\n")), st.Width))
	b.WriteString("\n\n")
	b.WriteString(centerText(t.Dim.Render(lang.Tf("score", q.quiz.Score())), st.Width))
	return b.String()
}

func (q *quizScreen) Help() []key.Binding {
	k := q.st.Keys
	pick := key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", q.st.Lang.T("select")))
	return []key.Binding{k.Up, pick, k.Confirm, k.Back}
}

func (q *quizScreen) Close() {
	q.seq++
}
