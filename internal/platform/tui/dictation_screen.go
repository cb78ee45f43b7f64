package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/french-arcade/internal/lessons/dictation"
	"github.com/vovakirdan/french-arcade/internal/speech"
)

// dictationScreen plays a word and checks what the learner types.
type dictationScreen struct {
	st       *State
	dict     *dictation.Dictation
	input    textinput.Model
	feedback *dictation.Result
	seq      int
}

func newDictationScreen(st *State) *dictationScreen {
	ti := textinput.New()
	ti.Placeholder = st.Lang.T("type.here")
	ti.CharLimit = 80
	ti.Width = 36
	ti.Focus()

	return &dictationScreen{
		st:    st,
		dict:  dictation.New(st.DailyList(st.Config.Vocab.DictationCount), st.Vocab),
		input: ti,
	}
}

func (d *dictationScreen) Init() tea.Cmd {
	return textinput.Blink
}

func (d *dictationScreen) Update(msg tea.Msg) tea.Cmd {
	keys := d.st.Keys

	switch msg := msg.(type) {
	case advanceMsg:
		if msg.seq == d.seq && d.feedback != nil {
			d.feedback = nil
			d.input.Reset()
		}
		return nil

	case tea.KeyMsg:
		if d.feedback != nil {
			return nil
		}
		if d.dict.Done() {
			if key.Matches(msg, keys.Confirm) {
				d.dict = dictation.New(d.st.DailyList(d.st.Config.Vocab.DictationCount), d.st.Vocab)
				d.input.Reset()
			}
			return nil
		}
		switch msg.Type {
		case tea.KeyTab:
			if e, ok := d.dict.Current(); ok {
				d.st.Say(e.FR, speech.NormalRate)
			}
			return nil
		case tea.KeyEnter:
			return d.submit()
		}
	}

	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return cmd
}

func (d *dictationScreen) submit() tea.Cmd {
	res, err := d.dict.Submit(d.input.Value())
	if err != nil {
		return nil
	}
	d.feedback = &res
	d.seq++
	return advanceAfter(d.st.Config.Lessons.DictationFeedback, d.seq)
}

func (d *dictationScreen) View() string {
	st := d.st
	t := st.Theme
	lang := st.Lang
	d.input.Placeholder = lang.T("type.here")

	var b strings.Builder
	b.WriteString(centerText(t.Accent.Render(registryTitle(st, dictation.ID)), st.Width))
	b.WriteString("\n\n")

	if d.dict.Len() == 0 {
		b.WriteString(centerText(t.Dim.Render(lang.T("empty")), st.Width))
		return b.String()
	}

	var card strings.Builder
	if d.dict.Done() && d.feedback == nil {
		card.WriteString(t.Title.Render(lang.T("dictation.done")))
		card.WriteString("\n\n")
		card.WriteString(t.Text.Render(lang.Tf("your.score", d.dict.Score(), d.dict.Len())))
		for _, r := range d.dict.Results() {
			card.WriteString("\n")
			mark := t.Good.Render("✓ ")
			if !r.Correct {
				mark = t.Bad.Render("✗ ")
			}
			card.WriteString(mark + t.Text.Render(r.Entry.FR))
		}
		b.WriteString(centerBlock(t.Card.Render(card.String()), st.Width))
		return b.String()
	}

	step := min(d.dict.Index()+1, d.dict.Len())
	if d.feedback != nil {
		step = d.dict.Index()
	}
	card.WriteString(t.Dim.Render(lang.Tf("question", step, d.dict.Len())))
	card.WriteString("\n\n")
	card.WriteString(t.Title.Render(lang.T("dictation.title")))
	card.WriteString("\n")
	card.WriteString(t.Dim.Render("tab: " + lang.T("play")))
	card.WriteString("\n\n")
	card.WriteString(d.input.View())
	card.WriteString("\n\n")

	switch {
	case d.feedback == nil:
		card.WriteString(t.Dim.Render("enter: " + lang.T("submit")))
	case d.feedback.Correct:
		card.WriteString(t.Good.Render(lang.T("correct")))
	default:
		card.WriteString(t.Bad.Render(lang.T("incorrect")) + "  " +
			t.Dim.Render(lang.Tf("answer.was", d.feedback.Entry.FR)))
	}

	b.WriteString(centerBlock(t.Card.Width(46).Render(card.String()), st.Width))
	return b.String()
}

func (d *dictationScreen) Help() []key.Binding {
	k := d.st.Keys
	submit := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", d.st.Lang.T("submit")))
	return []key.Binding{k.Play, submit, k.Back}
}

func (d *dictationScreen) Close() {
	d.seq++
}
