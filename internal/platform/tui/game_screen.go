package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/french-arcade/internal/core"
	"github.com/vovakirdan/french-arcade/internal/games/collector"
	"github.com/vovakirdan/french-arcade/internal/speech"
	"github.com/vovakirdan/french-arcade/internal/storage"
	"github.com/vovakirdan/french-arcade/internal/timer"
	"github.com/vovakirdan/french-arcade/internal/vocab"
)

// maxFrameStep bounds how much game time one frame may advance, so a
// stalled terminal does not replay seconds of ticks at once.
const maxFrameStep = 250 * time.Millisecond

// Rows taken by the game's own header and footer lines.
const gameChromeRows = 9

// gameScreen adapts the collector engine to the terminal. It owns the
// virtual clock, turns frame ticks into clock advances and reacts to the
// engine's notifications.
type gameScreen struct {
	st     *State
	queue  *timer.Queue
	engine *collector.Engine

	gen    int
	last   time.Time
	closed bool

	// session groups the rounds played while this screen is open.
	session string
	best    int

	overlay      string
	overlayAlert bool
	overlayTimer timer.Handle
	lastWord     string

	dragging bool
	dragX    int
	dragY    int
}

func newGameScreen(st *State) *gameScreen {
	st.frames++
	g := &gameScreen{
		st:      st,
		queue:   timer.NewQueue(),
		gen:     st.frames,
		session: storage.NewSessionID(),
	}

	words := st.DailyList(st.Config.Vocab.DailyCount)
	g.engine = collector.New(st.Config.Game.Collector(), g.queue, words, st.Rand, g, st.Vocab)

	if st.Scores != nil {
		best, err := st.Scores.HighScore(st.Profile, collector.ID)
		if err != nil {
			st.Logger.Warn("cannot load high score", "err", err)
		}
		g.best = best
	}
	return g
}

func (g *gameScreen) Init() tea.Cmd {
	g.engine.Start()
	return frameCmd(g.gen, g.st.Config.UI.FPS)
}

func (g *gameScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case frameMsg:
		if msg.gen != g.gen || g.closed {
			return nil
		}
		g.advance(msg.at)
		return frameCmd(g.gen, g.st.Config.UI.FPS)

	case tea.KeyMsg:
		g.handleKey(msg)

	case tea.MouseMsg:
		g.handleMouse(msg)
	}
	return nil
}

// advance moves the game clock to now.
func (g *gameScreen) advance(now time.Time) {
	if g.last.IsZero() {
		g.last = now
		return
	}
	step := now.Sub(g.last)
	g.last = now
	if step <= 0 {
		return
	}
	g.queue.Advance(min(step, maxFrameStep))
}

var actionDirections = map[core.Action]collector.Direction{
	core.ActionUp:    collector.DirUp,
	core.ActionDown:  collector.DirDown,
	core.ActionLeft:  collector.DirLeft,
	core.ActionRight: collector.DirRight,
}

func (g *gameScreen) handleKey(msg tea.KeyMsg) {
	action := g.st.Keys.GameAction(msg)
	if action.IsDirection() {
		g.engine.Turn(actionDirections[action])
		return
	}
	switch action {
	case core.ActionRepeat:
		g.say(speech.NormalRate)
	case core.ActionSlow:
		g.say(g.st.Config.Speech.SlowRate)
	case core.ActionMute:
		g.st.Speech.Toggle()
	}
}

// handleMouse turns a press-and-release drag into a swipe.
func (g *gameScreen) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			g.dragging = true
			g.dragX, g.dragY = msg.X, msg.Y
		}
	case tea.MouseActionRelease:
		if !g.dragging {
			return
		}
		g.dragging = false
		cfg := g.st.Config.Game
		dx := float64((msg.X - g.dragX) * cfg.CellWidth)
		dy := float64((msg.Y - g.dragY) * cfg.CellHeight)
		g.engine.Swipe(dx, dy)
	}
}

func (g *gameScreen) say(rate float64) {
	if g.lastWord == "" || g.st.Speech.Muted() {
		return
	}
	g.st.Say(g.lastWord, rate)
}

// OnTargetCollected shows and pronounces the revealed word.
func (g *gameScreen) OnTargetCollected(e vocab.Entry) {
	g.lastWord = e.FR
	g.showOverlay(fmt.Sprintf("%s — %s [%s]", e.FR, e.EN, e.IPA), false, g.st.Config.Game.WordOverlay)
	g.st.Say(e.FR, speech.NormalRate)
	g.st.Sound.PlayPickup()
}

// OnScoreChanged is part of collector.Listener. The score is read from
// the snapshot when drawing.
func (g *gameScreen) OnScoreChanged(int) {}

// OnGameOver announces the final score and records it.
func (g *gameScreen) OnGameOver(ev collector.GameOverEvent) {
	g.showOverlay(g.st.Lang.Tf("game.over", ev.Score), true, g.st.Config.Game.GameOverDelay)
	g.st.Sound.PlayGameOver()
	g.st.Logger.Info("round over", "score", ev.Score, "reason", ev.Reason.String())

	if ev.Score > g.best {
		g.best = ev.Score
	}
	if ev.Score == 0 || g.st.Scores == nil {
		return
	}
	_, err := g.st.Scores.SaveScore(storage.ScoreEntry{
		Profile:   g.st.Profile,
		GameID:    collector.ID,
		SessionID: g.session,
		Score:     ev.Score,
	})
	if err != nil {
		g.st.Logger.Error("cannot save score", "err", err)
	}
}

func (g *gameScreen) showOverlay(text string, alert bool, d time.Duration) {
	g.queue.Cancel(g.overlayTimer)
	g.overlay = text
	g.overlayAlert = alert
	g.overlayTimer = g.queue.After(d, func() {
		g.overlay = ""
		g.overlayTimer = 0
	})
}

func (g *gameScreen) View() string {
	st := g.st
	t := st.Theme
	lang := st.Lang
	snap := g.engine.Snapshot()

	var b strings.Builder

	status := t.Accent.Render(lang.Tf("score", snap.Score)) + "   " +
		t.Dim.Render(lang.Tf("best", g.best))
	b.WriteString(centerText(status, st.Width))
	b.WriteString("\n")

	if g.overlay != "" && !g.overlayAlert {
		b.WriteString(centerText(t.Overlay.Render(g.overlay), st.Width))
	}
	b.WriteString("\n\n")

	cs := core.CellSize((st.Width-2)/2, st.Height-gameChromeRows, snap.Cols, snap.Rows)
	board := drawBoard(snap, cs)
	if g.overlay != "" && g.overlayAlert {
		board.DrawTextCentered(board.Height()/2, " "+g.overlay+" ", core.ColorAlert)
	}
	b.WriteString(centerBlock(RenderScreen(board, t), st.Width))
	b.WriteString("\n")

	muteLabel := lang.T("mute")
	if st.Speech.Muted() {
		muteLabel = lang.T("unmute")
	}
	controls := fmt.Sprintf("r: %s  S: %s  m: %s", lang.T("repeat"), lang.T("slow"), muteLabel)
	b.WriteString(centerText(t.Dim.Render(lang.T("game.help")), st.Width))
	b.WriteString("\n")
	b.WriteString(centerText(t.Dim.Render(controls), st.Width))
	return b.String()
}

// drawBoard renders the grid with cells cs rows tall and 2*cs columns wide.
func drawBoard(snap collector.Snapshot, cs int) *core.Screen {
	cs = max(cs, 1)
	cw := 2 * cs
	scr := core.NewScreen(snap.Cols*cw+2, snap.Rows*cs+2)
	scr.DrawBox(scr.Bounds(), core.ColorBorder)

	fill := func(p collector.Point, r rune, c core.Color) {
		for dy := 0; dy < cs; dy++ {
			for dx := 0; dx < cw; dx++ {
				scr.SetColored(1+p.X*cw+dx, 1+p.Y*cs+dy, r, c)
			}
		}
	}

	for y := 0; y < snap.Rows; y++ {
		for x := 0; x < snap.Cols; x++ {
			scr.SetColored(1+x*cw, 1+y*cs, '·', core.ColorGrid)
		}
	}

	if snap.Target.X >= 0 {
		fill(snap.Target, '▓', core.ColorTarget)
	}
	for i := len(snap.Segments) - 1; i >= 0; i-- {
		c := core.ColorBody
		if i == 0 {
			c = core.ColorHead
		}
		fill(snap.Segments[i], '█', c)
	}
	return scr
}

func (g *gameScreen) Help() []key.Binding {
	k := g.st.Keys
	move := key.NewBinding(key.WithKeys("up", "down", "left", "right"), key.WithHelp("←↑↓→", g.st.Lang.T("navigate")))
	return []key.Binding{move, k.Repeat, k.Slow, k.Mute, k.Back}
}

// Close stops the engine, drops every pending timer and silences speech.
func (g *gameScreen) Close() {
	g.closed = true
	g.engine.Stop()
	g.queue.CancelAll()
	g.st.Speech.Stop()
}
