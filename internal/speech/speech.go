// Package speech pronounces French words through an external text-to-speech
// program. Speech is best-effort: callers show a notice when it is
// unavailable and carry on.
package speech

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"sync"
)

// Playback rates.
const (
	NormalRate = 1.0
	SlowRate   = 0.6
)

// ErrUnsupported is returned when no speech program is available.
var ErrUnsupported = errors.New("speech: not supported")

// Speaker says text at a rate relative to the normal speed.
type Speaker interface {
	Speak(text string, rate float64) error
}

// Probe lists the programs tried, in order, when no command is configured.
var Probe = []string{"espeak-ng", "espeak", "say"}

var lookPath = exec.LookPath

// Detect returns a Command for the configured program, or for the first
// program of Probe found on PATH. It returns Disabled when none is found.
func Detect(command, voice string, wpm int) Speaker {
	candidates := Probe
	if command != "" {
		candidates = []string{command}
	}
	for _, name := range candidates {
		if path, err := lookPath(name); err == nil {
			return NewCommand(path, voice, wpm)
		}
	}
	return Disabled{}
}

// Command speaks by running a TTS program. Starting a new utterance stops
// the previous one.
type Command struct {
	path  string
	voice string
	wpm   int

	mu     sync.Mutex
	cancel context.CancelFunc
	start  func(ctx context.Context, name string, args ...string) error
}

// NewCommand creates a speaker running the program at path.
func NewCommand(path, voice string, wpm int) *Command {
	if wpm <= 0 {
		wpm = 160
	}
	return &Command{path: path, voice: voice, wpm: wpm, start: startProcess}
}

// Speak starts pronouncing text and returns without waiting for it to end.
func (c *Command) Speak(text string, rate float64) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if rate <= 0 {
		rate = NormalRate
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopLocked()
	ctx, cancel := context.WithCancel(context.Background())
	if err := c.start(ctx, c.path, c.args(text, rate)...); err != nil {
		cancel()
		return fmt.Errorf("speech: %w", err)
	}
	c.cancel = cancel
	return nil
}

// Stop interrupts the current utterance, if any.
func (c *Command) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
}

func (c *Command) stopLocked() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

func (c *Command) args(text string, rate float64) []string {
	speed := strconv.Itoa(max(int(float64(c.wpm)*rate), 1))

	switch programName(c.path) {
	case "say":
		args := []string{"-r", speed}
		if v := sayVoice(c.voice); v != "" {
			args = append(args, "-v", v)
		}
		return append(args, text)
	default:
		// espeak and espeak-ng share their flags.
		args := []string{"-s", speed}
		if c.voice != "" {
			args = append(args, "-v", c.voice)
		}
		return append(args, text)
	}
}

func programName(path string) string {
	name := path
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, ".exe")
}

// sayVoice maps language codes to a macOS voice name.
func sayVoice(voice string) string {
	switch strings.ToLower(voice) {
	case "":
		return ""
	case "fr", "fr-fr":
		return "Thomas"
	case "fr-ca":
		return "Amelie"
	default:
		return voice
	}
}

func startProcess(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	//nolint:errcheck // Reaps the process; killed utterances exit non-zero.
	go cmd.Wait()
	return nil
}

// Disabled is a Speaker for environments without speech.
type Disabled struct{}

// Speak always fails with ErrUnsupported.
func (Disabled) Speak(string, float64) error {
	return ErrUnsupported
}

// Muter wraps a Speaker with a mute switch. Muted speech succeeds silently.
type Muter struct {
	speaker Speaker
	muted   bool
}

// NewMuter wraps s.
func NewMuter(s Speaker) *Muter {
	if s == nil {
		s = Disabled{}
	}
	return &Muter{speaker: s}
}

// Speak passes text to the wrapped Speaker unless muted.
func (m *Muter) Speak(text string, rate float64) error {
	if m.muted {
		return nil
	}
	return m.speaker.Speak(text, rate)
}

// Stop cuts off the current utterance when the wrapped Speaker can.
func (m *Muter) Stop() {
	if s, ok := m.speaker.(interface{ Stop() }); ok {
		s.Stop()
	}
}

// Muted reports the mute state.
func (m *Muter) Muted() bool { return m.muted }

// Toggle flips the mute state and returns the new value. Muting also stops
// the current utterance.
func (m *Muter) Toggle() bool {
	m.muted = !m.muted
	if m.muted {
		m.Stop()
	}
	return m.muted
}
