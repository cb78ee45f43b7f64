// Package audio plays the game's cue sounds.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// DefaultSampleRate is used when none is configured.
const DefaultSampleRate = beep.SampleRate(44100)

// Player plays cue sounds.
type Player interface {
	PlayPickup()
	PlayGameOver()
}

// Silent plays nothing.
type Silent struct{}

func (Silent) PlayPickup()   {}
func (Silent) PlayGameOver() {}

// SoundManager mixes cues onto the system speaker. Until Init succeeds
// every Play call is a no-op.
type SoundManager struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool

	speakerInit func(beep.SampleRate, int) error
	speakerPlay func(...beep.Streamer)
}

// NewSoundManager creates a sound manager for the given sample rate.
func NewSoundManager(rate int) *SoundManager {
	sr := beep.SampleRate(rate)
	if rate <= 0 {
		sr = DefaultSampleRate
	}
	return &SoundManager{
		rate:        sr,
		mixer:       &beep.Mixer{},
		speakerInit: speaker.Init,
		speakerPlay: speaker.Play,
	}
}

// Init opens the audio device.
func (sm *SoundManager) Init() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := sm.speakerInit(sm.rate, sm.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: %w", err)
	}
	sm.speakerPlay(sm.mixer)
	sm.initialized = true
	return nil
}

// Close silences every queued cue.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	// beep has no speaker close; clearing the mixer stops playback.
	sm.mixer.Clear()
	sm.initialized = false
}

// PlayPickup plays a short rising chirp.
func (sm *SoundManager) PlayPickup() {
	sm.play(PickupCue(sm.rate))
}

// PlayGameOver plays a falling tone.
func (sm *SoundManager) PlayGameOver() {
	sm.play(GameOverCue(sm.rate))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.mixer.Add(s)
}

// Queued returns the number of cues still playing.
func (sm *SoundManager) Queued() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.mixer.Len()
}
