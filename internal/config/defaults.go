package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/french.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultYAML))
	copy(out, defaultYAML)
	return out
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		UI: UIConfig{
			Lang:  "en",
			Theme: "dark",
			FPS:   30,
		},
		Storage: StorageConfig{
			DBPath:  "~/.french/french.db",
			Profile: "default",
		},
		Vocab: VocabConfig{
			DailyCount:     5,
			FlashcardCount: 5,
			DictationCount: 3,
			QuizQuestions:  5,
		},
		Game: GameConfig{
			Cols:            20,
			Rows:            20,
			InitialInterval: 300 * time.Millisecond,
			IntervalStep:    10 * time.Millisecond,
			MinInterval:     100 * time.Millisecond,
			GameOverDelay:   3 * time.Second,
			WordOverlay:     3 * time.Second,
			SwipeThreshold:  30,
			CellWidth:       8,
			CellHeight:      16,
		},
		Lessons: LessonsConfig{
			QuizFeedback:      time.Second,
			DictationFeedback: 800 * time.Millisecond,
		},
		Speech: SpeechConfig{
			Enabled:        true,
			Voice:          "fr",
			WordsPerMinute: 160,
			SlowRate:       0.6,
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.french/french.log",
		},
		Server: ServerConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
	}
}
