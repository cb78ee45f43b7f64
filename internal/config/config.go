// Package config provides YAML-based configuration loading with
// environment overrides for the trainer.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/french-arcade/internal/games/collector"
)

// Config is the complete application configuration.
type Config struct {
	UI      UIConfig      `yaml:"ui"`
	Storage StorageConfig `yaml:"storage"`
	Vocab   VocabConfig   `yaml:"vocab"`
	Game    GameConfig    `yaml:"game"`
	Lessons LessonsConfig `yaml:"lessons"`
	Speech  SpeechConfig  `yaml:"speech"`
	Audio   AudioConfig   `yaml:"audio"`
	Log     LogConfig     `yaml:"log"`
	Server  ServerConfig  `yaml:"server"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Lang  string `yaml:"lang" env:"FRENCH_LANG"`
	Theme string `yaml:"theme" env:"FRENCH_THEME"`
	FPS   int    `yaml:"fps" env:"FRENCH_FPS"`
}

// StorageConfig locates persisted progress.
type StorageConfig struct {
	DBPath  string `yaml:"db" env:"FRENCH_DB"`
	Profile string `yaml:"profile" env:"FRENCH_PROFILE"`
}

// VocabConfig selects the catalogue and list sizes.
type VocabConfig struct {
	CataloguePath  string `yaml:"catalogue" env:"FRENCH_VOCAB"`
	DailyCount     int    `yaml:"daily_count" env:"FRENCH_DAILY_COUNT"`
	FlashcardCount int    `yaml:"flashcard_count"`
	DictationCount int    `yaml:"dictation_count"`
	QuizQuestions  int    `yaml:"quiz_questions"`
}

// GameConfig tunes the collector game.
type GameConfig struct {
	Cols            int           `yaml:"cols"`
	Rows            int           `yaml:"rows"`
	InitialInterval time.Duration `yaml:"initial_interval" env:"FRENCH_GAME_INTERVAL"`
	IntervalStep    time.Duration `yaml:"interval_step"`
	MinInterval     time.Duration `yaml:"min_interval"`
	GameOverDelay   time.Duration `yaml:"game_over_delay"`
	WordOverlay     time.Duration `yaml:"word_overlay"`
	SwipeThreshold  float64       `yaml:"swipe_threshold"`
	CellWidth       int           `yaml:"cell_width"`
	CellHeight      int           `yaml:"cell_height"`
}

// LessonsConfig holds feedback pauses between lesson items.
type LessonsConfig struct {
	QuizFeedback      time.Duration `yaml:"quiz_feedback"`
	DictationFeedback time.Duration `yaml:"dictation_feedback"`
}

// SpeechConfig configures the text-to-speech command.
type SpeechConfig struct {
	Enabled        bool    `yaml:"enabled" env:"FRENCH_SPEECH"`
	Command        string  `yaml:"command" env:"FRENCH_TTS"`
	Voice          string  `yaml:"voice" env:"FRENCH_VOICE"`
	WordsPerMinute int     `yaml:"words_per_minute"`
	SlowRate       float64 `yaml:"slow_rate"`
}

// AudioConfig configures cue sounds.
type AudioConfig struct {
	Enabled    bool `yaml:"enabled" env:"FRENCH_AUDIO"`
	SampleRate int  `yaml:"sample_rate"`
}

// LogConfig configures the log file.
type LogConfig struct {
	Level string `yaml:"level" env:"FRENCH_LOG_LEVEL"`
	File  string `yaml:"file" env:"FRENCH_LOG_FILE"`
}

// ServerConfig configures the SSH server.
type ServerConfig struct {
	Address     string        `yaml:"address" env:"FRENCH_SSH_ADDR"`
	HostKeyPath string        `yaml:"host_key" env:"FRENCH_HOST_KEY"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Collector converts the game section into engine settings.
func (g GameConfig) Collector() collector.Config {
	return collector.Config{
		Cols:            g.Cols,
		Rows:            g.Rows,
		InitialInterval: g.InitialInterval,
		IntervalStep:    g.IntervalStep,
		MinInterval:     g.MinInterval,
		GameOverDelay:   g.GameOverDelay,
		SwipeThreshold:  g.SwipeThreshold,
	}
}

// Validate checks the configuration for values the program cannot run with.
func (c Config) Validate() error {
	var errs []error

	switch c.UI.Lang {
	case "en", "fr":
	default:
		errs = append(errs, fmt.Errorf("%w: ui.lang %q (want en or fr)", ErrInvalid, c.UI.Lang))
	}
	switch c.UI.Theme {
	case "dark", "light":
	default:
		errs = append(errs, fmt.Errorf("%w: ui.theme %q (want dark or light)", ErrInvalid, c.UI.Theme))
	}
	if c.UI.FPS < 1 || c.UI.FPS > 120 {
		errs = append(errs, fmt.Errorf("%w: ui.fps %d outside 1..120", ErrInvalid, c.UI.FPS))
	}
	if c.Storage.DBPath == "" {
		errs = append(errs, fmt.Errorf("%w: storage.db is empty", ErrInvalid))
	}

	counts := []struct {
		name string
		n    int
	}{
		{"vocab.daily_count", c.Vocab.DailyCount},
		{"vocab.flashcard_count", c.Vocab.FlashcardCount},
		{"vocab.dictation_count", c.Vocab.DictationCount},
		{"vocab.quiz_questions", c.Vocab.QuizQuestions},
	}
	for _, cnt := range counts {
		if cnt.n < 1 {
			errs = append(errs, fmt.Errorf("%w: %s must be at least 1", ErrInvalid, cnt.name))
		}
	}

	if err := c.Game.Collector().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("%w: game: %w", ErrInvalid, err))
	}
	if c.Game.WordOverlay < 0 {
		errs = append(errs, fmt.Errorf("%w: game.word_overlay must not be negative", ErrInvalid))
	}
	if c.Game.CellWidth < 1 || c.Game.CellHeight < 1 {
		errs = append(errs, fmt.Errorf("%w: game cell size must be positive", ErrInvalid))
	}
	if c.Lessons.QuizFeedback < 0 || c.Lessons.DictationFeedback < 0 {
		errs = append(errs, fmt.Errorf("%w: lesson feedback delays must not be negative", ErrInvalid))
	}
	if c.Speech.SlowRate <= 0 || c.Speech.SlowRate > 2 {
		errs = append(errs, fmt.Errorf("%w: speech.slow_rate %.2f outside (0, 2]", ErrInvalid, c.Speech.SlowRate))
	}
	if c.Speech.WordsPerMinute < 40 {
		errs = append(errs, fmt.Errorf("%w: speech.words_per_minute %d below 40", ErrInvalid, c.Speech.WordsPerMinute))
	}
	if c.Audio.Enabled && c.Audio.SampleRate < 8000 {
		errs = append(errs, fmt.Errorf("%w: audio.sample_rate %d below 8000", ErrInvalid, c.Audio.SampleRate))
	}

	return errors.Join(errs...)
}
