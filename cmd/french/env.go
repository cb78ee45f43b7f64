package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/french-arcade/internal/audio"
	"github.com/vovakirdan/french-arcade/internal/config"
	"github.com/vovakirdan/french-arcade/internal/logging"
	"github.com/vovakirdan/french-arcade/internal/platform/tui"
	"github.com/vovakirdan/french-arcade/internal/speech"
	"github.com/vovakirdan/french-arcade/internal/storage"
	"github.com/vovakirdan/french-arcade/internal/vocab"
)

// loadConfig reads the configuration and applies the global flags.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagProfile != "" {
		cfg.Storage.Profile = flagProfile
	}
	if flagVocab != "" {
		cfg.Vocab.CataloguePath = flagVocab
	}
	if flagLang != "" {
		cfg.UI.Lang = flagLang
	}
	if flagFPS != 0 {
		cfg.UI.FPS = flagFPS
	}

	return cfg, cfg.Validate()
}

// loadCatalogue returns the configured catalogue, or the built-in one.
func loadCatalogue(cfg config.Config) (*vocab.Catalogue, error) {
	if cfg.Vocab.CataloguePath == "" {
		return vocab.DefaultCatalogue(), nil
	}
	path, err := storage.ExpandHome(cfg.Vocab.CataloguePath)
	if err != nil {
		return nil, err
	}
	return vocab.LoadCatalogue(path)
}

// appEnv is everything a local session runs on.
type appEnv struct {
	cfg    config.Config
	logger *log.Logger
	store  *storage.Store
	vocab  *vocab.Store
	sound  *audio.SoundManager

	closeLog func() error
}

// setup loads the configuration and opens the services. A missing
// database only costs persistence: progress is then kept in memory.
func setup() (*appEnv, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger, closeLog, err := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		File:   cfg.Log.File,
		Prefix: "french",
	})
	if err != nil {
		return nil, err
	}
	env := &appEnv{cfg: cfg, logger: logger, closeLog: closeLog}

	cat, err := loadCatalogue(cfg)
	if err != nil {
		env.Close()
		return nil, fmt.Errorf("cannot load vocabulary: %w", err)
	}

	var kv vocab.KV = vocab.MemoryKV{}
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("progress will not be saved", "db", cfg.Storage.DBPath, "err", err)
	} else {
		env.store = store
		pkv := store.Profile(cfg.Storage.Profile)
		env.cfg.Storage.Profile = pkv.Name()
		kv = pkv
	}
	env.vocab = vocab.NewStore(cat, kv, logger)

	logger.Info("session started", "profile", env.cfg.Storage.Profile, "words", cat.Len())
	return env, nil
}

// deps returns the TUI dependencies, starting speech and audio as
// configured.
func (e *appEnv) deps() tui.Deps {
	d := tui.Deps{
		Config:  e.cfg,
		Vocab:   e.vocab,
		Profile: e.cfg.Storage.Profile,
		Speaker: speech.Disabled{},
		Sound:   audio.Silent{},
		Logger:  e.logger,
		Seed:    flagSeed,
	}
	if e.store != nil {
		d.Scores = e.store
	}

	if e.cfg.Speech.Enabled {
		d.Speaker = speech.Detect(e.cfg.Speech.Command, e.cfg.Speech.Voice, e.cfg.Speech.WordsPerMinute)
	}
	if e.cfg.Audio.Enabled {
		sm := audio.NewSoundManager(e.cfg.Audio.SampleRate)
		if err := sm.Init(); err != nil {
			e.logger.Warn("audio disabled", "err", err)
		} else {
			e.sound = sm
			d.Sound = sm
		}
	}
	return d
}

// Close releases the services opened by setup.
func (e *appEnv) Close() error {
	var errs []error
	if e.sound != nil {
		e.sound.Close()
	}
	if e.store != nil {
		errs = append(errs, e.store.Close())
	}
	if e.closeLog != nil {
		errs = append(errs, e.closeLog())
	}
	return errors.Join(errs...)
}
