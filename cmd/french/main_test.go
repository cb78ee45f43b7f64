package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/french-arcade/internal/registry"
)

func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		flagConfig, flagDBPath, flagProfile, flagVocab, flagLang = "", "", "", "", ""
		flagFPS, flagSeed = 0, 0
	})
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "french.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestActivitiesRegistered(t *testing.T) {
	for _, id := range []string{"daily", "flashcards", "quiz", "dictation", "game"} {
		assert.True(t, registry.Exists(id), "activity %q not registered", id)
	}
}

func TestLoadConfigFlagsOverride(t *testing.T) {
	resetFlags(t)
	flagConfig = writeConfig(t, "ui:\n  lang: en\nstorage:\n  profile: file\n")
	flagProfile = "marie"
	flagLang = "fr"
	flagFPS = 30
	flagDBPath = "/tmp/french-test.db"

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "marie", cfg.Storage.Profile)
	assert.Equal(t, "fr", cfg.UI.Lang)
	assert.Equal(t, 30, cfg.UI.FPS)
	assert.Equal(t, "/tmp/french-test.db", cfg.Storage.DBPath)
}

func TestLoadConfigRejectsBadFlag(t *testing.T) {
	resetFlags(t)
	flagConfig = writeConfig(t, "ui:\n  lang: en\n")
	flagLang = "de"

	_, err := loadConfig()
	assert.Error(t, err)
}

func TestLoadCatalogue(t *testing.T) {
	resetFlags(t)
	flagConfig = writeConfig(t, "ui:\n  lang: en\n")

	cfg, err := loadConfig()
	require.NoError(t, err)

	cat, err := loadCatalogue(cfg)
	require.NoError(t, err)
	assert.Positive(t, cat.Len())

	csvPath := filepath.Join(t.TempDir(), "words.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("id,fr,en,ipa,type,difficulty\n1,chat,cat,ʃa,noun,2\n"), 0o644))
	cfg.Vocab.CataloguePath = csvPath

	cat, err = loadCatalogue(cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, cat.Len())

	cfg.Vocab.CataloguePath = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = loadCatalogue(cfg)
	assert.Error(t, err)
}
