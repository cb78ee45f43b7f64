package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// clearEnv unsets every variable Load reads and restores it afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"FRENCH_LANG", "FRENCH_THEME", "FRENCH_FPS", "FRENCH_DB", "FRENCH_PROFILE",
		"FRENCH_VOCAB", "FRENCH_DAILY_COUNT", "FRENCH_GAME_INTERVAL",
		"FRENCH_SPEECH", "FRENCH_TTS", "FRENCH_VOICE", "FRENCH_AUDIO",
		"FRENCH_LOG_LEVEL", "FRENCH_LOG_FILE", "FRENCH_SSH_ADDR", "FRENCH_HOST_KEY",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	game := cfg.Game.Collector()
	assert.Equal(t, 20, game.Cols)
	assert.Equal(t, 300*time.Millisecond, game.InitialInterval)
	assert.Equal(t, 100*time.Millisecond, game.MinInterval)
	assert.Equal(t, 3*time.Second, game.GameOverDelay)
	assert.NoError(t, game.Validate())
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	var cfg Config
	require.NoError(t, yaml.Unmarshal(DefaultYAML(), &cfg))
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"lang", func(c *Config) { c.UI.Lang = "de" }},
		{"theme", func(c *Config) { c.UI.Theme = "neon" }},
		{"fps", func(c *Config) { c.UI.FPS = 0 }},
		{"db", func(c *Config) { c.Storage.DBPath = "" }},
		{"daily count", func(c *Config) { c.Vocab.DailyCount = 0 }},
		{"quiz questions", func(c *Config) { c.Vocab.QuizQuestions = -1 }},
		{"grid", func(c *Config) { c.Game.Cols = 2 }},
		{"min interval", func(c *Config) { c.Game.MinInterval = 0 }},
		{"overlay", func(c *Config) { c.Game.WordOverlay = -time.Second }},
		{"cell size", func(c *Config) { c.Game.CellWidth = 0 }},
		{"feedback", func(c *Config) { c.Lessons.QuizFeedback = -1 }},
		{"slow rate", func(c *Config) { c.Speech.SlowRate = 0 }},
		{"wpm", func(c *Config) { c.Speech.WordsPerMinute = 10 }},
		{"sample rate", func(c *Config) { c.Audio.SampleRate = 100 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid))
		})
	}
}

func TestValidateIgnoresSampleRateWhenAudioOff(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Audio.Enabled = false
	cfg.Audio.SampleRate = 0
	assert.NoError(t, cfg.Validate())
}

func TestLoadEmbeddedWhenNoFiles(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	cfg, err := load("", filepath.Join(dir, "missing.yaml"), filepath.Join(dir, "also-missing.yaml"), "")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadCustomPathMergesOverDefaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  lang: fr\ngame:\n  cols: 12\n  initial_interval: 250ms\n"), 0o644))

	cfg, err := load(path, "", "", "")
	require.NoError(t, err)
	assert.Equal(t, "fr", cfg.UI.Lang)
	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.Equal(t, 12, cfg.Game.Cols)
	assert.Equal(t, 20, cfg.Game.Rows)
	assert.Equal(t, 250*time.Millisecond, cfg.Game.InitialInterval)
}

func TestLoadCustomPathErrors(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	_, err := load(filepath.Join(dir, "nope.yaml"), "", "", "")
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("ui: [unclosed"), 0o644))
	_, err = load(bad, "", "", "")
	assert.Error(t, err)
}

func TestLoadSearchOrder(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	user := filepath.Join(dir, "user.yaml")
	local := filepath.Join(dir, "local.yaml")
	require.NoError(t, os.WriteFile(local, []byte("ui:\n  theme: light\n"), 0o644))

	cfg, err := load("", user, local, "")
	require.NoError(t, err)
	assert.Equal(t, "light", cfg.UI.Theme, "local file used when user file is missing")

	require.NoError(t, os.WriteFile(user, []byte("ui:\n  lang: fr\n"), 0o644))
	cfg, err = load("", user, local, "")
	require.NoError(t, err)
	assert.Equal(t, "fr", cfg.UI.Lang)
	assert.Equal(t, "dark", cfg.UI.Theme, "user file wins over local file")
}

func TestLoadMalformedSearchFileSkipped(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	user := filepath.Join(dir, "user.yaml")
	require.NoError(t, os.WriteFile(user, []byte("::: nonsense"), 0o644))

	cfg, err := load("", user, "", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("FRENCH_LANG", "fr")
	t.Setenv("FRENCH_FPS", "60")
	t.Setenv("FRENCH_SPEECH", "false")
	t.Setenv("FRENCH_GAME_INTERVAL", "400ms")
	t.Setenv("FRENCH_DB", "/tmp/x.db")

	cfg, err := load("", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, "fr", cfg.UI.Lang)
	assert.Equal(t, 60, cfg.UI.FPS)
	assert.False(t, cfg.Speech.Enabled)
	assert.Equal(t, 400*time.Millisecond, cfg.Game.InitialInterval)
	assert.Equal(t, "/tmp/x.db", cfg.Storage.DBPath)
}

func TestLoadEnvInvalidValue(t *testing.T) {
	clearEnv(t)
	t.Setenv("FRENCH_LANG", "klingon")

	_, err := load("", "", "", "")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("FRENCH_THEME=light\nFRENCH_PROFILE=marie\n"), 0o644))

	// The process env wins over .env.
	t.Setenv("FRENCH_PROFILE", "paul")

	cfg, err := load("", "", "", envFile)
	require.NoError(t, err)
	assert.Equal(t, "light", cfg.UI.Theme)
	assert.Equal(t, "paul", cfg.Storage.Profile)

	// godotenv.Load set FRENCH_THEME on the process; clearEnv's cleanup
	// restores the original state.
}

func TestLoadMissingDotEnvIgnored(t *testing.T) {
	clearEnv(t)
	_, err := load("", "", "", filepath.Join(t.TempDir(), ".env"))
	assert.NoError(t, err)
}

func TestEnvHelp(t *testing.T) {
	help, err := EnvHelp()
	require.NoError(t, err)
	assert.Contains(t, help, "FRENCH_LANG")
	assert.Contains(t, help, "FRENCH_DB")
}
