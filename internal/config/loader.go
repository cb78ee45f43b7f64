package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load reads the configuration.
//
// File search order: customPath -> ~/.french/config.yaml ->
// ./configs/french.yaml -> embedded default. Values missing from the file
// keep their defaults. A ./.env file is then loaded into the environment
// (existing variables win) and FRENCH_* variables override the file.
func Load(customPath string) (Config, error) {
	return load(customPath, userConfigPath("config.yaml"), filepath.Join("configs", "french.yaml"), ".env")
}

func load(customPath, userPath, localPath, envFile string) (Config, error) {
	cfg := DefaultConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
	} else if !tryFile(&cfg, userPath) && !tryFile(&cfg, localPath) {
		if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
			cfg = DefaultConfig()
		}
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// tryFile merges the YAML file at path into cfg. Unreadable or malformed
// files are skipped.
func tryFile(cfg *Config, path string) bool {
	if path == "" {
		return false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	next := *cfg
	if err := yaml.Unmarshal(data, &next); err != nil {
		return false
	}
	*cfg = next
	return true
}

// userConfigPath returns the path to a file in the user config directory,
// or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".french", filename)
}

// EnvHelp describes the supported environment variables.
func EnvHelp() (string, error) {
	var cfg Config
	return cleanenv.GetDescription(&cfg, nil)
}
