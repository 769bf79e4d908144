// Package config resolves runtime settings. Load starts from defaults, loads
// a .env file into the process environment, applies the optional YAML file
// (RITMO_CONFIG or ~/.ritmo/config.yaml) and finally RITMO_* variables.
// Variables from .env are environment variables, so they outrank YAML and
// may themselves pick the YAML file through RITMO_CONFIG.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	DBPath      string `yaml:"db_path"`
	SessionPath string `yaml:"session_path"`
	LogUseCases bool   `yaml:"log_use_cases"`
	LogLevel    string `yaml:"log_level"`
}

// DefaultConfig keeps everything under ~/.ritmo.
func DefaultConfig(home string) Config {
	dir := filepath.Join(home, ".ritmo")
	return Config{
		DBPath:      filepath.Join(dir, "ritmo.db"),
		SessionPath: filepath.Join(dir, "session.yaml"),
		LogUseCases: false,
		LogLevel:    "info",
	}
}

// LoadConfig reads configuration for the current user, with .env taken
// from the working directory.
func LoadConfig() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	return Load(home, ".env")
}

// Load builds the configuration rooted at home. envFile may be missing.
func Load(home, envFile string) (Config, error) {
	cfg := DefaultConfig(home)

	if envFile != "" {
		// godotenv never overrides variables already set in the process.
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	file := os.Getenv("RITMO_CONFIG")
	if file == "" {
		file = filepath.Join(home, ".ritmo", "config.yaml")
	}
	if err := applyFile(&cfg, file); err != nil {
		return Config{}, err
	}
	applyEnv(&cfg)

	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("RITMO_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("RITMO_SESSION"); v != "" {
		cfg.SessionPath = v
	}
	if v := os.Getenv("RITMO_LOG_USE_CASES"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.LogUseCases = b
		}
	}
	if v := os.Getenv("RITMO_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Level is the parsed LogLevel; Load has already rejected bad values.
func (c Config) Level() slog.Level {
	lvl, _ := ParseLevel(c.LogLevel)
	return lvl
}
