// Package config loads the CLI settings from ~/.taskboard/config.json with
// environment overrides.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"taskboard/pkg/client"
	"taskboard/pkg/report"
)

// DefaultSchedule is how often `taskboard watch` logs a digest.
const DefaultSchedule = "@every 1h"

// Config holds CLI settings.
type Config struct {
	APIURL     string `json:"apiUrl"`
	AIURL      string `json:"aiUrl"`
	WindowDays int    `json:"windowDays"`
	Schedule   string `json:"schedule"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		APIURL:     client.DefaultAPIURL,
		AIURL:      client.DefaultAIURL,
		WindowDays: report.DefaultWindowDays,
		Schedule:   DefaultSchedule,
	}
}

// Dir is the settings directory, $TASKBOARD_HOME or ~/.taskboard.
func Dir() string {
	if dir := os.Getenv("TASKBOARD_HOME"); dir != "" {
		return dir
	}
	home := os.Getenv("HOME")
	if home == "" {
		home, _ = os.UserHomeDir()
	}
	return filepath.Join(home, ".taskboard")
}

// Path is the config file location.
func Path() string {
	return filepath.Join(Dir(), "config.json")
}

// TokenPath is where the login token is kept.
func TokenPath() string {
	return filepath.Join(Dir(), "token")
}

// Load reads the config file if present and applies environment overrides.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if url := os.Getenv("TASKBOARD_API_URL"); url != "" {
		cfg.APIURL = url
	}
	if url := os.Getenv("TASKBOARD_AI_URL"); url != "" {
		cfg.AIURL = url
	}
	if days := os.Getenv("TASKBOARD_WINDOW_DAYS"); days != "" {
		if n, err := strconv.Atoi(days); err == nil {
			cfg.WindowDays = n
		}
	}
	if sched := os.Getenv("TASKBOARD_SCHEDULE"); sched != "" {
		cfg.Schedule = sched
	}

	if cfg.APIURL == "" {
		cfg.APIURL = client.DefaultAPIURL
	}
	if cfg.AIURL == "" {
		cfg.AIURL = client.DefaultAIURL
	}
	if cfg.WindowDays <= 0 {
		cfg.WindowDays = report.DefaultWindowDays
	}
	if cfg.Schedule == "" {
		cfg.Schedule = DefaultSchedule
	}
	return cfg, nil
}

// Save writes cfg to the config file.
func Save(cfg *Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(Path(), data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
