// Package config loads reportdeck settings from YAML with environment overrides.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/reportdeck/multiselect"
	"github.com/lixenwraith/reportdeck/period"
)

// Environment variables consulted by Load
const (
	EnvConfig = "REPORTDECK_CONFIG"
	EnvDB     = "REPORTDECK_DB"
	EnvListen = "REPORTDECK_LISTEN"
)

// Config is the root configuration document
type Config struct {
	DB          string             `yaml:"db"`
	Listen      string             `yaml:"listen"`
	LogLevel    string             `yaml:"log_level"`
	LogFile     string             `yaml:"log_file"`
	Period      string             `yaml:"period"`
	PanelHeight int                `yaml:"panel_height"`
	Audio       Audio              `yaml:"audio"`
	Labels      multiselect.Labels `yaml:"labels"`
}

// Audio controls click feedback
type Audio struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 - 1.0
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		DB:          "reportdeck.db",
		Listen:      "127.0.0.1:8087",
		LogLevel:    "info",
		Period:      "30d",
		PanelHeight: 12,
		Audio:       Audio{Enabled: false, Volume: 0.5},
		Labels:      multiselect.DefaultLabels(),
	}
}

// Load reads path, or $REPORTDECK_CONFIG when path is empty, over the defaults
// A missing file is only an error when a path was given explicitly
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvConfig)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist) && !explicit:
		default:
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	if v := os.Getenv(EnvDB); v != "" {
		cfg.DB = v
	}
	if v := os.Getenv(EnvListen); v != "" {
		cfg.Listen = v
	}

	cfg.Labels = cfg.Labels.Merge(multiselect.DefaultLabels())
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges
func (c Config) Validate() error {
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume %.2f out of range [0,1]", c.Audio.Volume)
	}
	if !period.Known(c.Period) {
		return fmt.Errorf("period %q unknown, want one of %s", c.Period, strings.Join(period.Keys(), ", "))
	}
	if c.PanelHeight < 0 {
		return fmt.Errorf("panel_height must not be negative")
	}
	if c.DB == "" {
		return fmt.Errorf("db path is empty")
	}
	return nil
}

// ParseLevel maps a level name to slog.Level
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
	return 0, fmt.Errorf("unknown log_level %q", s)
}

// NewLogger builds the process logger
// When screen is true stderr belongs to the TUI, so output goes to LogFile or is discarded
func (c Config) NewLogger(screen bool) (*slog.Logger, io.Closer, error) {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		return slog.New(slog.NewTextHandler(f, opts)), f, nil
	}
	if screen {
		return slog.New(slog.NewTextHandler(io.Discard, opts)), io.NopCloser(nil), nil
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts)), io.NopCloser(nil), nil
}
