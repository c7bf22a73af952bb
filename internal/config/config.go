package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

// InputMode selects how mouse events are interpreted.
type InputMode string

const (
	InputPointer InputMode = "pointer"
	InputTouch   InputMode = "touch"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Source SourceConfig
	State  StateConfig
	Log    LogConfig
	Input  InputConfig
	View   ViewConfig
}

// SourceConfig points at the initial card data.
type SourceConfig struct {
	Path string
}

// StateConfig holds where the UI focus state is kept.
type StateConfig struct {
	Dir string
}

// LogConfig holds zerolog settings.
type LogConfig struct {
	Level  string
	Format string
	File   string
}

// InputConfig holds drag input settings.
type InputConfig struct {
	Mode      InputMode
	TouchDrop bool
}

// ViewConfig holds rendering settings.
type ViewConfig struct {
	CardWidth int
	StatusTTL time.Duration
}

const minCardWidth = 16

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	touchDrop, err := getEnvBool("KANBAN_TOUCH_DROP", false)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	cardWidth, err := getEnvInt("KANBAN_CARD_WIDTH", 28)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	statusTTL, err := getEnvDuration("KANBAN_STATUS_TTL", 3*time.Second)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	cfg := &Config{
		Source: SourceConfig{
			Path: getEnv("KANBAN_SOURCE", "cards.yaml"),
		},
		State: StateConfig{
			Dir: getEnv("KANBAN_STATE_DIR", ".kanban"),
		},
		Log: LogConfig{
			Level:  getEnv("KANBAN_LOG_LEVEL", "info"),
			Format: getEnv("KANBAN_LOG_FORMAT", "json"),
			File:   getEnv("KANBAN_LOG_FILE", ""),
		},
		Input: InputConfig{
			Mode:      InputMode(getEnv("KANBAN_INPUT", string(InputPointer))),
			TouchDrop: touchDrop,
		},
		View: ViewConfig{
			CardWidth: cardWidth,
			StatusTTL: statusTTL,
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	return cfg, nil
}

// validate checks enumerations and value bounds.
func (c *Config) validate() error {
	switch c.Input.Mode {
	case InputPointer, InputTouch:
	default:
		return fmt.Errorf("KANBAN_INPUT must be %q or %q, got %q", InputPointer, InputTouch, c.Input.Mode)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("KANBAN_LOG_LEVEL: %w", err)
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("KANBAN_LOG_FORMAT must be json or text, got %q", c.Log.Format)
	}
	if c.View.CardWidth < minCardWidth {
		return fmt.Errorf("KANBAN_CARD_WIDTH must be >= %d, got %d", minCardWidth, c.View.CardWidth)
	}
	if c.View.StatusTTL <= 0 {
		return fmt.Errorf("KANBAN_STATUS_TTL must be positive, got %s", c.View.StatusTTL)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parsing %s=%q as int: %w", key, v, err)
	}
	return n, nil
}

func getEnvBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("parsing %s=%q as bool: %w", key, v, err)
	}
	return b, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("parsing %s=%q as duration: %w", key, v, err)
	}
	return d, nil
}
