package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/xolan/wl/internal/app"
	"github.com/xolan/wl/internal/osutil"
)

const (
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
	// DataDirName is the default data directory inside the app config directory
	DataDirName = "data"
)

// Storage backends accepted by the backend setting.
const (
	BackendFile = "file"
	BackendBolt = "bolt"
)

// Config represents the application configuration
type Config struct {
	// DataDir is where workout records are stored. Empty means <config dir>/wl/data.
	DataDir string `toml:"data_dir"`
	// Backend selects the record store: "file" (one JSON file per key) or "bolt".
	Backend string `toml:"backend"`
	// TemplatesDir optionally overrides the bundled default workout templates.
	TemplatesDir string `toml:"templates_dir"`
	// DefaultWorkout is the title created on first run.
	DefaultWorkout string `toml:"default_workout"`
	// Bell rings the terminal bell when a countdown completes.
	Bell bool `toml:"bell"`
	// Theme is the bubbletint theme ID used by the TUI.
	Theme string `toml:"theme"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`
}

// DefaultConfig returns a Config with the built-in defaults.
func DefaultConfig() Config {
	return Config{
		DataDir:        "",
		Backend:        BackendFile,
		TemplatesDir:   "",
		DefaultWorkout: "Workout",
		Bell:           true,
		Theme:          "dracula",
		LogLevel:       "warn",
	}
}

// GetConfigPath returns the path to the config file.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	appDir, err := osutil.AppDir(app.Name)
	if err != nil {
		return "", err
	}
	return filepath.Join(appDir, ConfigFile), nil
}

// ResolveDataDir returns the configured data directory, or the default one under the
// app config directory, creating it in both cases.
func ResolveDataDir(cfg Config) (string, error) {
	dir := cfg.DataDir
	if dir == "" {
		appDir, err := osutil.AppDir(app.Name)
		if err != nil {
			return "", err
		}
		dir = filepath.Join(appDir, DataDirName)
	}
	if err := osutil.Provider.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// Load reads and validates the config file at path.
// Keys missing from the file keep their default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	cfg := DefaultConfig()
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadOrDefault loads the config file, returning DefaultConfig when it doesn't exist.
// Any other read, parse or validation failure is returned.
func LoadOrDefault(path string) (Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// Normalize trims values and lowercases the enumerated settings.
func (c *Config) Normalize() {
	c.DataDir = strings.TrimSpace(c.DataDir)
	c.TemplatesDir = strings.TrimSpace(c.TemplatesDir)
	c.DefaultWorkout = strings.TrimSpace(c.DefaultWorkout)
	c.Theme = strings.TrimSpace(c.Theme)
	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.Backend == "" {
		c.Backend = BackendFile
	}
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
}

// Validate checks the enumerated settings. Call Normalize first.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendFile, BackendBolt:
	default:
		return fmt.Errorf("invalid backend %q: must be %q or %q", c.Backend, BackendFile, BackendBolt)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q: must be debug, info, warn or error", c.LogLevel)
	}

	if c.DefaultWorkout == "" {
		return errors.New("default_workout cannot be empty")
	}
	return nil
}

// GenerateSampleConfig returns a commented config file with every setting at its default.
func GenerateSampleConfig() string {
	return `# wl configuration file

# Directory holding workout records. Empty uses the "data" directory next to this file.
data_dir = ""

# Record store: "file" (one JSON file per workout) or "bolt" (single bbolt database)
backend = "file"

# Directory with <title>.json templates that override the bundled defaults
templates_dir = ""

# Workout title created on first run
default_workout = "Workout"

# Ring the terminal bell when a countdown finishes
bell = true

# TUI theme (bubbletint ID, e.g. "dracula", "nord", "gruvbox_dark")
theme = "dracula"

# Log level: debug, info, warn, error
log_level = "warn"
`
}
