package service

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/xolan/wl/internal/app"
	"github.com/xolan/wl/internal/config"
)

// ConfigService provides operations for managing configuration
type ConfigService struct {
	configPath string
	config     config.Config
}

// NewConfigService creates a new ConfigService
func NewConfigService(configPath string, cfg config.Config) *ConfigService {
	return &ConfigService{
		configPath: configPath,
		config:     cfg,
	}
}

// Get returns the current configuration
func (s *ConfigService) Get() config.Config {
	return s.config
}

// GetPath returns the path to the config file
func (s *ConfigService) GetPath() string {
	return s.configPath
}

// Exists checks if the config file exists
func (s *ConfigService) Exists() bool {
	_, err := os.Stat(s.configPath)
	return err == nil
}

// DataDir returns the resolved data directory.
func (s *ConfigService) DataDir() (string, error) {
	return config.ResolveDataDir(s.config)
}

// Update validates cfg, writes it to the config file and makes it current.
func (s *ConfigService) Update(cfg config.Config) error {
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := s.writeConfig(cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	s.config = cfg
	return nil
}

// Init creates a sample config file
func (s *ConfigService) Init() error {
	if s.Exists() {
		return fmt.Errorf("config file already exists at %s", s.configPath)
	}

	sample := config.GenerateSampleConfig()
	if err := os.WriteFile(s.configPath, []byte(sample), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Reload reloads the configuration from disk
func (s *ConfigService) Reload() error {
	cfg, err := config.LoadOrDefault(s.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	s.config = cfg
	return nil
}

// writeConfig writes cfg to the config file in TOML format
func (s *ConfigService) writeConfig(cfg config.Config) error {
	f, err := os.Create(s.configPath)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(f, "# %s configuration file\n\n", app.Name); err != nil {
		_ = f.Close()
		return err
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
