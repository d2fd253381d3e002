// Package service wires wl's configuration, storage, templates, workouts and timer
// together and exposes them to the CLI and TUI frontends.
package service

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xolan/wl/internal/config"
	"github.com/xolan/wl/internal/logging"
	"github.com/xolan/wl/internal/storage"
	"github.com/xolan/wl/internal/templates"
	"github.com/xolan/wl/internal/timer"
	"github.com/xolan/wl/internal/workout"
)

// Services holds all service instances used by the application
type Services struct {
	Config   *ConfigService
	Workouts *WorkoutService
	Timer    *TimerService
	Logger   *slog.Logger

	store *storage.Store
}

// NewServices creates a new Services instance from the config file in the default
// location. Logs go to stderr at the configured level.
func NewServices() (*Services, error) {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}

	logger := logging.New(os.Stderr, cfg.LogLevel)
	var opts []timer.Option
	if cfg.Bell {
		opts = append(opts, timer.WithSignal(timer.BellSignal(os.Stdout)))
	}
	return NewServicesWithConfig(configPath, cfg, logger, opts...)
}

// NewServicesWithConfig creates a new Services instance for an already loaded config
// (useful for testing). timerOpts are applied after the defaults.
func NewServicesWithConfig(configPath string, cfg config.Config, logger *slog.Logger, timerOpts ...timer.Option) (*Services, error) {
	if logger == nil {
		logger = logging.Discard()
	}

	dataDir, err := config.ResolveDataDir(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory: %w", err)
	}

	backend, err := openBackend(cfg.Backend, dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.Backend, err)
	}
	store := storage.New(backend, logger.With("component", "storage"))

	collection := workout.LoadCollection(store, cfg.DefaultWorkout)
	tpl := templates.New(cfg.TemplatesDir)

	opts := append([]timer.Option{timer.WithLogger(logger.With("component", "timer"))}, timerOpts...)
	controller := timer.New(opts...)

	logger.Debug("services ready", "backend", cfg.Backend, "data_dir", dataDir)

	return &Services{
		Config:   NewConfigService(configPath, cfg),
		Workouts: NewWorkoutService(store, tpl, collection),
		Timer:    NewTimerService(controller),
		Logger:   logger,
		store:    store,
	}, nil
}

// Close stops the timer and closes the record store.
func (s *Services) Close() error {
	s.Timer.Close()
	return s.store.Close()
}

func openBackend(kind, dataDir string) (storage.Backend, error) {
	switch kind {
	case config.BackendBolt:
		b, err := storage.OpenBolt(filepath.Join(dataDir, storage.BoltFile))
		if err != nil {
			return nil, err
		}
		return b, nil
	case config.BackendFile, "":
		return storage.NewFileBackend(dataDir), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", kind)
	}
}
