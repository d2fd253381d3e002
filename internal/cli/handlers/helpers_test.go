package handlers

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xolan/wl/internal/cli"
	"github.com/xolan/wl/internal/config"
	"github.com/xolan/wl/internal/service"
	"github.com/xolan/wl/internal/timer"
)

// setupTestDeps creates deps over services rooted in a temporary directory
func setupTestDeps(t *testing.T, timerOpts ...timer.Option) (*cli.Deps, *bytes.Buffer, *bytes.Buffer, *int) {
	t.Helper()
	tmpDir := t.TempDir()

	cfg := config.DefaultConfig()
	cfg.DataDir = filepath.Join(tmpDir, "data")
	cfg.Bell = false

	if len(timerOpts) == 0 {
		timerOpts = []timer.Option{timer.WithManualTicks()}
	}
	services, err := service.NewServicesWithConfig(filepath.Join(tmpDir, "config.toml"), cfg, nil, timerOpts...)
	if err != nil {
		t.Fatalf("failed to create services: %v", err)
	}
	t.Cleanup(func() { _ = services.Close() })

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	exitCode := 0

	deps := &cli.Deps{
		Stdout:   stdout,
		Stderr:   stderr,
		Stdin:    strings.NewReader(""),
		Exit:     func(code int) { exitCode = code },
		Services: services,
	}

	return deps, stdout, stderr, &exitCode
}
