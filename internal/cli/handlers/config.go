package handlers

import (
	"fmt"
	"strings"

	"github.com/xolan/wl/internal/cli"
)

// ShowConfig displays the current configuration
func ShowConfig(deps *cli.Deps) {
	cfg := deps.Services.Config.Get()
	path := deps.Services.Config.GetPath()

	_, _ = fmt.Fprintln(deps.Stdout, "Configuration:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Config file: %s\n", path)
	if deps.Services.Config.Exists() {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: File exists")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: Using defaults (no config file)")
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))

	dataDir, err := deps.Services.Config.DataDir()
	if err != nil {
		dataDir = fmt.Sprintf("(unavailable: %v)", err)
	}
	templatesDir := cfg.TemplatesDir
	if templatesDir == "" {
		templatesDir = "(bundled only)"
	}

	_, _ = fmt.Fprintf(deps.Stdout, "data_dir:        %s\n", dataDir)
	_, _ = fmt.Fprintf(deps.Stdout, "backend:         %s\n", cfg.Backend)
	_, _ = fmt.Fprintf(deps.Stdout, "templates_dir:   %s\n", templatesDir)
	_, _ = fmt.Fprintf(deps.Stdout, "default_workout: %s\n", cfg.DefaultWorkout)
	_, _ = fmt.Fprintf(deps.Stdout, "bell:            %t\n", cfg.Bell)
	_, _ = fmt.Fprintf(deps.Stdout, "theme:           %s\n", cfg.Theme)
	_, _ = fmt.Fprintf(deps.Stdout, "log_level:       %s\n", cfg.LogLevel)
}

// InitConfig creates a sample config file
func InitConfig(deps *cli.Deps) {
	if err := deps.Services.Config.Init(); err != nil {
		deps.Fail("Failed to create config file", err, "")
		return
	}

	path := deps.Services.Config.GetPath()
	_, _ = fmt.Fprintf(deps.Stdout, "Created config file: %s\n", path)
	_, _ = fmt.Fprintln(deps.Stdout, "Edit this file to customize your settings.")
}
