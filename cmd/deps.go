package cmd

import (
	"io"
	"os"

	"github.com/xolan/wl/internal/cli"
	"github.com/xolan/wl/internal/service"
)

// Deps holds external dependencies for CLI commands, enabling testability.
type Deps struct {
	Stdout   io.Writer
	Stderr   io.Writer
	Stdin    io.Reader
	Exit     func(code int)
	Services func() (*service.Services, error)
}

// DefaultDeps returns the default production dependencies.
func DefaultDeps() *Deps {
	return &Deps{
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Stdin:    os.Stdin,
		Exit:     os.Exit,
		Services: service.NewServices,
	}
}

// deps is the global dependencies instance used by commands.
// In production, this is DefaultDeps(). Tests can replace it.
var deps = DefaultDeps()

// SetDeps sets the global dependencies (for testing).
func SetDeps(d *Deps) {
	deps = d
}

// ResetDeps resets dependencies to defaults (for testing cleanup).
func ResetDeps() {
	deps = DefaultDeps()
}

// withServices opens the services for one command, runs fn with handler deps and
// closes them again.
func withServices(fn func(d *cli.Deps)) {
	services, err := deps.Services()
	if err != nil {
		d := &cli.Deps{Stdout: deps.Stdout, Stderr: deps.Stderr, Stdin: deps.Stdin, Exit: deps.Exit}
		d.Fail("Failed to initialize wl", err, "Check your configuration with 'wl config'")
		return
	}
	defer func() { _ = services.Close() }()

	fn(&cli.Deps{
		Stdout:   deps.Stdout,
		Stderr:   deps.Stderr,
		Stdin:    deps.Stdin,
		Exit:     deps.Exit,
		Services: services,
	})
}
