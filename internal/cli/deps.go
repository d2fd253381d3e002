package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xolan/wl/internal/service"
)

// Deps contains all dependencies for CLI operations
type Deps struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
	Exit   func(code int)

	Services *service.Services
}

// NewDeps creates a new Deps with the given services writing to the process streams
func NewDeps(services *service.Services) *Deps {
	return &Deps{
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Stdin:    os.Stdin,
		Exit:     os.Exit,
		Services: services,
	}
}

// Fail prints an error block to stderr and exits with status 1.
// err and hint are optional.
func (d *Deps) Fail(msg string, err error, hint string) {
	_, _ = fmt.Fprintf(d.Stderr, "Error: %s\n", msg)
	if err != nil {
		_, _ = fmt.Fprintf(d.Stderr, "Details: %v\n", err)
	}
	if hint != "" {
		_, _ = fmt.Fprintf(d.Stderr, "Hint: %s\n", hint)
	}
	d.Exit(1)
}

// Confirm asks a yes/no question on stdout and reads the answer from stdin.
// Returns true if the user confirms with 'y' or 'Y', false otherwise
func (d *Deps) Confirm(question string) bool {
	_, _ = fmt.Fprintf(d.Stdout, "%s [y/N]: ", question)

	scanner := bufio.NewScanner(d.Stdin)
	if !scanner.Scan() {
		return false
	}

	response := strings.TrimSpace(scanner.Text())
	return response == "y" || response == "Y"
}
