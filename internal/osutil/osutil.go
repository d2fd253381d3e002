// Package osutil abstracts the OS calls used to locate wl's directories so tests can
// simulate unwritable or missing home directories.
package osutil

import (
	"os"
	"path/filepath"
)

// PathProvider resolves and creates the directories wl keeps its files in.
type PathProvider interface {
	UserConfigDir() (string, error)
	MkdirAll(path string, perm os.FileMode) error
}

// DefaultPathProvider uses real OS functions.
type DefaultPathProvider struct{}

// UserConfigDir returns the default root directory for user-specific configuration data.
func (DefaultPathProvider) UserConfigDir() (string, error) {
	return os.UserConfigDir()
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (DefaultPathProvider) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Provider is the package-level path provider instance.
// In production, this is DefaultPathProvider. Tests can replace it.
var Provider PathProvider = DefaultPathProvider{}

// SetProvider sets a custom provider (for testing).
func SetProvider(p PathProvider) {
	Provider = p
}

// ResetProvider resets to the default provider.
func ResetProvider() {
	Provider = DefaultPathProvider{}
}

// AppDir returns <UserConfigDir>/<name>, creating it if needed.
func AppDir(name string) (string, error) {
	configDir, err := Provider.UserConfigDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(configDir, name)
	if err := Provider.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}
