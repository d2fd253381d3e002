package osutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// MockPathProvider is a mock implementation for testing.
type MockPathProvider struct {
	UserConfigDirFn func() (string, error)
	MkdirAllFn      func(path string, perm os.FileMode) error
}

func (m *MockPathProvider) UserConfigDir() (string, error) {
	if m.UserConfigDirFn != nil {
		return m.UserConfigDirFn()
	}
	return "", nil
}

func (m *MockPathProvider) MkdirAll(path string, perm os.FileMode) error {
	if m.MkdirAllFn != nil {
		return m.MkdirAllFn(path, perm)
	}
	return nil
}

func TestDefaultPathProvider_MkdirAll(t *testing.T) {
	p := DefaultPathProvider{}
	testDir := filepath.Join(t.TempDir(), "a", "b", "c")

	if err := p.MkdirAll(testDir, 0755); err != nil {
		t.Fatalf("MkdirAll returned error: %v", err)
	}

	info, err := os.Stat(testDir)
	if err != nil {
		t.Fatalf("Failed to stat created directory: %v", err)
	}
	if !info.IsDir() {
		t.Error("MkdirAll did not create a directory")
	}
}

func TestSetAndResetProvider(t *testing.T) {
	defer ResetProvider()

	mock := &MockPathProvider{
		UserConfigDirFn: func() (string, error) {
			return "/mock/config", nil
		},
	}
	SetProvider(mock)

	if Provider != mock {
		t.Error("SetProvider did not set the provider")
	}

	ResetProvider()
	if _, ok := Provider.(DefaultPathProvider); !ok {
		t.Error("ResetProvider did not reset to DefaultPathProvider")
	}
}

func TestAppDir(t *testing.T) {
	defer ResetProvider()

	root := t.TempDir()
	SetProvider(&MockPathProvider{
		UserConfigDirFn: func() (string, error) { return root, nil },
		MkdirAllFn:      os.MkdirAll,
	})

	dir, err := AppDir("wl")
	if err != nil {
		t.Fatalf("AppDir returned error: %v", err)
	}
	if dir != filepath.Join(root, "wl") {
		t.Errorf("AppDir = %q, expected %q", dir, filepath.Join(root, "wl"))
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("AppDir did not create %s: %v", dir, err)
	}
}

func TestAppDir_Errors(t *testing.T) {
	defer ResetProvider()

	expectedErr := errors.New("mock error")

	tests := []struct {
		name string
		mock *MockPathProvider
	}{
		{
			name: "config dir unavailable",
			mock: &MockPathProvider{
				UserConfigDirFn: func() (string, error) { return "", expectedErr },
			},
		},
		{
			name: "mkdir fails",
			mock: &MockPathProvider{
				UserConfigDirFn: func() (string, error) { return "/mock", nil },
				MkdirAllFn:      func(string, os.FileMode) error { return expectedErr },
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetProvider(tt.mock)
			if _, err := AppDir("wl"); !errors.Is(err, expectedErr) {
				t.Errorf("AppDir() error = %v, expected %v", err, expectedErr)
			}
		})
	}
}
