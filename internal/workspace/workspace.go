package workspace

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/diamondcougar10/Webineer/internal/logfields"
)

// Manager handles staging directories for import sources.
type Manager struct {
	baseDir string
	tempDir string
}

// NewManager creates a staging manager rooted at baseDir. An empty baseDir
// falls back to the system temp directory.
func NewManager(baseDir string) *Manager {
	if baseDir == "" {
		baseDir = os.TempDir()
	}
	return &Manager{baseDir: baseDir}
}

// Create creates a timestamped staging directory.
func (m *Manager) Create() error {
	timestamp := time.Now().Format("20060102-150405")
	tempDir, err := os.MkdirTemp(m.baseDir, fmt.Sprintf("webineer-%s-*", timestamp))
	if err != nil {
		return fmt.Errorf("create staging directory: %w", err)
	}
	m.tempDir = tempDir
	slog.Debug("Created staging directory", logfields.Path(tempDir))
	return nil
}

// Path returns the staging directory path, or "" before Create.
func (m *Manager) Path() string {
	return m.tempDir
}

// CreateSubdir creates a subdirectory within the staging directory.
func (m *Manager) CreateSubdir(name string) (string, error) {
	if m.tempDir == "" {
		return "", fmt.Errorf("staging directory not created")
	}
	subdir := filepath.Join(m.tempDir, name)
	if err := os.MkdirAll(subdir, 0o750); err != nil {
		return "", fmt.Errorf("create staging subdirectory: %w", err)
	}
	return subdir, nil
}

// Cleanup removes the staging directory and everything staged into it.
func (m *Manager) Cleanup() error {
	if m.tempDir == "" {
		return nil
	}
	if err := os.RemoveAll(m.tempDir); err != nil {
		return fmt.Errorf("cleanup staging directory: %w", err)
	}
	slog.Debug("Removed staging directory", logfields.Path(m.tempDir))
	m.tempDir = ""
	return nil
}
