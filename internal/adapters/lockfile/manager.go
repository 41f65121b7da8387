// Package lockfile stores the provenance record of a vendor directory.
package lockfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/gom/internal/core/domain"
	"go.trai.ch/gom/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.LockfileManager = (*Manager)(nil)

// Manager implements ports.LockfileManager with a JSON file.
type Manager struct {
	settings domain.Settings
}

// NewManager creates a Manager for the given settings.
func NewManager(settings domain.Settings) *Manager {
	return &Manager{settings: settings}
}

// Build returns a record stamped with the settings clock.
func (m *Manager) Build(sourceDir string, firstBuild *time.Time) domain.Lockfile {
	return domain.NewLockfile(sourceDir, m.settings.Version, m.settings.Clock(), firstBuild)
}

// Write stores lockfile in targetDir, replacing any previous record.
func (m *Manager) Write(targetDir string, lockfile domain.Lockfile) error {
	if info, err := os.Stat(targetDir); err != nil || !info.IsDir() {
		return nil
	}

	data, err := json.Marshal(lockfile)
	if err != nil {
		return zerr.Wrap(err, domain.ErrLockfileMarshalFailed.Error())
	}

	path := m.path(targetDir)
	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrLockfileWriteFailed.Error()), "path", path)
	}
	return nil
}

// Read returns the record stored in targetDir, or nil if it is missing or unparsable.
func (m *Manager) Read(targetDir string) *domain.Lockfile {
	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(m.path(targetDir))
	if err != nil {
		return nil
	}

	var lockfile domain.Lockfile
	if err := json.Unmarshal(data, &lockfile); err != nil {
		return nil
	}
	return &lockfile
}

func (m *Manager) path(targetDir string) string {
	name := m.settings.LockfileName
	if name == "" {
		name = domain.LockfileName
	}
	return filepath.Join(filepath.Clean(targetDir), name)
}
