package domain

import (
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/zerr"
)

// Settings is the process-wide configuration of gom.
// It replaces fixed globals so every component can be pointed at a temporary root in tests.
type Settings struct {
	Root         string `koanf:"root"`
	ConfigName   string `koanf:"config"`
	LockfileName string `koanf:"lockfile"`
	SnapshotName string `koanf:"snapshot"`
	Extension    string `koanf:"extension"`
	LogFormat    string `koanf:"log_format"`
	Progress     bool   `koanf:"progress"`
	Version      string `koanf:"-"`

	// Now is the clock used for lockfile timestamps.
	Now func() time.Time `koanf:"-"`
}

// DefaultSettings returns the settings used when nothing is overridden.
func DefaultSettings(version string) Settings {
	return Settings{
		Root:         DefaultRoot,
		ConfigName:   ConfigFileName,
		LockfileName: LockfileName,
		SnapshotName: SnapshotName,
		Extension:    SourceExtension,
		LogFormat:    LogFormatText,
		Version:      version,
		Now:          utcNow,
	}
}

// Clock returns the configured clock, falling back to UTC wall time.
func (s Settings) Clock() time.Time {
	if s.Now == nil {
		return utcNow()
	}
	return s.Now()
}

// Validate checks that the settings describe a usable layout.
func (s Settings) Validate() error {
	if s.Root == "" || !filepath.IsAbs(s.Root) {
		return zerr.With(ErrInvalidSettings, "root", s.Root)
	}
	names := []struct{ key, value string }{
		{"config", s.ConfigName},
		{"lockfile", s.LockfileName},
		{"snapshot", s.SnapshotName},
	}
	for _, n := range names {
		if n.value == "" || !isSingleElement(n.value) {
			return zerr.With(ErrInvalidSettings, n.key, n.value)
		}
	}
	if s.LockfileName == s.SnapshotName {
		return zerr.With(ErrInvalidSettings, "lockfile", s.LockfileName)
	}
	if !strings.HasPrefix(s.Extension, ".") {
		return zerr.With(ErrInvalidSettings, "extension", s.Extension)
	}
	if s.LogFormat != LogFormatText && s.LogFormat != LogFormatJSON {
		return zerr.With(ErrInvalidSettings, "log_format", s.LogFormat)
	}
	return nil
}

func utcNow() time.Time {
	return time.Now().UTC()
}
