// Package config loads the project configuration file gom.config.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/gom/internal/core/domain"
	"go.trai.ch/gom/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML (or JSON) file.
type Loader struct {
	Logger   ports.Logger
	fileName string
	reserved []string
}

// NewLoader creates a Loader that reads the file named by settings.ConfigName.
func NewLoader(logger ports.Logger, settings domain.Settings) *Loader {
	name := settings.ConfigName
	if name == "" {
		name = domain.ConfigFileName
	}
	lockfile := settings.LockfileName
	if lockfile == "" {
		lockfile = domain.LockfileName
	}
	snapshot := settings.SnapshotName
	if snapshot == "" {
		snapshot = domain.SnapshotName
	}
	return &Loader{Logger: logger, fileName: name, reserved: []string{lockfile, snapshot}}
}

// Load reads and validates the configuration file in cwd.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	configPath := filepath.Join(cwd, l.fileName)

	// #nosec G304 -- configPath is built from the working directory and a validated file name
	data, err := os.ReadFile(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, zerr.With(domain.ErrConfigNotFound, "path", configPath)
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", configPath)
	}

	gomfile, err := parse(data)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", configPath)
	}

	cfg := gomfile.toDomain()
	if err := cfg.Validate(l.reserved...); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}
	if len(cfg.Packages) == 0 {
		l.Logger.Warn(configPath + " lists no packages")
	}
	return cfg, nil
}

// parse decodes JSON documents with encoding/json, since tab-indented JSON
// is not valid YAML, and everything else with yaml.v3.
func parse(data []byte) (*Gomfile, error) {
	var gomfile Gomfile

	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, &gomfile); err != nil {
			return nil, err
		}
		return &gomfile, nil
	}

	if err := yaml.Unmarshal(data, &gomfile); err != nil {
		return nil, err
	}
	return &gomfile, nil
}
