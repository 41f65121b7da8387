// Package settings loads gom's process settings from defaults and GOM_* environment variables.
package settings

import (
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"go.trai.ch/gom/internal/core/domain"
	"go.trai.ch/zerr"
)

// Load resolves the settings for this process.
// Precedence (highest to lowest): GOM_* environment variables > defaults.
func Load(version string) (domain.Settings, error) {
	defaults := domain.DefaultSettings(version)

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(map[string]any{
		"root":       defaults.Root,
		"config":     defaults.ConfigName,
		"lockfile":   defaults.LockfileName,
		"snapshot":   defaults.SnapshotName,
		"extension":  defaults.Extension,
		"log_format": defaults.LogFormat,
		"progress":   defaults.Progress,
	}, "."), nil); err != nil {
		return domain.Settings{}, zerr.Wrap(err, domain.ErrSettingsLoadFailed.Error())
	}

	// GOM_ROOT -> root
	if err := k.Load(env.Provider(domain.EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, domain.EnvPrefix))
	}), nil); err != nil {
		return domain.Settings{}, zerr.Wrap(err, domain.ErrSettingsLoadFailed.Error())
	}

	s := defaults
	if err := k.Unmarshal("", &s); err != nil {
		return domain.Settings{}, zerr.Wrap(err, domain.ErrSettingsLoadFailed.Error())
	}
	s.Version = defaults.Version
	s.Now = defaults.Now

	if err := s.Validate(); err != nil {
		return domain.Settings{}, err
	}
	return s, nil
}
