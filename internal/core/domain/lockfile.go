package domain

import "time"

// Lockfile is the provenance record stored inside a vendor directory.
// It is the only state distinguishing a directory gom owns from a foreign one.
type Lockfile struct {
	// Source is the absolute source directory the vendor directory was built from.
	Source string `json:"source"`

	// GomVersion is the version of the tool that wrote the record.
	GomVersion string `json:"gomV"`

	// Build is the time of the most recent build.
	Build time.Time `json:"build"`

	// Created is the time of the first build for Source. It never changes across rebuilds.
	Created time.Time `json:"created"`
}

// NewLockfile builds a record stamped at now. When firstBuild is nil the record
// starts a new history and Created equals Build.
func NewLockfile(source, version string, now time.Time, firstBuild *time.Time) Lockfile {
	created := now
	if firstBuild != nil {
		created = *firstBuild
	}
	return Lockfile{
		Source:     source,
		GomVersion: version,
		Build:      now,
		Created:    created,
	}
}

// BelongsTo reports whether the record was written for the given source directory.
func (l *Lockfile) BelongsTo(source string) bool {
	return l != nil && l.Source == source
}
