package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigNotFound is returned when the project configuration file does not exist.
	ErrConfigNotFound = zerr.New("could not find gom.config")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrMissingVendor is returned when the config does not name a vendor directory.
	ErrMissingVendor = zerr.New("missing vendor directory name")

	// ErrInvalidVendorPath is returned when the vendor directory would resolve outside the root.
	ErrInvalidVendorPath = zerr.New("vendor must be a relative path inside the vendor root")

	// ErrMissingPackageField is returned when a package spec lacks a name or a path.
	ErrMissingPackageField = zerr.New("package requires both name and path")

	// ErrInvalidPackageName is returned when a package name is not a single path element.
	ErrInvalidPackageName = zerr.New("package name must be a single path element")

	// ErrReservedPackageName is returned when a package is named after the lockfile or the config snapshot.
	ErrReservedPackageName = zerr.New("package name is reserved for a file gom writes into the vendor directory")

	// ErrInvalidSettings is returned when the process settings are unusable.
	ErrInvalidSettings = zerr.New("invalid settings")

	// ErrSettingsLoadFailed is returned when the process settings cannot be loaded.
	ErrSettingsLoadFailed = zerr.New("failed to load settings")

	// ErrForeignVendorDir is returned when the vendor directory holds data that does not
	// belong to the current source directory.
	ErrForeignVendorDir = zerr.New("vendor directory does not belong to this gom project")

	// ErrVendorStatFailed is returned when the vendor directory cannot be inspected.
	ErrVendorStatFailed = zerr.New("failed to inspect vendor directory")

	// ErrVendorRemoveFailed is returned when the vendor directory cannot be removed.
	ErrVendorRemoveFailed = zerr.New("failed to remove vendor directory")

	// ErrVendorCreateFailed is returned when the vendor directory cannot be created.
	ErrVendorCreateFailed = zerr.New("failed to create vendor directory")

	// ErrLockfileMarshalFailed is returned when the lockfile cannot be encoded.
	ErrLockfileMarshalFailed = zerr.New("failed to marshal lockfile")

	// ErrLockfileWriteFailed is returned when the lockfile cannot be written.
	ErrLockfileWriteFailed = zerr.New("failed to write lockfile")

	// ErrSnapshotWriteFailed is returned when the config snapshot cannot be written.
	ErrSnapshotWriteFailed = zerr.New("failed to write config snapshot")

	// ErrPackageNameNotUnique is returned when two packages share a vendor subdirectory.
	ErrPackageNameNotUnique = zerr.New("package name is not unique")

	// ErrPackageSourceMissing is returned when a package source path is not a directory.
	ErrPackageSourceMissing = zerr.New("package source directory does not exist")

	// ErrPackageCopyFailed is returned when copying a package's files fails.
	ErrPackageCopyFailed = zerr.New("failed to copy package files")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrFailedToGetSource is returned when the source directory cannot be determined.
	ErrFailedToGetSource = zerr.New("failed to get absolute path of source directory")

	// ErrBuildFailed is returned when a build aborts before copying packages.
	ErrBuildFailed = zerr.New("build failed")
)
