package domain

const (
	// DefaultRoot is the directory all vendor directories are created under.
	DefaultRoot = "/Go/src"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "gom.config"

	// LockfileName is the name of the provenance record inside a vendor directory.
	LockfileName = "gom-lock"

	// SnapshotName is the name of the config copy inside a vendor directory.
	SnapshotName = "gom.config"

	// SourceExtension selects the files copied out of a package source directory.
	SourceExtension = ".go"

	// LogFormatText selects human-readable log lines.
	LogFormatText = "text"

	// LogFormatJSON selects one JSON object per log record.
	LogFormatJSON = "json"

	// EnvPrefix is the prefix of environment variables that override Settings.
	EnvPrefix = "GOM_"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)
