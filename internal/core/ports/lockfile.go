package ports

import (
	"time"

	"go.trai.ch/gom/internal/core/domain"
)

// LockfileManager reads and writes the provenance record of a vendor directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=lockfile.go -destination=mocks/mock_lockfile.go -package=mocks
type LockfileManager interface {
	// Build constructs a record for sourceDir stamped with the current time.
	// firstBuild carries the creation time of an existing history; nil starts a new one.
	Build(sourceDir string, firstBuild *time.Time) domain.Lockfile

	// Write stores the record inside targetDir.
	// It does nothing when targetDir does not exist.
	Write(targetDir string, lockfile domain.Lockfile) error

	// Read returns the record stored inside targetDir, or nil when there is none
	// or it cannot be parsed.
	Read(targetDir string) *domain.Lockfile
}
