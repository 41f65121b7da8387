// Package vendordir prepares vendor directories and copies packages into them.
package vendordir

import (
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/gom/internal/core/domain"
	"go.trai.ch/gom/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Reconciler = (*Reconciler)(nil)

// Reconciler implements ports.Reconciler.
type Reconciler struct {
	lockfiles ports.LockfileManager
	logger    ports.Logger
	settings  domain.Settings
}

// NewReconciler creates a Reconciler.
func NewReconciler(lockfiles ports.LockfileManager, logger ports.Logger, settings domain.Settings) *Reconciler {
	return &Reconciler{
		lockfiles: lockfiles,
		logger:    logger,
		settings:  settings,
	}
}

// Prepare decides whether targetDir may be rebuilt from sourceDir and, if so,
// recreates it holding only a fresh lockfile and a snapshot of cfg.
//
// A targetDir that is non-empty and has no lockfile for sourceDir is left
// untouched and reported as ErrForeignVendorDir.
func (r *Reconciler) Prepare(targetDir, sourceDir string, cfg *domain.Config) (*domain.Lockfile, error) {
	source := filepath.Clean(sourceDir)

	record, err := r.plan(targetDir, source)
	if err != nil {
		return nil, err
	}

	if err := os.RemoveAll(targetDir); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrVendorRemoveFailed.Error()), "vendor_dir", targetDir)
	}
	if err := os.MkdirAll(targetDir, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrVendorCreateFailed.Error()), "vendor_dir", targetDir)
	}
	if err := r.lockfiles.Write(targetDir, record); err != nil {
		return nil, err
	}
	if err := r.writeSnapshot(targetDir, cfg); err != nil {
		return nil, err
	}

	return &record, nil
}

// plan inspects targetDir and returns the record the rebuild will carry.
func (r *Reconciler) plan(targetDir, source string) (domain.Lockfile, error) {
	info, err := os.Stat(targetDir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		r.logger.Info("creating vendor directory " + targetDir)
		return r.lockfiles.Build(source, nil), nil
	case err != nil:
		return domain.Lockfile{}, zerr.With(zerr.Wrap(err, domain.ErrVendorStatFailed.Error()), "vendor_dir", targetDir)
	case !info.IsDir():
		return domain.Lockfile{}, zerr.With(domain.ErrForeignVendorDir, "vendor_dir", targetDir)
	}

	empty, err := isEmptyDir(targetDir)
	if err != nil {
		return domain.Lockfile{}, zerr.With(zerr.Wrap(err, domain.ErrVendorStatFailed.Error()), "vendor_dir", targetDir)
	}
	if empty {
		r.logger.Info("claiming empty vendor directory " + targetDir)
		record := r.lockfiles.Build(source, nil)
		if err := r.lockfiles.Write(targetDir, record); err != nil {
			return domain.Lockfile{}, err
		}
		return record, nil
	}

	existing := r.lockfiles.Read(targetDir)
	if !existing.BelongsTo(source) {
		err := zerr.With(domain.ErrForeignVendorDir, "vendor_dir", targetDir)
		if existing != nil {
			err = zerr.With(err, "lock_source", existing.Source)
		}
		return domain.Lockfile{}, err
	}

	r.logger.Info("rebuilding vendor directory " + targetDir)
	created := existing.Created
	return r.lockfiles.Build(source, &created), nil
}

func (r *Reconciler) writeSnapshot(targetDir string, cfg *domain.Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrSnapshotWriteFailed.Error())
	}

	name := r.settings.SnapshotName
	if name == "" {
		name = domain.SnapshotName
	}
	path := filepath.Join(targetDir, name)

	//nolint:gosec // Path is built from the vendor root and a validated file name
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSnapshotWriteFailed.Error()), "path", path)
	}
	return nil
}

func isEmptyDir(dir string) (bool, error) {
	f, err := os.Open(dir) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return false, err
	}
	defer f.Close() //nolint:errcheck // Read-only handle

	_, err = f.Readdirnames(1)
	if errors.Is(err, io.EOF) {
		return true, nil
	}
	return false, err
}
