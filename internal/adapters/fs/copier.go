package fs

import (
	"io"
	"os"

	"go.trai.ch/gom/internal/core/domain"
	"go.trai.ch/gom/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileCopier = (*Copier)(nil)

// Copier copies files the way `cp -p` does for mode and mtime.
type Copier struct{}

// NewCopier creates a new Copier.
func NewCopier() *Copier {
	return &Copier{}
}

// CopyFile copies src to dst, overwriting dst if it exists.
func (c *Copier) CopyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFileOpenFailed.Error()), "path", src)
	}

	in, err := os.Open(src) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFileOpenFailed.Error()), "path", src)
	}
	defer in.Close() //nolint:errcheck // Read-only handle

	//nolint:gosec // Path is controlled by caller
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPackageCopyFailed.Error()), "path", dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrPackageCopyFailed.Error()), "path", dst)
	}
	if err := out.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPackageCopyFailed.Error()), "path", dst)
	}

	// OpenFile applies the umask; set the bits explicitly.
	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPackageCopyFailed.Error()), "path", dst)
	}
	if err := os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPackageCopyFailed.Error()), "path", dst)
	}
	return nil
}
